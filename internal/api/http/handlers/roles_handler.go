package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util"
)

// RolesHandler serves the add/edit role pages and mutations.
type RolesHandler struct {
	directory *service.DirectoryService
}

// NewRolesHandler constructs handler.
func NewRolesHandler(directory *service.DirectoryService) *RolesHandler {
	return &RolesHandler{directory: directory}
}

// AddPage handles GET /admin/add_role.
func (h *RolesHandler) AddPage(c *fiber.Ctx) error {
	return c.Render("add-role", fiber.Map{})
}

// Create handles POST /admin/add_role.
func (h *RolesHandler) Create(c *fiber.Ctx) error {
	var form dto.RoleForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if form.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	role := roleFromForm(form)
	if err := h.directory.CreateRole(c.Context(), actorFromCtx(c), role); err != nil {
		return apperrors.MapError(err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// EditPage handles GET /admin/edit_role/:id.
func (h *RolesHandler) EditPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid role id", nil)
	}
	role, err := h.directory.GetRole(c.Context(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Render("edit-role", fiber.Map{"role": role})
}

// Update handles POST /admin/edit_role/:id.
func (h *RolesHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid role id", nil)
	}
	var form dto.RoleForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if form.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	role := roleFromForm(form)
	role.ID = int64(id)
	if err := h.directory.UpdateRole(c.Context(), actorFromCtx(c), role); err != nil {
		return apperrors.MapError(err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

func roleFromForm(form dto.RoleForm) *domain.Role {
	return &domain.Role{
		Name:            form.Name,
		Description:     form.Description,
		Onboarding:      form.Onboarding,
		EmployeeUpdates: form.EmployeeUpdates,
		Offboarding:     form.Offboarding,
		ManageModify:    form.ManageModify,
		Admin:           form.Admin,
		Payroll:         form.Payroll,
		APIReport:       form.APIReport,
	}
}
