package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util"
)

// TeamsHandler serves the add/edit team pages and mutations.
type TeamsHandler struct {
	directory *service.DirectoryService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(directory *service.DirectoryService) *TeamsHandler {
	return &TeamsHandler{directory: directory}
}

// AddPage handles GET /admin/add_team.
func (h *TeamsHandler) AddPage(c *fiber.Ctx) error {
	return c.Render("add-team", fiber.Map{})
}

// Create handles POST /admin/add_team.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	var form dto.TeamForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if form.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	team := &domain.Team{Name: form.Name, Description: form.Description}
	if err := h.directory.CreateTeam(c.Context(), actorFromCtx(c), team); err != nil {
		return apperrors.MapError(err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// EditPage handles GET /admin/edit_team/:id.
func (h *TeamsHandler) EditPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid team id", nil)
	}
	team, err := h.directory.GetTeam(c.Context(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Render("edit-team", fiber.Map{"team": team})
}

// Update handles POST /admin/edit_team/:id.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid team id", nil)
	}
	var form dto.TeamForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if form.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	team := &domain.Team{ID: int64(id), Name: form.Name, Description: form.Description}
	if err := h.directory.UpdateTeam(c.Context(), actorFromCtx(c), team); err != nil {
		return apperrors.MapError(err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}
