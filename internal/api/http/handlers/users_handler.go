package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util"
)

// UsersHandler serves the add/edit user pages and mutations.
type UsersHandler struct {
	directory *service.DirectoryService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(directory *service.DirectoryService) *UsersHandler {
	return &UsersHandler{directory: directory}
}

// AddPage handles GET /admin/add_user, loading role and team choices.
func (h *UsersHandler) AddPage(c *fiber.Ctx) error {
	roles, err := h.directory.ListRoles(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	teams, err := h.directory.ListTeams(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Render("add-user", fiber.Map{"roles": roles, "teams": teams})
}

// Create handles POST /admin/add_user.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var form dto.UserForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if form.Username == "" || form.Password == "" || form.RoleID == 0 {
		return apperrors.NewValidationError("username, password, role required", nil)
	}
	teamID, err := parseTeamID(form.TeamID)
	if err != nil {
		return apperrors.NewValidationError("invalid team id", nil)
	}

	user := &domain.User{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		RoleID:    form.RoleID,
		TeamID:    teamID,
	}
	if err := h.directory.CreateUser(c.Context(), actorFromCtx(c), user, form.Password); err != nil {
		return apperrors.MapError(err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// EditPage handles GET /admin/edit_user/:id.
func (h *UsersHandler) EditPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	user, err := h.directory.GetUser(c.Context(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	roles, err := h.directory.ListRoles(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	teams, err := h.directory.ListTeams(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Render("edit-user", fiber.Map{"user": user, "roles": roles, "teams": teams})
}

// Update handles POST /admin/edit_user/:id. Profile and assignments only;
// the password is never changed here. A role change shows up in the user's
// session at their next login, not before.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	var form dto.UserForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if form.Username == "" || form.RoleID == 0 {
		return apperrors.NewValidationError("username and role required", nil)
	}
	teamID, err := parseTeamID(form.TeamID)
	if err != nil {
		return apperrors.NewValidationError("invalid team id", nil)
	}

	user := &domain.User{
		ID:        int64(id),
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		RoleID:    form.RoleID,
		TeamID:    teamID,
	}
	if err := h.directory.UpdateUser(c.Context(), actorFromCtx(c), user); err != nil {
		return apperrors.MapError(err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

func parseTeamID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
