package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util"
)

// DashboardHandler renders the admin overview page.
type DashboardHandler struct {
	directory *service.DirectoryService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(directory *service.DirectoryService) *DashboardHandler {
	return &DashboardHandler{directory: directory}
}

const recentActivityLimit = 20

// Index handles GET /admin: users ordered by username, roles and teams by
// name, plus the newest audit entries.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	overview, err := h.directory.GetOverview(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	activity, err := h.directory.RecentActivity(c.Context(), recentActivityLimit)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Render("admin", fiber.Map{
		"users":    overview.Users,
		"roles":    overview.Roles,
		"teams":    overview.Teams,
		"activity": activity,
	})
}
