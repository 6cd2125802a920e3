package dashboard

import (
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Service DashboardService
}

func NewDashboardController(service DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GetOverview godoc
// @Summary Dashboard totals and recent activity
// @Tags dashboard
// @Produce json
// @Router /api/dashboard [get]
func (ctrl *DashboardController) GetOverview(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	overview, err := ctrl.Service.Overview(c.UserContext(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	return c.JSON(overview)
}
