package analytics

import (
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	Service AnalyticsService
}

func NewAnalyticsController(service AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// GetReport godoc
// @Summary Analytics report for a trailing window
// @Tags analytics
// @Produce json
// @Param days query int false "Window in days: 7, 30, 90 or 365 (default 30)"
// @Router /api/analytics [get]
func (ctrl *AnalyticsController) GetReport(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	days := c.QueryInt("days", 30)
	report, err := ctrl.Service.Report(c.UserContext(), claims.UserID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build analytics report"})
	}
	return c.JSON(report)
}
