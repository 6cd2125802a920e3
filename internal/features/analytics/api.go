package analytics

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsApi struct {
	Controller *AnalyticsController
	Config     *config.Config
}

func NewAnalyticsApi(controller *AnalyticsController, cfg *config.Config) api.Route {
	return &AnalyticsApi{Controller: controller, Config: cfg}
}

func (a *AnalyticsApi) Setup(app *fiber.App) {
	group := app.Group("/api/analytics", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.GetReport)
}
