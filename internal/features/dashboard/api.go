package dashboard

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	Controller *DashboardController
	Config     *config.Config
}

func NewDashboardApi(controller *DashboardController, cfg *config.Config) api.Route {
	return &DashboardApi{Controller: controller, Config: cfg}
}

func (a *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.GetOverview)
}
