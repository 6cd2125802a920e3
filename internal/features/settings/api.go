package settings

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SettingsApi struct {
	Controller *SettingsController
	Config     *config.Config
}

func NewSettingsApi(controller *SettingsController, cfg *config.Config) api.Route {
	return &SettingsApi{Controller: controller, Config: cfg}
}

func (a *SettingsApi) Setup(app *fiber.App) {
	group := app.Group("/api/settings", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.GetSettings)
	group.Put("/", a.Controller.UpdateSettings)
	group.Post("/delete-all-data", a.Controller.DeleteAllData)
}
