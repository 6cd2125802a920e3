package export

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	Controller *ExportController
	Config     *config.Config
}

func NewExportApi(controller *ExportController, cfg *config.Config) api.Route {
	return &ExportApi{Controller: controller, Config: cfg}
}

func (a *ExportApi) Setup(app *fiber.App) {
	group := app.Group("/api/export", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/json", a.Controller.ExportJSON)
	group.Get("/xlsx", a.Controller.ExportXLSX)
}
