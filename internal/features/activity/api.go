package activity

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ActivityApi struct {
	Controller *ActivityController
	Config     *config.Config
}

func NewActivityApi(controller *ActivityController, cfg *config.Config) api.Route {
	return &ActivityApi{Controller: controller, Config: cfg}
}

func (a *ActivityApi) Setup(app *fiber.App) {
	group := app.Group("/api/activities", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.ListActivities)
	group.Post("/", a.Controller.CreateActivity)
}
