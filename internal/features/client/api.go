package client

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ClientApi struct {
	Controller *ClientController
	Config     *config.Config
}

func NewClientApi(controller *ClientController, cfg *config.Config) api.Route {
	return &ClientApi{Controller: controller, Config: cfg}
}

func (a *ClientApi) Setup(app *fiber.App) {
	group := app.Group("/api/clients", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.ListClients)
	group.Post("/", a.Controller.CreateClient)
	group.Get("/:id", a.Controller.GetClient)
	group.Put("/:id", a.Controller.UpdateClient)
	group.Delete("/:id", a.Controller.DeleteClient)
}
