package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/mavfares/pkg/api/routes"
)

func NewApp() *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PricesRouter(group.Group("/prices"))

	return webApp
}

func SetupServer(listen string) error {
	return NewApp().Listen(listen)
}
