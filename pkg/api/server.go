package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roadcast/roadcast/pkg/api/routes"
	"github.com/roadcast/roadcast/pkg/encoder"
)

func SetupServer(listen string, messageEncoder *encoder.Encoder) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/roadcast")

	group.Get("version", routes.APIVersion)

	routes.IncidentsRouter(group.Group("/incidents"), messageEncoder)

	return webApp.Listen(listen)
}
