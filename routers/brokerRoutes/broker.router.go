package brokerRoutes

import (
	brokerController "copyadmin/controllers/brokerControllers"
	"copyadmin/middleware"
	brokerValidator "copyadmin/validators/brokerValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupBrokerRoutes(app *fiber.App) {
	brokerGroup := app.Group("/broker")

	brokerGroup.Get("/config", middleware.JWTMiddleware, brokerController.GetBrokerConfig)
	brokerGroup.Post("/config", brokerValidator.SaveConfig(), middleware.JWTMiddleware, brokerController.SaveBrokerConfig)
	brokerGroup.Post("/test", middleware.JWTMiddleware, brokerController.TestBrokerConnection)
}
