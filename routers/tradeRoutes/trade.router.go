package tradeRoutes

import (
	tradeController "copyadmin/controllers/tradeControllers"
	"copyadmin/middleware"
	tradeValidator "copyadmin/validators/tradeValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupTradeRoutes(app *fiber.App) {
	tradeGroup := app.Group("/trades")

	tradeGroup.Get("/", middleware.JWTMiddleware, tradeController.ListTrades)
	tradeGroup.Post("/", tradeValidator.CreateTrade(), middleware.JWTMiddleware, tradeController.CreateTrade)
	tradeGroup.Put("/:id/status", tradeValidator.UpdateStatus(), middleware.JWTMiddleware, tradeController.UpdateTradeStatus)
}
