package connectionRoutes

import (
	connectionController "copyadmin/controllers/connectionControllers"
	"copyadmin/middleware"
	connectionValidator "copyadmin/validators/connectionValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupConnectionRoutes(app *fiber.App) {
	connectionGroup := app.Group("/connections")

	connectionGroup.Get("/", middleware.JWTMiddleware, connectionController.ListConnections)
	connectionGroup.Get("/zombies", middleware.JWTMiddleware, connectionController.ListZombieStudents)
	connectionGroup.Post("/", connectionValidator.CreateRequest(), middleware.JWTMiddleware, connectionController.CreateConnection)
	connectionGroup.Put("/:id/accept", middleware.JWTMiddleware, connectionController.AcceptConnection)
	connectionGroup.Put("/:id/reject", middleware.JWTMiddleware, connectionController.RejectConnection)
	connectionGroup.Delete("/:id", middleware.JWTMiddleware, connectionController.CancelConnection)
}
