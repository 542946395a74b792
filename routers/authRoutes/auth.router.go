package authRoutes

import (
	authController "copyadmin/controllers/authControllers"
	authValidator "copyadmin/validators/authValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
