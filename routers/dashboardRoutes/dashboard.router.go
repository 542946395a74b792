package dashboardRoutes

import (
	dashboardController "copyadmin/controllers/dashboardControllers"
	"copyadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/dashboard")

	dashboardGroup.Get("/stats", middleware.JWTMiddleware, dashboardController.GetStats)
	dashboardGroup.Get("/activity", middleware.JWTMiddleware, dashboardController.GetActivityFeed)
	dashboardGroup.Get("/seed-info", middleware.JWTMiddleware, dashboardController.GetSeedInfo)
}
