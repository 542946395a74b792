package teacherRoutes

import (
	teacherController "copyadmin/controllers/teacherControllers"
	"copyadmin/middleware"
	teacherValidator "copyadmin/validators/teacherValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupTeacherRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teachers")

	teacherGroup.Get("/", middleware.JWTMiddleware, teacherController.ListTeachers)
	teacherGroup.Post("/", teacherValidator.CreateTeacher(), middleware.JWTMiddleware, teacherController.CreateTeacher)
	teacherGroup.Post("/panic-close", middleware.JWTMiddleware, teacherController.PanicCloseTrades)
	teacherGroup.Post("/recompute", middleware.JWTMiddleware, teacherController.RecomputeRollups)
	teacherGroup.Get("/:id", middleware.JWTMiddleware, teacherController.GetTeacher)
	teacherGroup.Put("/:id", teacherValidator.UpdateTeacher(), middleware.JWTMiddleware, teacherController.UpdateTeacher)
	teacherGroup.Delete("/:id", middleware.JWTMiddleware, teacherController.DeleteTeacher)
	teacherGroup.Get("/:id/activity", middleware.JWTMiddleware, teacherController.GetTeacherActivity)
}
