package studentRoutes

import (
	studentController "copyadmin/controllers/studentControllers"
	"copyadmin/middleware"
	studentValidator "copyadmin/validators/studentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/students")

	studentGroup.Get("/", middleware.JWTMiddleware, studentController.ListStudents)
	studentGroup.Post("/", studentValidator.CreateStudent(), middleware.JWTMiddleware, studentController.CreateStudent)
	studentGroup.Post("/bulk-import", studentValidator.BulkImport(), middleware.JWTMiddleware, studentController.BulkImportStudents)
	studentGroup.Get("/:id", middleware.JWTMiddleware, studentController.GetStudent)
	studentGroup.Put("/:id", studentValidator.UpdateStudent(), middleware.JWTMiddleware, studentController.UpdateStudent)
	studentGroup.Delete("/:id", middleware.JWTMiddleware, studentController.DeleteStudent)
}
