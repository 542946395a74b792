package teacherValidator

import (
	"copyadmin/middleware"
	"copyadmin/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(mobile)
}

func isValidStatus(status string) bool {
	for _, s := range models.TeacherStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type TeacherRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Specialization string `json:"specialization"`
	Status         string `json:"status"`
}

// CreateTeacher validator middleware
func CreateTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TeacherRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Mobile != "" && !isValidMobile(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}
		if reqData.Status == "" {
			reqData.Status = models.TeacherStatusActive
		} else if !isValidStatus(reqData.Status) {
			errors["status"] = "Invalid status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeacher", reqData)
		return c.Next()
	}
}

// UpdateTeacher validator middleware — all fields optional, same rules.
func UpdateTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TeacherRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Mobile != "" && !isValidMobile(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}
		if reqData.Status != "" && !isValidStatus(reqData.Status) {
			errors["status"] = "Invalid status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeacher", reqData)
		return c.Next()
	}
}
