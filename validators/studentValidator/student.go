package studentValidator

import (
	"copyadmin/middleware"
	"copyadmin/services"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(mobile)
}

type StudentRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile"`
	TeacherID      string  `json:"teacherId"`
	Status         string  `json:"status"`
	InitialCapital float64 `json:"initialCapital"`
	CurrentCapital float64 `json:"currentCapital"`
	RiskPercentage float64 `json:"riskPercentage"`
	Strategy       string  `json:"strategy"`
}

// CreateStudent validator middleware
func CreateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentRequest)
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
		if reqData.InitialCapital < 0 {
			errors["initialCapital"] = "Initial capital cannot be negative!"
		}
		if reqData.RiskPercentage < 0 || reqData.RiskPercentage > 100 {
			errors["riskPercentage"] = "Risk percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

// UpdateStudent validator middleware
func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentRequest)
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
		if reqData.RiskPercentage < 0 || reqData.RiskPercentage > 100 {
			errors["riskPercentage"] = "Risk percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

type BulkImportRequest struct {
	TeacherID string                      `json:"teacherId"`
	Rows      []services.StudentImportRow `json:"rows"`
}

// BulkImport validator middleware — row-level validation happens in the
// import service so valid rows still go through.
func BulkImport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BulkImportRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Rows) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"rows": "At least one row is required!",
			})
		}

		c.Locals("validatedImport", reqData)
		return c.Next()
	}
}
