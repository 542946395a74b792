package connectionValidator

import (
	"copyadmin/middleware"
	"copyadmin/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRequestBody struct {
	StudentID string `json:"studentId"`
	Direction string `json:"direction"`
}

// CreateRequest validator middleware
func CreateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequestBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StudentID == "" {
			errors["studentId"] = "Student id is required!"
		}
		if reqData.Direction == "" {
			reqData.Direction = models.DirectionOutgoing
		} else if reqData.Direction != models.DirectionIncoming && reqData.Direction != models.DirectionOutgoing {
			errors["direction"] = "Direction must be incoming or outgoing!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRequest", reqData)
		return c.Next()
	}
}
