package authValidator

import (
	"copyadmin/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	SessionToken string `json:"sessionToken"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.SessionToken) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"sessionToken": "Session token is required!",
			})
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
