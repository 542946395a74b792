package brokerValidator

import (
	"copyadmin/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var knownProviders = []string{"zerodha", "upstox", "angelone", "bajaj"}

type ConfigRequest struct {
	Provider   string `json:"provider"`
	APIKey     string `json:"apiKey"`
	APISecret  string `json:"apiSecret"`
	ClientCode string `json:"clientCode"`
}

// SaveConfig validator middleware
func SaveConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ConfigRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Provider = strings.ToLower(strings.TrimSpace(reqData.Provider))
		known := false
		for _, p := range knownProviders {
			if p == reqData.Provider {
				known = true
				break
			}
		}
		if !known {
			errors["provider"] = "Unknown broker provider!"
		}
		if reqData.APIKey == "" {
			errors["apiKey"] = "API key is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedConfig", reqData)
		return c.Next()
	}
}
