package brokerController

import (
	"copyadmin/database"
	"copyadmin/middleware"
	"copyadmin/models"
	"copyadmin/services"
	brokerValidator "copyadmin/validators/brokerValidator"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// GetBrokerConfig returns the acting user's broker config.
func GetBrokerConfig(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	cfg, err := services.GetBrokerConfig(database.Store, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No broker configured!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch config!", nil)
	}

	// Never echo the secret back.
	cfg.APISecret = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Broker config fetched!", cfg)
}

// SaveBrokerConfig upserts the acting user's broker credentials.
func SaveBrokerConfig(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	reqData, ok := c.Locals("validatedConfig").(*brokerValidator.ConfigRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	cfg := services.SaveBrokerConfig(database.Store, models.BrokerConfig{
		UserID:     userID,
		Provider:   reqData.Provider,
		APIKey:     reqData.APIKey,
		APISecret:  reqData.APISecret,
		ClientCode: reqData.ClientCode,
	})

	cfg.APISecret = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Broker config saved!", cfg)
}

// TestBrokerConnection pings the configured provider and updates status.
func TestBrokerConnection(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	cfg, err := services.TestBrokerConnection(database.Store, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No broker configured!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Connection test failed!", nil)
	}

	cfg.APISecret = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Connection tested!", cfg)
}
