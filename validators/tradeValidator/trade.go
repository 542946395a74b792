package tradeValidator

import (
	"copyadmin/middleware"
	"copyadmin/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type TradeRequest struct {
	StudentID string  `json:"studentId"`
	Stock     string  `json:"stock"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Type      string  `json:"type"`
	Exchange  string  `json:"exchange"`
}

// CreateTrade validator middleware
func CreateTrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TradeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Stock = strings.ToUpper(strings.TrimSpace(reqData.Stock))
		reqData.Type = strings.ToUpper(reqData.Type)
		reqData.Exchange = strings.ToUpper(reqData.Exchange)

		if reqData.Stock == "" {
			errors["stock"] = "Stock symbol is required!"
		}
		if reqData.Quantity <= 0 {
			errors["quantity"] = "Quantity must be positive!"
		}
		if reqData.Price <= 0 {
			errors["price"] = "Price must be positive!"
		}
		if reqData.Type != models.TradeTypeBuy && reqData.Type != models.TradeTypeSell {
			errors["type"] = "Type must be BUY or SELL!"
		}
		if reqData.Exchange != models.ExchangeNSE && reqData.Exchange != models.ExchangeBSE {
			errors["exchange"] = "Exchange must be NSE or BSE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrade", reqData)
		return c.Next()
	}
}

type StatusRequest struct {
	Status string  `json:"status"`
	PnL    float64 `json:"pnl"`
}

// UpdateStatus validator middleware
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case models.TradeStatusPending, models.TradeStatusExecuted,
			models.TradeStatusCompleted, models.TradeStatusFailed,
			models.TradeStatusCancelled:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Invalid trade status!",
			})
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
