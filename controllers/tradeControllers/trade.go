package tradeController

import (
	"copyadmin/database"
	"copyadmin/middleware"
	"copyadmin/models"
	"copyadmin/services"
	tradeValidator "copyadmin/validators/tradeValidator"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListTrades returns trades, filterable by teacherId, studentId or status.
func ListTrades(c *fiber.Ctx) error {
	trades := database.Store.Trades()

	teacherID := c.Query("teacherId")
	studentID := c.Query("studentId")
	status := c.Query("status")

	if teacherID != "" || studentID != "" || status != "" {
		filtered := make([]models.Trade, 0, len(trades))
		for _, t := range trades {
			if teacherID != "" && t.TeacherID != teacherID {
				continue
			}
			if studentID != "" && t.StudentID != studentID {
				continue
			}
			if status != "" && t.Status != status {
				continue
			}
			filtered = append(filtered, t)
		}
		trades = filtered
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trades fetched!", trades)
}

// CreateTrade records a simulated execution for the acting teacher,
// optionally on behalf of one of that teacher's students.
func CreateTrade(c *fiber.Ctx) error {
	teacherID := c.Locals("userId").(string)

	reqData, ok := c.Locals("validatedTrade").(*tradeValidator.TradeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.StudentID != "" {
		owned := false
		for _, s := range database.Store.Students() {
			if s.ID == reqData.StudentID && s.TeacherID == teacherID {
				owned = true
				break
			}
		}
		if !owned {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student does not belong to this teacher!", nil)
		}
	}

	trade := models.Trade{
		ID:        "trade-" + uuid.NewString(),
		TeacherID: teacherID,
		StudentID: reqData.StudentID,
		Stock:     reqData.Stock,
		Quantity:  reqData.Quantity,
		Price:     reqData.Price,
		Type:      reqData.Type,
		Exchange:  reqData.Exchange,
		Status:    models.TradeStatusPending,
		CreatedAt: time.Now(),
	}
	database.Store.SaveTrades(append(database.Store.Trades(), trade))

	appendTradeLog(teacherID, trade)
	services.RecomputeAll(database.Store)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trade created!", trade)
}

// UpdateTradeStatus transitions one trade and records pnl when supplied.
func UpdateTradeStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatus").(*tradeValidator.StatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id := c.Params("id")
	trades := database.Store.Trades()
	for i := range trades {
		if trades[i].ID != id {
			continue
		}
		trades[i].Status = reqData.Status
		if reqData.PnL != 0 {
			trades[i].PnL = reqData.PnL
		}
		if reqData.Status == models.TradeStatusExecuted || reqData.Status == models.TradeStatusCompleted {
			if trades[i].ExecutedAt == nil {
				now := time.Now()
				trades[i].ExecutedAt = &now
			}
		}
		database.Store.SaveTrades(trades)
		services.RecomputeAll(database.Store)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Trade updated!", trades[i])
	}

	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trade not found!", nil)
}

func appendTradeLog(teacherID string, trade models.Trade) {
	logs := database.Store.ActivityLogs()
	entry := models.ActivityLog{
		ID:        "log-" + uuid.NewString(),
		TeacherID: teacherID,
		Action:    models.ActionTradeExecuted,
		Timestamp: time.Now(),
		Details:   trade.Type + " " + trade.Stock + " on " + trade.Exchange,
	}
	database.Store.SaveActivityLogs(append([]models.ActivityLog{entry}, logs...))
}
