package models

import "time"

const (
	TradeTypeBuy  = "BUY"
	TradeTypeSell = "SELL"

	ExchangeNSE = "NSE"
	ExchangeBSE = "BSE"

	TradeStatusPending   = "pending"
	TradeStatusExecuted  = "executed"
	TradeStatusCompleted = "completed"
	TradeStatusFailed    = "failed"
	TradeStatusCancelled = "cancelled"
)

// Trade is a simulated execution record owned by exactly one Teacher,
// optionally placed on behalf of one of that Teacher's Students.
type Trade struct {
	ID         string     `json:"id"`
	TeacherID  string     `json:"teacherId"`
	StudentID  string     `json:"studentId,omitempty"`
	Stock      string     `json:"stock"`
	Quantity   int        `json:"quantity"`
	Price      float64    `json:"price"`
	Type       string     `json:"type"`     // BUY / SELL
	Exchange   string     `json:"exchange"` // NSE / BSE
	Status     string     `json:"status"`
	PnL        float64    `json:"pnl"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExecutedAt *time.Time `json:"executedAt,omitempty"`
}

// IsOpen reports whether the trade can still be force-closed.
func (t Trade) IsOpen() bool {
	return t.Status == TradeStatusPending || t.Status == TradeStatusExecuted
}
