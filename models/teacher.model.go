package models

import "time"

// Teacher statuses as shown on the admin dashboard filters.
const (
	TeacherStatusActive   = "active"
	TeacherStatusInactive = "inactive"
	TeacherStatusOpen     = "open"
	TeacherStatusClose    = "close"
	TeacherStatusLive     = "live"
	TeacherStatusTest     = "test"
)

// TeacherStatuses lists every valid teacher status in display order.
var TeacherStatuses = []string{
	TeacherStatusActive,
	TeacherStatusInactive,
	TeacherStatusOpen,
	TeacherStatusClose,
	TeacherStatusLive,
	TeacherStatusTest,
}

type Teacher struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile"`
	Specialization string    `json:"specialization"`
	Status         string    `json:"status"`
	JoinedDate     time.Time `json:"joinedDate"`

	// Rollup fields are derived via services.Rollup, never authored directly.
	TotalStudents int     `json:"totalStudents"`
	TotalTrades   int     `json:"totalTrades"`
	TotalCapital  float64 `json:"totalCapital"`
	ProfitLoss    float64 `json:"profitLoss"`
	WinRate       float64 `json:"winRate"`
}
