package models

import "time"

const (
	ActionProfileCreated = "profile_created"
	ActionProfileUpdated = "profile_updated"
	ActionStudentAdded   = "student_added"
	ActionTradeExecuted  = "trade_executed"
)

// ActivityLog entries are append-only; never mutated after creation.
type ActivityLog struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacherId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}
