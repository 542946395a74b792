package models

import "time"

const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusRejected = "rejected"

	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// ConnectionRequest proposes a link between a Teacher and a zombie Student.
// Direction records which side initiated the request; accepted and rejected
// are terminal, a pending outgoing request may also be cancelled (removed).
type ConnectionRequest struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"studentId"`
	StudentName string     `json:"studentName"`
	TeacherID   string     `json:"teacherId"`
	TeacherName string     `json:"teacherName"`
	Direction   string     `json:"direction"` // incoming / outgoing
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}
