package models

import "time"

const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

// Student belongs to at most one Teacher. An empty TeacherID marks the
// student as a "zombie" — unaffiliated and eligible for connection requests.
type Student struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile"`
	TeacherID      string    `json:"teacherId"`
	TeacherName    string    `json:"teacherName"`
	Status         string    `json:"status"`
	InitialCapital float64   `json:"initialCapital"`
	CurrentCapital float64   `json:"currentCapital"`
	RiskPercentage float64   `json:"riskPercentage"`
	Strategy       string    `json:"strategy"`
	JoinedDate     time.Time `json:"joinedDate"`
}

// IsZombie reports whether the student has no owning teacher.
func (s Student) IsZombie() bool {
	return s.TeacherID == ""
}
