package services

import (
	"copyadmin/database"
	"copyadmin/models"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListZombieStudents returns every student with no owning teacher — the
// pool a teacher may request connections to.
func ListZombieStudents(store *database.KVStore) []models.Student {
	var zombies []models.Student
	for _, s := range store.Students() {
		if s.IsZombie() {
			zombies = append(zombies, s)
		}
	}
	return zombies
}

// CreateRequest appends a pending connection request for the given pair.
// Returns ErrDuplicateRequest when a pending request for the same pair
// already exists, ErrNotFound when either side is missing.
func CreateRequest(store *database.KVStore, teacherID, studentID, direction string) (models.ConnectionRequest, error) {
	var teacher *models.Teacher
	for _, t := range store.Teachers() {
		if t.ID == teacherID {
			teacher = &t
			break
		}
	}
	if teacher == nil {
		return models.ConnectionRequest{}, fmt.Errorf("teacher %s: %w", teacherID, ErrNotFound)
	}

	var student *models.Student
	for _, s := range store.Students() {
		if s.ID == studentID {
			student = &s
			break
		}
	}
	if student == nil {
		return models.ConnectionRequest{}, fmt.Errorf("student %s: %w", studentID, ErrNotFound)
	}

	connections := store.Connections()
	for _, c := range connections {
		if c.TeacherID == teacherID && c.StudentID == studentID && c.Status == models.ConnectionStatusPending {
			return models.ConnectionRequest{}, ErrDuplicateRequest
		}
	}

	if direction != models.DirectionIncoming {
		direction = models.DirectionOutgoing
	}

	request := models.ConnectionRequest{
		ID:          "conn-" + uuid.NewString(),
		StudentID:   student.ID,
		StudentName: student.Name,
		TeacherID:   teacher.ID,
		TeacherName: teacher.Name,
		Direction:   direction,
		Status:      models.ConnectionStatusPending,
		CreatedAt:   time.Now(),
	}
	store.SaveConnections(append(connections, request))
	return request, nil
}

// Accept moves a pending request to accepted and links the student to the
// request's teacher. Accepting a non-pending request returns
// ErrInvalidTransition and mutates nothing, so RespondedAt never shifts.
func Accept(store *database.KVStore, requestID string) (models.ConnectionRequest, error) {
	connections := store.Connections()
	idx := findConnection(connections, requestID)
	if idx < 0 {
		return models.ConnectionRequest{}, ErrNotFound
	}
	if connections[idx].Status != models.ConnectionStatusPending {
		return connections[idx], ErrInvalidTransition
	}

	students := store.Students()
	sIdx := -1
	for i, s := range students {
		if s.ID == connections[idx].StudentID {
			sIdx = i
			break
		}
	}
	if sIdx < 0 {
		return models.ConnectionRequest{}, fmt.Errorf("student %s: %w", connections[idx].StudentID, ErrNotFound)
	}

	now := time.Now()
	connections[idx].Status = models.ConnectionStatusAccepted
	connections[idx].RespondedAt = &now
	students[sIdx].TeacherID = connections[idx].TeacherID
	students[sIdx].TeacherName = connections[idx].TeacherName

	store.SaveConnections(connections)
	store.SaveStudents(students)

	appendActivityLog(store, connections[idx].TeacherID, models.ActionStudentAdded,
		students[sIdx].Name+" connected via request")
	RecomputeAll(store)
	return connections[idx], nil
}

// Reject moves a pending request to rejected. No student mutation.
func Reject(store *database.KVStore, requestID string) (models.ConnectionRequest, error) {
	connections := store.Connections()
	idx := findConnection(connections, requestID)
	if idx < 0 {
		return models.ConnectionRequest{}, ErrNotFound
	}
	if connections[idx].Status != models.ConnectionStatusPending {
		return connections[idx], ErrInvalidTransition
	}

	now := time.Now()
	connections[idx].Status = models.ConnectionStatusRejected
	connections[idx].RespondedAt = &now
	store.SaveConnections(connections)
	return connections[idx], nil
}

// Cancel removes the request entirely regardless of status. In practice
// only outgoing pending requests get cancelled.
func Cancel(store *database.KVStore, requestID string) error {
	connections := store.Connections()
	idx := findConnection(connections, requestID)
	if idx < 0 {
		return ErrNotFound
	}
	store.SaveConnections(append(connections[:idx], connections[idx+1:]...))
	return nil
}

func findConnection(connections []models.ConnectionRequest, requestID string) int {
	for i, c := range connections {
		if c.ID == requestID {
			return i
		}
	}
	return -1
}

func appendActivityLog(store *database.KVStore, teacherID, action, details string) {
	logs := store.ActivityLogs()
	entry := models.ActivityLog{
		ID:        "log-" + uuid.NewString(),
		TeacherID: teacherID,
		Action:    action,
		Timestamp: time.Now(),
		Details:   details,
	}
	// Feed stays sorted newest-first.
	store.SaveActivityLogs(append([]models.ActivityLog{entry}, logs...))
}
