package services

import (
	"copyadmin/database"
	"copyadmin/models"
	"time"
)

func newTestStore() *database.KVStore {
	return database.NewKVStore(database.NewMemoryBackend())
}

// newWorkflowStore seeds a minimal dataset: one teacher and two zombie
// students.
func newWorkflowStore() *database.KVStore {
	store := newTestStore()

	store.SaveTeachers([]models.Teacher{{
		ID:         "t1",
		Name:       "Rajesh Sharma",
		Email:      "rajesh@copytrade.in",
		Status:     models.TeacherStatusActive,
		JoinedDate: time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC),
	}})
	store.SaveStudents([]models.Student{
		{ID: "z1", Name: "Aarav Patel", Email: "aarav@copytrade.in", Status: models.StudentStatusActive, CurrentCapital: 80000},
		{ID: "z2", Name: "Ishita Rao", Email: "ishita@copytrade.in", Status: models.StudentStatusActive, CurrentCapital: 90000},
	})
	return store
}
