package services

import (
	"copyadmin/database"
	"copyadmin/models"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// StudentImportRow is one row of a bulk student upload.
type StudentImportRow struct {
	Name           string  `json:"name" validate:"required,min=3"`
	Email          string  `json:"email" validate:"required,email"`
	Mobile         string  `json:"mobile" validate:"omitempty,len=10,numeric"`
	InitialCapital float64 `json:"initialCapital" validate:"gte=0"`
	RiskPercentage float64 `json:"riskPercentage" validate:"gte=0,lte=100"`
	Strategy       string  `json:"strategy" validate:"omitempty,oneof=conservative balanced aggressive"`
}

// ImportError reports one rejected row; valid rows are still created.
type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportStudents validates and creates students in bulk under teacherID
// (empty teacherID adds them to the zombie pool). Errors are collected
// per row, never raised, so a partial batch succeeds for valid rows.
func ImportStudents(store *database.KVStore, teacherID string, rows []StudentImportRow) ([]models.Student, []ImportError) {
	students := store.Students()

	teacherName := ""
	if teacherID != "" {
		for _, t := range store.Teachers() {
			if t.ID == teacherID {
				teacherName = t.Name
				break
			}
		}
	}

	seen := make(map[string]bool)
	for _, s := range students {
		seen[strings.ToLower(s.Email)] = true
	}

	var created []models.Student
	var importErrors []ImportError

	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			importErrors = append(importErrors, ImportError{Row: i + 1, Error: rowErrorMessage(err)})
			continue
		}
		email := strings.ToLower(row.Email)
		if seen[email] {
			importErrors = append(importErrors, ImportError{Row: i + 1, Error: "Duplicate email: " + row.Email})
			continue
		}
		seen[email] = true

		strategy := row.Strategy
		if strategy == "" {
			strategy = "balanced"
		}
		created = append(created, models.Student{
			ID:             "student-" + uuid.NewString(),
			Name:           row.Name,
			Email:          row.Email,
			Mobile:         row.Mobile,
			TeacherID:      teacherID,
			TeacherName:    teacherName,
			Status:         models.StudentStatusActive,
			InitialCapital: row.InitialCapital,
			CurrentCapital: row.InitialCapital,
			RiskPercentage: row.RiskPercentage,
			Strategy:       strategy,
			JoinedDate:     time.Now(),
		})
	}

	if len(created) > 0 {
		store.SaveStudents(append(students, created...))
		RecomputeAll(store)
	}
	return created, importErrors
}

func rowErrorMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, "Invalid "+strings.ToLower(fe.Field()))
	}
	return strings.Join(fields, "; ")
}
