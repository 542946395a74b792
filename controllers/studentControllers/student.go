package studentController

import (
	"copyadmin/database"
	"copyadmin/middleware"
	"copyadmin/models"
	"copyadmin/services"
	studentValidator "copyadmin/validators/studentValidator"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListStudents returns students, filterable by teacherId or zombie=true.
func ListStudents(c *fiber.Ctx) error {
	students := database.Store.Students()

	teacherID := c.Query("teacherId")
	zombieOnly := c.Query("zombie") == "true"

	if teacherID != "" || zombieOnly {
		filtered := make([]models.Student, 0, len(students))
		for _, s := range students {
			if zombieOnly && !s.IsZombie() {
				continue
			}
			if teacherID != "" && s.TeacherID != teacherID {
				continue
			}
			filtered = append(filtered, s)
		}
		students = filtered
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched!", students)
}

// GetStudent returns one student by id.
func GetStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, s := range database.Store.Students() {
		if s.ID == id {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched!", s)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
}

// CreateStudent adds a single student. An empty teacherId leaves the
// student in the zombie pool.
func CreateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*studentValidator.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	students := database.Store.Students()
	for _, s := range students {
		if s.Email == reqData.Email {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
		}
	}

	teacherName := ""
	if reqData.TeacherID != "" {
		found := false
		for _, t := range database.Store.Teachers() {
			if t.ID == reqData.TeacherID {
				teacherName = t.Name
				found = true
				break
			}
		}
		if !found {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
		}
	}

	status := reqData.Status
	if status == "" {
		status = models.StudentStatusActive
	}
	current := reqData.CurrentCapital
	if current == 0 {
		current = reqData.InitialCapital
	}

	student := models.Student{
		ID:             "student-" + uuid.NewString(),
		Name:           reqData.Name,
		Email:          reqData.Email,
		Mobile:         reqData.Mobile,
		TeacherID:      reqData.TeacherID,
		TeacherName:    teacherName,
		Status:         status,
		InitialCapital: reqData.InitialCapital,
		CurrentCapital: current,
		RiskPercentage: reqData.RiskPercentage,
		Strategy:       reqData.Strategy,
		JoinedDate:     time.Now(),
	}
	database.Store.SaveStudents(append(students, student))
	services.RecomputeAll(database.Store)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student created!", student)
}

// UpdateStudent patches fields in place and recomputes rollups, since
// capital edits feed straight into the owning teacher's totals.
func UpdateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*studentValidator.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id := c.Params("id")
	students := database.Store.Students()
	for i := range students {
		if students[i].ID != id {
			continue
		}
		if reqData.Name != "" {
			students[i].Name = reqData.Name
		}
		if reqData.Email != "" {
			students[i].Email = reqData.Email
		}
		if reqData.Mobile != "" {
			students[i].Mobile = reqData.Mobile
		}
		if reqData.Status != "" {
			students[i].Status = reqData.Status
		}
		if reqData.CurrentCapital != 0 {
			students[i].CurrentCapital = reqData.CurrentCapital
		}
		if reqData.RiskPercentage != 0 {
			students[i].RiskPercentage = reqData.RiskPercentage
		}
		if reqData.Strategy != "" {
			students[i].Strategy = reqData.Strategy
		}
		database.Store.SaveStudents(students)
		services.RecomputeAll(database.Store)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated!", students[i])
	}

	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
}

// DeleteStudent removes the record and recomputes the owning teacher's
// rollups. Trades referencing the student are left as-is.
func DeleteStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	students := database.Store.Students()
	for i := range students {
		if students[i].ID == id {
			database.Store.SaveStudents(append(students[:i], students[i+1:]...))
			services.RecomputeAll(database.Store)
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted!", nil)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
}

// BulkImportStudents creates students in bulk; invalid rows come back as
// a {row, error} list while valid rows are still created.
func BulkImportStudents(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedImport").(*studentValidator.BulkImportRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	created, importErrors := services.ImportStudents(database.Store, reqData.TeacherID, reqData.Rows)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Import finished!", fiber.Map{
		"created": created,
		"errors":  importErrors,
	})
}
