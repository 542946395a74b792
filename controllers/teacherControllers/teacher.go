package teacherController

import (
	"copyadmin/database"
	"copyadmin/middleware"
	"copyadmin/models"
	"copyadmin/services"
	teacherValidator "copyadmin/validators/teacherValidator"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListTeachers returns all teachers, optionally filtered by status.
func ListTeachers(c *fiber.Ctx) error {
	teachers := database.Store.Teachers()

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Teacher, 0, len(teachers))
		for _, t := range teachers {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		teachers = filtered
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teachers fetched!", teachers)
}

// GetTeacher returns one teacher by id.
func GetTeacher(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, t := range database.Store.Teachers() {
		if t.ID == id {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher fetched!", t)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
}

// CreateTeacher adds a teacher with empty rollups and logs the creation.
func CreateTeacher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTeacher").(*teacherValidator.TeacherRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	teachers := database.Store.Teachers()
	for _, t := range teachers {
		if t.Email == reqData.Email {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
		}
	}

	teacher := models.Teacher{
		ID:             "teacher-" + uuid.NewString(),
		Name:           reqData.Name,
		Email:          reqData.Email,
		Mobile:         reqData.Mobile,
		Specialization: reqData.Specialization,
		Status:         reqData.Status,
		JoinedDate:     time.Now(),
	}
	database.Store.SaveTeachers(append(teachers, teacher))

	appendActivityLog(teacher.ID, models.ActionProfileCreated, teacher.Name+" joined the platform")
	services.RecomputeAll(database.Store)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Teacher created!", teacher)
}

// UpdateTeacher patches profile fields and funnels rollups through a full
// recompute so a status toggle never leaves stale aggregates behind.
func UpdateTeacher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTeacher").(*teacherValidator.TeacherRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id := c.Params("id")
	teachers := database.Store.Teachers()
	for i := range teachers {
		if teachers[i].ID != id {
			continue
		}
		if reqData.Name != "" {
			teachers[i].Name = reqData.Name
		}
		if reqData.Email != "" {
			teachers[i].Email = reqData.Email
		}
		if reqData.Mobile != "" {
			teachers[i].Mobile = reqData.Mobile
		}
		if reqData.Specialization != "" {
			teachers[i].Specialization = reqData.Specialization
		}
		if reqData.Status != "" {
			teachers[i].Status = reqData.Status
		}
		database.Store.SaveTeachers(teachers)

		appendActivityLog(id, models.ActionProfileUpdated, teachers[i].Name+" updated trading profile")
		services.RecomputeAll(database.Store)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher updated!", teachers[i])
	}

	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
}

// DeleteTeacher removes the record. Students and trades are not cascaded;
// list endpoints re-filter against the remaining teachers.
func DeleteTeacher(c *fiber.Ctx) error {
	id := c.Params("id")
	teachers := database.Store.Teachers()
	for i := range teachers {
		if teachers[i].ID == id {
			database.Store.SaveTeachers(append(teachers[:i], teachers[i+1:]...))
			services.RecomputeAll(database.Store)
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher deleted!", nil)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
}

// GetTeacherActivity returns the teacher's activity feed, newest first.
func GetTeacherActivity(c *fiber.Ctx) error {
	id := c.Params("id")
	var feed []models.ActivityLog
	for _, entry := range database.Store.ActivityLogs() {
		if entry.TeacherID == id {
			feed = append(feed, entry)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity fetched!", feed)
}

// PanicCloseTrades force-completes every open trade for the acting
// teacher and all of that teacher's students.
func PanicCloseTrades(c *fiber.Ctx) error {
	teacherID := c.Locals("userId").(string)

	closed, err := services.CloseAllTrades(database.Store, teacherID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Panic close failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Open trades closed!", fiber.Map{
		"closedTrades": closed,
	})
}

// RecomputeRollups re-derives every teacher's aggregates on demand.
func RecomputeRollups(c *fiber.Ctx) error {
	stats := services.RecomputeAll(database.Store)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rollups recomputed!", stats)
}

func appendActivityLog(teacherID, action, details string) {
	logs := database.Store.ActivityLogs()
	entry := models.ActivityLog{
		ID:        "log-" + uuid.NewString(),
		TeacherID: teacherID,
		Action:    action,
		Timestamp: time.Now(),
		Details:   details,
	}
	database.Store.SaveActivityLogs(append([]models.ActivityLog{entry}, logs...))
}
