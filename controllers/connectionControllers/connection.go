package connectionController

import (
	"copyadmin/database"
	"copyadmin/middleware"
	"copyadmin/models"
	"copyadmin/services"
	"copyadmin/utils"
	connectionValidator "copyadmin/validators/connectionValidator"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListConnections returns the acting teacher's requests, filterable by
// direction and status.
func ListConnections(c *fiber.Ctx) error {
	teacherID := c.Locals("userId").(string)
	direction := c.Query("direction")
	status := c.Query("status")

	var connections []models.ConnectionRequest
	for _, conn := range database.Store.Connections() {
		if conn.TeacherID != teacherID {
			continue
		}
		if direction != "" && conn.Direction != direction {
			continue
		}
		if status != "" && conn.Status != status {
			continue
		}
		connections = append(connections, conn)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Connection requests fetched!", connections)
}

// ListZombieStudents returns the pool of unaffiliated students.
func ListZombieStudents(c *fiber.Ctx) error {
	zombies := services.ListZombieStudents(database.Store)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unaffiliated students fetched!", zombies)
}

// CreateConnection opens a pending request from the acting teacher to a
// zombie student.
func CreateConnection(c *fiber.Ctx) error {
	teacherID := c.Locals("userId").(string)

	reqData, ok := c.Locals("validatedRequest").(*connectionValidator.CreateRequestBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request, err := services.CreateRequest(database.Store, teacherID, reqData.StudentID, reqData.Direction)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateRequest):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request already pending for this student!", nil)
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher or student not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create request!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Connection request created!", request)
}

// AcceptConnection accepts a pending request and links the student.
func AcceptConnection(c *fiber.Ctx) error {
	request, err := services.Accept(database.Store, c.Params("id"))
	if err != nil {
		return connectionErrorResponse(c, err)
	}

	// Notify the student off the request path.
	for _, s := range database.Store.Students() {
		if s.ID == request.StudentID && s.Email != "" {
			go func(email, student, teacher string) {
				if err := utils.SendConnectionAcceptedEmail(email, student, teacher); err != nil {
					log.Printf("Failed to send acceptance email to %s: %v", email, err)
				}
			}(s.Email, request.StudentName, request.TeacherName)
			break
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Connection request accepted!", request)
}

// RejectConnection rejects a pending request; the student stays zombie.
func RejectConnection(c *fiber.Ctx) error {
	request, err := services.Reject(database.Store, c.Params("id"))
	if err != nil {
		return connectionErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Connection request rejected!", request)
}

// CancelConnection removes an outgoing request entirely.
func CancelConnection(c *fiber.Ctx) error {
	if err := services.Cancel(database.Store, c.Params("id")); err != nil {
		return connectionErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Connection request cancelled!", nil)
}

func connectionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Connection request not found!", nil)
	case errors.Is(err, services.ErrInvalidTransition):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request is no longer pending!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Operation failed!", nil)
	}
}
