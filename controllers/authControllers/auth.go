package authController

import (
	"copyadmin/database"
	"copyadmin/middleware"
	"copyadmin/services"
	authValidator "copyadmin/validators/authValidator"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Login exchanges an externally-issued session token for an API token.
// The OTP flow itself lives in the auth backend; we only trust the user
// id it resolves.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	userID, err := services.NewAuthClient().VerifySession(reqData.SessionToken)
	if err != nil {
		log.Printf("Session verification failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Session verification failed!", nil)
	}

	name, role := "", "TEACHER"
	for _, t := range database.Store.Teachers() {
		if t.ID == userID {
			name = t.Name
			break
		}
	}
	if name == "" {
		for _, s := range database.Store.Students() {
			if s.ID == userID {
				name = s.Name
				role = "STUDENT"
				break
			}
		}
	}

	token, err := middleware.GenerateJWT(userID, name, role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":  token,
		"userId": userID,
		"name":   name,
		"role":   role,
	})
}
