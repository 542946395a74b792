package dashboardController

import (
	"copyadmin/database"
	"copyadmin/middleware"
	"copyadmin/services"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetStats recomputes and returns the platform snapshot. Recomputing on
// read keeps the stored snapshot in lockstep with the collections.
func GetStats(c *fiber.Ctx) error {
	stats := services.RecomputeAll(database.Store)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched!", stats)
}

// GetActivityFeed returns the newest activity entries across all teachers.
func GetActivityFeed(c *fiber.Ctx) error {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	feed := database.Store.ActivityLogs()
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity fetched!", feed)
}

// GetSeedInfo reports when the synthetic dataset was generated.
func GetSeedInfo(c *fiber.Ctx) error {
	generatedAt, ok := database.Store.SeedGeneratedAt()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No seed data generated.", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seed info fetched!", fiber.Map{
		"generatedAt": generatedAt,
	})
}
