package main

import (
	"copyadmin/config"
	"copyadmin/database"
	authRoutes "copyadmin/routers/authRoutes"
	brokerRoutes "copyadmin/routers/brokerRoutes"
	connectionRoutes "copyadmin/routers/connectionRoutes"
	dashboardRoutes "copyadmin/routers/dashboardRoutes"
	studentRoutes "copyadmin/routers/studentRoutes"
	teacherRoutes "copyadmin/routers/teacherRoutes"
	tradeRoutes "copyadmin/routers/tradeRoutes"
	"copyadmin/services"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// First run on an empty store manufactures the synthetic dataset;
	// afterwards this only tops up the zombie pool when it runs dry.
	services.EnsureSeedData(database.Store, services.SeedParams{
		TeacherCount: config.AppConfig.SeedTeacherCount,
		ZombieCount:  config.AppConfig.SeedZombieCount,
		BaseDate:     config.AppConfig.SeedBaseDate,
	})

	rollupCron := services.StartRollupScheduler(database.Store)
	defer rollupCron.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	tradeRoutes.SetupTradeRoutes(app)
	connectionRoutes.SetupConnectionRoutes(app)
	brokerRoutes.SetupBrokerRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
