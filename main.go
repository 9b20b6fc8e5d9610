package main

import (
	"cultura/config"
	paymentControllers "cultura/controllers/payment"
	"cultura/database"
	adminRoutes "cultura/routers/adminRoutes"
	authRoutes "cultura/routers/authRoutes"
	courseRoutes "cultura/routers/courseRoutes"
	paymentRoutes "cultura/routers/paymentRoutes"
	staffRoutes "cultura/routers/staffRoutes"
	"cultura/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	paymentControllers.InitStripe()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	staffRoutes.SetupStaffRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Mirror the CMS catalog on boot and keep it fresh on a schedule
	utils.InitializeCatalogScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
