package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"reviews/config"
	"reviews/database"
	authRoutes "reviews/routers/authRoutes"
	reviewRoutes "reviews/routers/reviewRoutes"
	"reviews/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Periodic review aggregate recompute
	utils.InitializeAggregateScheduler()

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
	reviewRoutes.SetupReviewRoutes(app)
	reviewRoutes.SetupAdminReviewRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
