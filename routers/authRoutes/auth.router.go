package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "reviews/controllers/auth"
	authValidator "reviews/validators/auth"
)

// SetupAuthRoutes sets up signup/login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
