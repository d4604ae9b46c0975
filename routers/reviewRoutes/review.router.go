package reviewRoutes

import (
	"github.com/gofiber/fiber/v2"

	reviewController "reviews/controllers/review"
	"reviews/middleware"
	reviewValidator "reviews/validators/review"
)

// SetupReviewRoutes sets up user-facing review routes
func SetupReviewRoutes(app *fiber.App) {
	userGroup := app.Group("/review")

	// Submit/update a review for a reviewable record
	userGroup.Post("/:model/:id", reviewValidator.Submit(), middleware.JWTMiddleware, reviewController.SubmitReview)

	// Public approved reviews and cached aggregate
	userGroup.Get("/:model/:id/aggregate", reviewController.GetReviewAggregate)
	userGroup.Get("/:model/:id", reviewController.GetPublicReviews)
}

// SetupAdminReviewRoutes sets up the review admin changelist and detail screens
func SetupAdminReviewRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/review")

	// Changelist with filters, and the dynamic filter lookups
	adminGroup.Get("/list", reviewValidator.List(), middleware.JWTMiddleware, middleware.AdminRequired, reviewController.ListReviews)
	adminGroup.Get("/filters", middleware.JWTMiddleware, middleware.AdminRequired, reviewController.GetFilterChoices)

	// Dashboard counters
	adminGroup.Get("/stats", middleware.JWTMiddleware, middleware.AdminRequired, reviewController.GetReviewStats)

	// Detail screen and editable-field updates
	adminGroup.Get("/details/:id", middleware.JWTMiddleware, middleware.AdminRequired, reviewController.GetReviewDetails)
	adminGroup.Put("/update", reviewValidator.Update(), middleware.JWTMiddleware, middleware.AdminRequired, reviewController.UpdateReview)

	// Moderation
	adminGroup.Post("/moderate", reviewValidator.Moderate(), middleware.JWTMiddleware, middleware.AdminRequired, reviewController.ModerateReview)
}
