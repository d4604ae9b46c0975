package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reviews/database"
	"reviews/models"
)

// AdminRequired checks that the authenticated user carries the ADMIN
// role. Must run after JWTMiddleware.
func AdminRequired(c *fiber.Ctx) error {
	// Get user ID from context (set by the auth middleware)
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = false",
		userID, "ADMIN").First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}
		// Other DB error
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while checking permissions!",
			"data":    nil,
		})
	}

	c.Locals("adminUser", &user)
	return c.Next()
}
