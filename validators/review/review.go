package reviewValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"reviews/middleware"
	"reviews/models"
)

const maxCommentLength = 4000

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		// Validate optional score filter
		if score := c.QueryInt("score", 0); c.Query("score") != "" && (score < 1 || score > 5) {
			errors["score"] = "Score must be between 1 and 5!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("list", reqData)
		return c.Next()
	}
}

func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Score     int    `json:"score"`
			Comment   string `json:"comment"`
			Anonymous bool   `json:"anonymous"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Score
		if reqData.Score < 1 || reqData.Score > 5 {
			errors["score"] = "Score must be between 1 and 5!"
		}

		// Validate Comment
		if len(reqData.Comment) > maxCommentLength {
			errors["comment"] = "Comment is too long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReviewID        uint    `json:"reviewId"`
			Comment         *string `json:"comment"`
			Anonymous       *bool   `json:"anonymous"`
			CommentApproved *bool   `json:"commentApproved"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ReviewID == 0 {
			errors["reviewId"] = "reviewId is required!"
		}
		if reqData.Comment != nil && len(*reqData.Comment) > maxCommentLength {
			errors["comment"] = "Comment is too long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdate", reqData)
		return c.Next()
	}
}

func Moderate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReviewID uint   `json:"reviewId"`
			Action   string `json:"action"` // APPROVE, REJECT
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ReviewID == 0 {
			errors["reviewId"] = "reviewId is required!"
		}

		action := strings.ToUpper(strings.TrimSpace(reqData.Action))
		if action != models.ModerateApprove && action != models.ModerateReject {
			errors["action"] = "Invalid action! Use APPROVE or REJECT."
		}
		reqData.Action = action

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModeration", reqData)
		return c.Next()
	}
}
