package reviewController

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviews/contenttypes"
	"reviews/database"
	"reviews/middleware"
	"reviews/models"
)

// SubmitReview allows a user to submit a review for a reviewable record
func SubmitReview(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	modelKey := c.Params("model")
	id, _ := c.ParamsInt("id")
	objectId := uint(id)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Score     int    `json:"score"`
		Comment   string `json:"comment"`
		Anonymous bool   `json:"anonymous"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The target must resolve to an existing record of a reviewable type
	if _, registered := contenttypes.Get(modelKey); !registered {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This record type cannot be reviewed!", nil)
	}
	if _, err := contenttypes.Resolve(db, modelKey, objectId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reviewed record not found!", nil)
	}

	// Resubmission updates the existing review and flags it
	var existing models.Review
	err := db.Where("content_type = ? AND object_id = ? AND user_id = ?", modelKey, objectId, userId).
		First(&existing).Error
	if err == nil {
		existing.Score = reqData.Score
		existing.Comment = reqData.Comment
		existing.Anonymous = reqData.Anonymous
		existing.CommentApproved = false // re-enters moderation
		existing.IsUpdated = true

		if err := db.Save(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully! Pending approval.", existing)
	}
	if err != gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	review := models.Review{
		UID:         uuid.NewString(),
		ContentType: modelKey,
		ObjectID:    objectId,
		UserID:      userId,
		Score:       reqData.Score,
		Comment:     reqData.Comment,
		Anonymous:   reqData.Anonymous,
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully! Pending approval.", review)
}

// GetPublicReviews returns approved reviews for a record (Visible to all)
func GetPublicReviews(c *fiber.Ctx) error {
	modelKey := c.Params("model")
	objectId, _ := c.ParamsInt("id")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Review{}).
		Where("content_type = ? AND object_id = ? AND comment_approved = ?", modelKey, objectId, true).
		Count(&total)

	var reviewList []models.Review
	if err := db.Where("content_type = ? AND object_id = ? AND comment_approved = ?", modelKey, objectId, true).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name") // Only fetch name
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviewList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewResponse struct {
		UID       string `json:"uid"`
		Score     int    `json:"score"`
		Comment   string `json:"comment"`
		UserName  string `json:"userName"`
		IsUpdated bool   `json:"isUpdated"`
	}

	response := []ReviewResponse{}
	for _, r := range reviewList {
		userName := r.User.Name
		if r.Anonymous {
			userName = "Anonymous"
		}
		response = append(response, ReviewResponse{
			UID:       r.UID,
			Score:     r.Score,
			Comment:   r.Comment,
			UserName:  userName,
			IsUpdated: r.IsUpdated,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetReviewAggregate returns the cached review count and average score
// for a record
func GetReviewAggregate(c *fiber.Ctx) error {
	modelKey := c.Params("model")
	objectId, _ := c.ParamsInt("id")

	db := database.Database.Db

	var agg models.ReviewAggregate
	if err := db.Where("content_type = ? AND object_id = ?", modelKey, objectId).
		First(&agg).Error; err != nil {
		// No approved reviews yet
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Review aggregate.", fiber.Map{
			"reviewCount":  0,
			"averageScore": 0,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review aggregate.", fiber.Map{
		"reviewCount":  agg.ReviewCount,
		"averageScore": agg.AverageScore,
	})
}
