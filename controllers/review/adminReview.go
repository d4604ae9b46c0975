package reviewController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"reviews/contenttypes"
	"reviews/database"
	"reviews/middleware"
	"reviews/models"
)

// FilterChoice is one (key, display label) pair for a list filter.
type FilterChoice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// getReviewableModels generates the choice list for the reviewed_model
// filter. Example output: [(seller, Seller), (product, Product)].
func getReviewableModels() []FilterChoice {
	choices := []FilterChoice{}
	for _, ct := range contenttypes.ReviewableModels() {
		choices = append(choices, FilterChoice{
			Key:   ct.Key,
			Label: contenttypes.Title(ct.Label),
		})
	}
	return choices
}

// reviewedModelFilterChoices returns the reviewed_model filter lookups.
// With fewer than two reviewable types the filter offers no choices and
// stays hidden.
func reviewedModelFilterChoices() []FilterChoice {
	choices := getReviewableModels()
	if len(choices) < 2 {
		return []FilterChoice{}
	}
	return choices
}

// GetFilterChoices returns the lookups for every list filter on the
// review changelist.
func GetFilterChoices(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Filter choices.", fiber.Map{
		"reviewedModel": reviewedModelFilterChoices(),
		"commentApproved": []FilterChoice{
			{Key: "true", Label: "Approved"},
			{Key: "false", Label: "Pending"},
		},
		"score": []FilterChoice{
			{Key: "1", Label: "1"},
			{Key: "2", Label: "2"},
			{Key: "3", Label: "3"},
			{Key: "4", Label: "4"},
			{Key: "5", Label: "5"},
		},
	})
}

// adminReviewRow is one rendered changelist row.
type adminReviewRow struct {
	ID                 uint   `json:"id"`
	ReviewedModelLink  string `json:"reviewedModelLink"`
	ReviewedObjectLink string `json:"reviewedObjectLink"`
	UserName           string `json:"userName"`
	Score              int    `json:"score"`
	Comment            string `json:"comment"`
	CommentApproved    bool   `json:"commentApproved"`
}

// ListReviews returns the admin review changelist with rendered link
// columns and optional reviewed_model / comment_approved / score
// filters.
func ListReviews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("list").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db
	query := db.Model(&models.Review{}).Preload("User")

	// reviewed_model filter: no-op when no value selected
	if reviewedModel := c.Query("reviewed_model"); reviewedModel != "" {
		query = query.Where("content_type = ?", reviewedModel)
	}
	if commentApproved := c.Query("comment_approved"); commentApproved != "" {
		query = query.Where("comment_approved = ?", commentApproved == "true")
	}
	if score := c.QueryInt("score", 0); score > 0 {
		query = query.Where("score = ?", score)
	}

	var total int64
	query.Count(&total)

	var reviewList []models.Review
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&reviewList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	rows := []adminReviewRow{}
	for i := range reviewList {
		r := &reviewList[i]

		objectLink, err := ReviewedObjectLinked(db, r)
		if err != nil {
			log.Printf("Error rendering link for review %d: %v", r.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render review links!", nil)
		}

		rows = append(rows, adminReviewRow{
			ID:                 r.ID,
			ReviewedModelLink:  ReviewedModelLinked(r),
			ReviewedObjectLink: objectLink,
			UserName:           r.User.Name,
			Score:              r.Score,
			Comment:            r.Comment,
			CommentApproved:    r.CommentApproved,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": rows,
		"pagination": fiber.Map{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	})
}

// GetReviewDetails returns the admin detail screen for one review,
// split into read-only and editable field sets.
func GetReviewDetails(c *fiber.Ctx) error {
	db := database.Database.Db

	var review models.Review
	if err := db.Preload("User").First(&review, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	objectLink, err := ReviewedObjectLinked(db, &review)
	if err != nil {
		log.Printf("Error rendering link for review %d: %v", review.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render review links!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review details.", fiber.Map{
		"readonly": fiber.Map{
			"reviewedModelLink":  ReviewedModelLinked(&review),
			"reviewedObjectLink": objectLink,
			"userName":           review.User.Name,
			"score":              review.Score,
			"created":            review.CreatedAt,
			"isUpdated":          review.IsUpdated,
		},
		"editable": fiber.Map{
			"comment":         review.Comment,
			"anonymous":       review.Anonymous,
			"commentApproved": review.CommentApproved,
		},
	})
}

// UpdateReview mutates the editable fields of a review. Read-only
// fields (user, score, target, created, is_updated) are never touched
// by this path.
func UpdateReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdate").(*struct {
		ReviewID        uint    `json:"reviewId"`
		Comment         *string `json:"comment"`
		Anonymous       *bool   `json:"anonymous"`
		CommentApproved *bool   `json:"commentApproved"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review models.Review
	if err := db.First(&review, reqData.ReviewID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Comment != nil {
		updates["comment"] = *reqData.Comment
	}
	if reqData.Anonymous != nil {
		updates["anonymous"] = *reqData.Anonymous
	}
	if reqData.CommentApproved != nil {
		updates["comment_approved"] = *reqData.CommentApproved
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Nothing to update!", nil)
	}

	if err := db.Model(&review).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

// ModerateReview allows an admin to approve/reject a review comment
func ModerateReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModeration").(*struct {
		ReviewID uint   `json:"reviewId"`
		Action   string `json:"action"` // APPROVE, REJECT
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review models.Review
	if err := db.First(&review, reqData.ReviewID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	review.CommentApproved = reqData.Action == models.ModerateApprove

	if err := db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to moderate review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review moderated successfully!", review)
}

// GetReviewStats returns dashboard counters for the admin screen.
func GetReviewStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var total, pending, today, thisWeek, thisMonth int64

	db.Model(&models.Review{}).Count(&total)
	db.Model(&models.Review{}).Where("comment_approved = ?", false).Count(&pending)

	db.Model(&models.Review{}).Where("created_at >= ?", now.BeginningOfDay()).Count(&today)
	db.Model(&models.Review{}).Where("created_at >= ?", now.BeginningOfWeek()).Count(&thisWeek)
	db.Model(&models.Review{}).Where("created_at >= ?", now.BeginningOfMonth()).Count(&thisMonth)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review stats.", fiber.Map{
		"total":     total,
		"pending":   pending,
		"today":     today,
		"thisWeek":  thisWeek,
		"thisMonth": thisMonth,
	})
}
