package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"reviews/models"
)

func setupAggregateDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Review{}, &models.ReviewAggregate{}))
	return db
}

func seedReview(t *testing.T, db *gorm.DB, contentType string, objectID uint, score int, approved bool) models.Review {
	t.Helper()

	review := models.Review{
		UID:             uuid.NewString(),
		ContentType:     contentType,
		ObjectID:        objectID,
		UserID:          1,
		Score:           score,
		CommentApproved: approved,
	}
	require.NoError(t, db.Create(&review).Error)
	return review
}

func TestRecomputeAggregates(t *testing.T) {
	db := setupAggregateDB(t)

	seedReview(t, db, "product", 1, 5, true)
	seedReview(t, db, "product", 1, 3, true)
	seedReview(t, db, "product", 1, 1, false) // pending, excluded
	seedReview(t, db, "seller", 7, 2, true)

	require.NoError(t, RecomputeAggregates(db))

	var productAgg models.ReviewAggregate
	require.NoError(t, db.Where("content_type = ? AND object_id = ?", "product", 1).First(&productAgg).Error)
	assert.EqualValues(t, 2, productAgg.ReviewCount)
	assert.InDelta(t, 4.0, productAgg.AverageScore, 0.001)

	var sellerAgg models.ReviewAggregate
	require.NoError(t, db.Where("content_type = ? AND object_id = ?", "seller", 7).First(&sellerAgg).Error)
	assert.EqualValues(t, 1, sellerAgg.ReviewCount)
	assert.InDelta(t, 2.0, sellerAgg.AverageScore, 0.001)
}

func TestRecomputeAggregatesUpdatesExisting(t *testing.T) {
	db := setupAggregateDB(t)

	seedReview(t, db, "product", 1, 4, true)
	require.NoError(t, RecomputeAggregates(db))

	seedReview(t, db, "product", 1, 2, true)
	require.NoError(t, RecomputeAggregates(db))

	var count int64
	db.Model(&models.ReviewAggregate{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var agg models.ReviewAggregate
	require.NoError(t, db.Where("content_type = ? AND object_id = ?", "product", 1).First(&agg).Error)
	assert.EqualValues(t, 2, agg.ReviewCount)
	assert.InDelta(t, 3.0, agg.AverageScore, 0.001)
}

func TestRecomputeAggregatesDropsStale(t *testing.T) {
	db := setupAggregateDB(t)

	review := seedReview(t, db, "product", 1, 4, true)
	require.NoError(t, RecomputeAggregates(db))

	var count int64
	db.Model(&models.ReviewAggregate{}).Count(&count)
	require.EqualValues(t, 1, count)

	// Moderator rejects the only approved review
	review.CommentApproved = false
	require.NoError(t, db.Save(&review).Error)
	require.NoError(t, RecomputeAggregates(db))

	db.Model(&models.ReviewAggregate{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// Re-approval recreates the aggregate
	review.CommentApproved = true
	require.NoError(t, db.Save(&review).Error)
	require.NoError(t, RecomputeAggregates(db))

	db.Model(&models.ReviewAggregate{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
