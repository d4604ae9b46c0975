package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"reviews/database"
	"reviews/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[AGGREGATE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

type aggregateRow struct {
	ContentType  string
	ObjectID     uint
	ReviewCount  int64
	AverageScore float64
}

// RecomputeAggregates rebuilds the per-target review aggregates from
// approved reviews. Targets whose last approved review disappeared get
// their stale aggregate removed.
func RecomputeAggregates(db *gorm.DB) error {
	var rows []aggregateRow
	if err := db.Model(&models.Review{}).
		Select("content_type, object_id, COUNT(*) AS review_count, AVG(score) AS average_score").
		Where("comment_approved = ?", true).
		Group("content_type, object_id").
		Scan(&rows).Error; err != nil {
		return err
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		seen[fmt.Sprintf("%s:%d", row.ContentType, row.ObjectID)] = true

		var agg models.ReviewAggregate
		err := db.Where("content_type = ? AND object_id = ?", row.ContentType, row.ObjectID).
			First(&agg).Error
		if err == gorm.ErrRecordNotFound {
			agg = models.ReviewAggregate{
				ContentType:  row.ContentType,
				ObjectID:     row.ObjectID,
				ReviewCount:  row.ReviewCount,
				AverageScore: row.AverageScore,
			}
			if err := db.Create(&agg).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		agg.ReviewCount = row.ReviewCount
		agg.AverageScore = row.AverageScore
		if err := db.Save(&agg).Error; err != nil {
			return err
		}
	}

	// Drop aggregates no longer backed by any approved review
	var existing []models.ReviewAggregate
	if err := db.Find(&existing).Error; err != nil {
		return err
	}
	for _, agg := range existing {
		if !seen[fmt.Sprintf("%s:%d", agg.ContentType, agg.ObjectID)] {
			// Hard delete: a soft-deleted row would block the unique
			// index if the target gets approved reviews again
			if err := db.Unscoped().Delete(&agg).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// InitializeAggregateScheduler starts the periodic aggregate recompute
func InitializeAggregateScheduler() *cron.Cron {
	logScheduler("Initializing review aggregate scheduler...")

	c := cron.New()

	c.AddFunc("*/10 * * * *", func() {
		if err := RecomputeAggregates(database.Database.Db); err != nil {
			logScheduler("Error recomputing review aggregates: " + err.Error())
		}
	})

	c.Start()

	logScheduler("Review aggregate scheduler initialized successfully")
	return c
}
