package models

import (
	"gorm.io/gorm"
)

// ReviewAggregate caches per-target review stats. Recomputed on a
// schedule from approved reviews only.
type ReviewAggregate struct {
	gorm.Model
	ContentType  string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_aggregate_target" json:"contentType"`
	ObjectID     uint    `gorm:"not null;uniqueIndex:idx_aggregate_target" json:"objectId"`
	ReviewCount  int64   `gorm:"default:0" json:"reviewCount"`
	AverageScore float64 `gorm:"default:0" json:"averageScore"`
}

func (ReviewAggregate) TableName() string {
	return "review_aggregates"
}
