package models

import (
	"gorm.io/gorm"
)

// ModerateAction enum values
const (
	ModerateApprove = "APPROVE"
	ModerateReject  = "REJECT"
)

// Review is a user-submitted rating/comment attached to some other
// record. The reviewed record is referenced polymorphically through a
// (content type key, object id) pair resolved against the content-type
// registry; only types registered as reviewable are valid targets.
type Review struct {
	gorm.Model
	UID             string `gorm:"type:varchar(36);uniqueIndex" json:"uid"`
	ContentType     string `gorm:"type:varchar(50);not null;index" json:"contentType"`
	ObjectID        uint   `gorm:"not null;index" json:"objectId"`
	UserID          uint   `gorm:"not null;index" json:"userId"`
	Score           int    `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment         string `gorm:"type:text" json:"comment"`
	CommentApproved bool   `gorm:"default:false" json:"commentApproved"`
	Anonymous       bool   `gorm:"default:false" json:"anonymous"`

	// Set when the submitter resubmits an existing review
	IsUpdated bool `gorm:"default:false" json:"isUpdated"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
