package models

import (
	"gorm.io/gorm"

	"reviews/contenttypes"
)

// RegisterReviewables opts the reviewable model types into the
// content-type registry. Called once after the database connects;
// anything not registered here is not a valid review target.
func RegisterReviewables() error {
	if err := contenttypes.Register(contenttypes.ContentType{
		Key:   "product",
		Label: "product",
		Resolve: func(db *gorm.DB, id uint) (string, error) {
			var p Product
			if err := db.Where("is_deleted = ?", false).First(&p, id).Error; err != nil {
				return "", err
			}
			return p.String(), nil
		},
	}); err != nil {
		return err
	}

	return contenttypes.Register(contenttypes.ContentType{
		Key:   "seller",
		Label: "seller",
		Resolve: func(db *gorm.DB, id uint) (string, error) {
			var s Seller
			if err := db.Where("is_deleted = ?", false).First(&s, id).Error; err != nil {
				return "", err
			}
			return s.String(), nil
		},
	})
}
