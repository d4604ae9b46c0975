package models

import (
	"gorm.io/gorm"
)

// Seller is a reviewable merchant record.
type Seller struct {
	gorm.Model
	Name      string `gorm:"size:80;not null" json:"name"`
	Email     string `gorm:"default:''" json:"email"`
	IsDeleted bool   `gorm:"default:false" json:"isDeleted"`
}

func (Seller) TableName() string {
	return "sellers"
}

func (s Seller) String() string {
	return s.Name
}
