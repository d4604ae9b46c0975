package models

import (
	"gorm.io/gorm"
)

// Product is a reviewable catalog record.
type Product struct {
	gorm.Model
	Name      string `gorm:"size:40;unique;not null" json:"name"`
	IsDeleted bool   `gorm:"default:false" json:"isDeleted"`
}

func (Product) TableName() string {
	return "products"
}

func (p Product) String() string {
	return p.Name
}
