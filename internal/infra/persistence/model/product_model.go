package model

import (
	"time"
)

// ProductModel mirrors the 'products' table. There is deliberately no foreign
// key to users: authorization is "any valid token", not owner-only.
type ProductModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);index;not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	InStock     bool    `gorm:"not null;default:true"`
	ImageURL    string  `gorm:"type:varchar(512)"`
	Category    string  `gorm:"type:varchar(100);not null;default:'general'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
