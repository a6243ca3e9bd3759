package models

import "time"

type Item struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Price       float64   `gorm:"type:decimal(18,2);not null" json:"price"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	SKU         string    `gorm:"size:50" json:"sku,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	ItemLocations []ItemLocation `gorm:"constraint:OnDelete:CASCADE;" json:"itemLocations,omitempty"`
}
