package models

import "time"

// User owns Items and Locations. No soft delete: unique indexes on username
// and email must keep holding after deletes, and accounts are never removed
// through this API anyway.
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	Items        []Item     `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`
	Locations    []Location `gorm:"constraint:OnDelete:CASCADE;" json:"locations,omitempty"`
}
