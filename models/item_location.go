package models

import "time"

// ItemLocation records how many units of an item sit at a location.
// The (ItemID, LocationID) pair is unique and immutable after creation;
// only Quantity changes, guarded by the Version counter.
type ItemLocation struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ItemID     uint      `gorm:"not null;uniqueIndex:idx_item_location" json:"itemId"`
	LocationID uint      `gorm:"not null;uniqueIndex:idx_item_location" json:"locationId"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Version    uint      `gorm:"not null;default:1" json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Item     *Item     `json:"item,omitempty"`
	Location *Location `json:"location,omitempty"`
}
