package models

import "time"

// Location forms a forest per owner: ParentLocationID either is absent or
// references another location of the same owner. The parent link is never
// cascade-deleted; deleting a location with children is rejected instead.
type Location struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"userId"`
	Name             string    `gorm:"size:200;not null" json:"name"`
	Description      string    `gorm:"size:1000" json:"description,omitempty"`
	Address          string    `gorm:"size:500" json:"address,omitempty"`
	LocationType     string    `gorm:"size:50;not null;default:'General'" json:"locationType"`
	ParentLocationID *uint     `gorm:"index" json:"parentLocationId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	ParentLocation *Location      `gorm:"foreignKey:ParentLocationID;constraint:OnDelete:RESTRICT;" json:"parentLocation,omitempty"`
	ChildLocations []Location     `gorm:"foreignKey:ParentLocationID" json:"childLocations,omitempty"`
	ItemLocations  []ItemLocation `gorm:"constraint:OnDelete:CASCADE;" json:"itemLocations,omitempty"`
}
