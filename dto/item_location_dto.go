package dto

type CreateItemLocationInput struct {
	ItemID     uint `json:"itemId" binding:"required"`
	LocationID uint `json:"locationId" binding:"required"`
	Quantity   *int `json:"quantity" binding:"required,gte=0"`
}

// UpdateItemLocationInput changes the stored quantity. The item/location
// pairing is immutable; repairing requires delete + create. Version is the
// optimistic-concurrency token from the last read.
type UpdateItemLocationInput struct {
	Quantity *int  `json:"quantity" binding:"required,gte=0"`
	Version  *uint `json:"version" binding:"required"`
}
