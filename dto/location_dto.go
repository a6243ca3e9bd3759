package dto

type CreateLocationInput struct {
	Name             string `json:"name" binding:"required,max=200"`
	Description      string `json:"description" binding:"omitempty,max=1000"`
	Address          string `json:"address" binding:"omitempty,max=500"`
	LocationType     string `json:"locationType" binding:"omitempty,max=50"`
	ParentLocationID *uint  `json:"parentLocationId"`
}

// UpdateLocationInput replaces the location wholesale, mirroring the PUT
// semantics clients rely on: omitting parentLocationId detaches the location
// from its parent.
type UpdateLocationInput struct {
	Name             string `json:"name" binding:"required,max=200"`
	Description      string `json:"description" binding:"omitempty,max=1000"`
	Address          string `json:"address" binding:"omitempty,max=500"`
	LocationType     string `json:"locationType" binding:"omitempty,max=50"`
	ParentLocationID *uint  `json:"parentLocationId"`
}
