package dto

type CreateItemInput struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
	SKU         string   `json:"sku" binding:"omitempty,max=50"`
}

type UpdateItemInput struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	SKU         *string  `json:"sku" binding:"omitempty,max=50"`
}
