package dto

// ProductRequest body para POST/PUT /api/product.
type ProductRequest struct {
	Description string `json:"description" validate:"required,max=255"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
