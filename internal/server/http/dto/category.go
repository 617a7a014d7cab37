package dto

import (
	"time"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// CategoryRequest describes create/update payload for categories.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse is the public projection of a category.
type CategoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToCategoryResponse converts the domain category.
func ToCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
	}
}
