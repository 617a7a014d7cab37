package dto

import (
	"time"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// ProductResponse is the catalog projection of a product.
type ProductResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CategoryID   *int64    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Stock        int       `json:"stock"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductListResponse is the paginated catalog page.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToProductResponse converts the domain product.
func ToProductResponse(p model.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Stock:        p.Stock,
		Images:       images,
		CreatedAt:    p.CreatedAt,
	}
}

// ToProductResponses converts a product slice.
func ToProductResponses(products []model.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ToProductResponse(p))
	}
	return result
}
