package repository

import (
	"context"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, name, description string) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, name, description string) (*model.Category, error)
	// Delete fails with ErrConflict while products still reference the category.
	Delete(ctx context.Context, id int64) error
	Products(ctx context.Context, id int64) ([]model.Product, error)
}
