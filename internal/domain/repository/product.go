package repository

import (
	"context"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// ImageUpload references a file already persisted by the file store.
type ImageUpload struct {
	Filename string
	Filepath string
}

// ProductInput is the mutable attribute set of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  *int64
	Stock       int
}

// ProductRepository describes persistence operations for the catalog.
// Create and Update run product and image writes in one transaction.
type ProductRepository interface {
	Create(ctx context.Context, in ProductInput, images []ImageUpload) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, id int64, in ProductInput, images []ImageUpload) (*model.Product, error)
	// Delete removes the product and its image rows; the returned filepaths
	// let the caller remove binaries after commit.
	Delete(ctx context.Context, id int64) ([]string, error)
	// ReplaceImages returns the filepaths of the rows it removed.
	ReplaceImages(ctx context.Context, productID int64, images []ImageUpload) ([]string, error)
	GetImage(ctx context.Context, productID, imageID int64) (*model.ProductImage, error)
	DeleteImage(ctx context.Context, imageID int64) error
}
