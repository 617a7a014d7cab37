package usecase

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/devansh6012/online-store-test/internal/adapter/filestore"
	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// CatalogUseCase covers product and category management.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	files      filestore.Store
	maxImages  int
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository, files filestore.Store, maxImages int) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories, files: files, maxImages: maxImages}
}

// ListProducts returns the filtered page and total match count.
func (u *CatalogUseCase) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	return u.products.List(ctx, filter)
}

// GetProduct fetches a single product with its images.
func (u *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

func validateProductInput(in repository.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return domainErrors.ErrValidation
	}
	if in.Price <= 0 || in.Stock < 0 {
		return domainErrors.ErrValidation
	}
	return nil
}

// saveUploads writes upload files to disk and returns their records. On any
// failure already written files are removed again.
func (u *CatalogUseCase) saveUploads(files []*multipart.FileHeader) ([]repository.ImageUpload, error) {
	if len(files) > u.maxImages {
		return nil, domainErrors.ErrValidation
	}

	var uploads []repository.ImageUpload
	for _, file := range files {
		filename, path, err := u.files.Save(file)
		if err != nil {
			u.removeFiles(uploadPaths(uploads))
			return nil, err
		}
		uploads = append(uploads, repository.ImageUpload{Filename: filename, Filepath: path})
	}
	return uploads, nil
}

func uploadPaths(uploads []repository.ImageUpload) []string {
	paths := make([]string, 0, len(uploads))
	for _, up := range uploads {
		paths = append(paths, up.Filepath)
	}
	return paths
}

func (u *CatalogUseCase) removeFiles(paths []string) {
	for _, path := range paths {
		_ = u.files.Remove(path)
	}
}

// CreateProduct stores product data and its uploaded images.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := u.categories.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	uploads, err := u.saveUploads(files)
	if err != nil {
		return nil, err
	}

	product, err := u.products.Create(ctx, in, uploads)
	if err != nil {
		u.removeFiles(uploadPaths(uploads))
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces product fields and appends any new images.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := u.categories.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	uploads, err := u.saveUploads(files)
	if err != nil {
		return nil, err
	}

	product, err := u.products.Update(ctx, id, in, uploads)
	if err != nil {
		u.removeFiles(uploadPaths(uploads))
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product row and its stored image files.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	paths, err := u.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	u.removeFiles(paths)
	return nil
}

// ReplaceProductImages swaps the full image set for the product.
func (u *CatalogUseCase) ReplaceProductImages(ctx context.Context, productID int64, files []*multipart.FileHeader) (*model.Product, error) {
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	uploads, err := u.saveUploads(files)
	if err != nil {
		return nil, err
	}

	removed, err := u.products.ReplaceImages(ctx, productID, uploads)
	if err != nil {
		u.removeFiles(uploadPaths(uploads))
		return nil, err
	}
	u.removeFiles(removed)
	return u.products.GetByID(ctx, productID)
}

// DeleteProductImage removes a single image record and its file.
func (u *CatalogUseCase) DeleteProductImage(ctx context.Context, productID, imageID int64) error {
	img, err := u.products.GetImage(ctx, productID, imageID)
	if err != nil {
		return err
	}
	if err := u.products.DeleteImage(ctx, imageID); err != nil {
		return err
	}
	u.removeFiles([]string{img.Filepath})
	return nil
}

// ListCategories returns all categories with product counts.
func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// GetCategory fetches a category by identifier.
func (u *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

// CategoryProducts lists products attached to the category.
func (u *CatalogUseCase) CategoryProducts(ctx context.Context, id int64) ([]model.Product, error) {
	if _, err := u.categories.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.categories.Products(ctx, id)
}

// CreateCategory stores a new category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.categories.Create(ctx, name, description)
}

// UpdateCategory replaces category fields.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.categories.Update(ctx, id, name, description)
}

// DeleteCategory removes an empty category. Categories still referenced by
// products are rejected with ErrConflict.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}
