package usecase

import (
	"go.uber.org/fx"

	"github.com/devansh6012/online-store-test/internal/adapter/filestore"
	"github.com/devansh6012/online-store-test/internal/config"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newCatalogUseCase,
	NewOrderUseCase,
	NewAdminUseCase,
)

type catalogParams struct {
	fx.In

	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Files      filestore.Store
	Config     *config.Config
}

func newCatalogUseCase(p catalogParams) *CatalogUseCase {
	return NewCatalogUseCase(p.Products, p.Categories, p.Files, p.Config.MaxUploadImages)
}
