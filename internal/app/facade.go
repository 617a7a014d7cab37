package app

import (
	"context"
	"mime/multipart"

	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
	"github.com/devansh6012/online-store-test/internal/usecase"
)

// StoreFacade aggregates use cases behind the single surface the HTTP layer
// depends on.
type StoreFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	admin   *usecase.AdminUseCase
}

func NewStoreFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, admin *usecase.AdminUseCase) *StoreFacade {
	return &StoreFacade{auth: auth, catalog: catalog, orders: orders, admin: admin}
}

func (f *StoreFacade) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password, firstName, lastName)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StoreFacade) UpdateProfile(ctx context.Context, id int64, change model.ProfileChange) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, id, change)
}

// DeleteAccount shares the admin deletion rules: users with order history
// cannot be removed.
func (f *StoreFacade) DeleteAccount(ctx context.Context, id int64) error {
	return f.admin.DeleteUser(ctx, id)
}

func (f *StoreFacade) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	return f.catalog.ListProducts(ctx, filter)
}

func (f *StoreFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, in, files)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, id int64, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, id, in, files)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StoreFacade) ReplaceProductImages(ctx context.Context, productID int64, files []*multipart.FileHeader) (*model.Product, error) {
	return f.catalog.ReplaceProductImages(ctx, productID, files)
}

func (f *StoreFacade) DeleteProductImage(ctx context.Context, productID, imageID int64) error {
	return f.catalog.DeleteProductImage(ctx, productID, imageID)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.ListCategories(ctx)
}

func (f *StoreFacade) Category(ctx context.Context, id int64) (*model.Category, error) {
	return f.catalog.GetCategory(ctx, id)
}

func (f *StoreFacade) CategoryProducts(ctx context.Context, id int64) ([]model.Product, error) {
	return f.catalog.CategoryProducts(ctx, id)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, name, description)
}

func (f *StoreFacade) UpdateCategory(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, id, name, description)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StoreFacade) PlaceOrder(ctx context.Context, userID int64, lines []model.OrderLine, total float64, shipping model.ShippingDetails) (*model.Order, error) {
	return f.orders.Place(ctx, userID, lines, total, shipping)
}

func (f *StoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) Order(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return f.orders.GetByUser(ctx, orderID, userID)
}

func (f *StoreFacade) CancelOrder(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return f.orders.CancelByUser(ctx, orderID, userID)
}

func (f *StoreFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StoreFacade) OrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StoreFacade) Stats(ctx context.Context) (*model.StoreStats, error) {
	return f.admin.Stats(ctx)
}

func (f *StoreFacade) Users(ctx context.Context) ([]model.UserSummary, error) {
	return f.admin.ListUsers(ctx)
}

func (f *StoreFacade) UpdateUserRole(ctx context.Context, userID int64, role model.Role) error {
	return f.admin.UpdateUserRole(ctx, userID, role)
}

func (f *StoreFacade) DeleteUser(ctx context.Context, userID int64) error {
	return f.admin.DeleteUser(ctx, userID)
}
