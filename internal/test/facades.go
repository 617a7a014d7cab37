package test

import (
	"context"
	"mime/multipart"

	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, string, string) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	ParseFn         func(string) (int64, error)
	UserFn          func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, model.ProfileChange) (*model.User, error)
	DeleteAccountFn func(context.Context, int64) error
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, firstName, lastName)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// User returns account details for the identifier.
func (s AuthFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com", Role: model.RoleCustomer}, nil
}

// UpdateProfile applies configured override or echoes default user.
func (s AuthFacadeStub) UpdateProfile(ctx context.Context, id int64, change model.ProfileChange) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, id, change)
	}
	return &model.User{ID: id, Email: "user@example.com", Role: model.RoleCustomer}, nil
}

// DeleteAccount delegates to override.
func (s AuthFacadeStub) DeleteAccount(ctx context.Context, id int64) error {
	if s.DeleteAccountFn != nil {
		return s.DeleteAccountFn(ctx, id)
	}
	return nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ListProductsFn     func(context.Context, model.ProductFilter) ([]model.Product, int64, error)
	ProductFn          func(context.Context, int64) (*model.Product, error)
	CreateProductFn    func(context.Context, repository.ProductInput, []*multipart.FileHeader) (*model.Product, error)
	UpdateProductFn    func(context.Context, int64, repository.ProductInput, []*multipart.FileHeader) (*model.Product, error)
	DeleteProductFn    func(context.Context, int64) error
	ReplaceImagesFn    func(context.Context, int64, []*multipart.FileHeader) (*model.Product, error)
	DeleteImageFn      func(context.Context, int64, int64) error
	CategoriesFn       func(context.Context) ([]model.Category, error)
	CategoryFn         func(context.Context, int64) (*model.Category, error)
	CategoryProductsFn func(context.Context, int64) ([]model.Product, error)
	CreateCategoryFn   func(context.Context, string, string) (*model.Category, error)
	UpdateCategoryFn   func(context.Context, int64, string, string) (*model.Category, error)
	DeleteCategoryFn   func(context.Context, int64) error
}

// ListProducts delegates to override or returns a single product page.
func (s CatalogFacadeStub) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	if s.ListProductsFn != nil {
		return s.ListProductsFn(ctx, filter)
	}
	return []model.Product{{ID: 1, Name: "Widget", Price: 5}}, 1, nil
}

// Product returns configured product.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Widget", Price: 5}, nil
}

// CreateProduct delegates to override.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, in, files)
	}
	return &model.Product{ID: 1, Name: in.Name, Price: in.Price, Stock: in.Stock}, nil
}

// UpdateProduct delegates to override.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id int64, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, in, files)
	}
	return &model.Product{ID: id, Name: in.Name, Price: in.Price, Stock: in.Stock}, nil
}

// DeleteProduct delegates to override.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// ReplaceProductImages delegates to override.
func (s CatalogFacadeStub) ReplaceProductImages(ctx context.Context, id int64, files []*multipart.FileHeader) (*model.Product, error) {
	if s.ReplaceImagesFn != nil {
		return s.ReplaceImagesFn(ctx, id, files)
	}
	return &model.Product{ID: id}, nil
}

// DeleteProductImage delegates to override.
func (s CatalogFacadeStub) DeleteProductImage(ctx context.Context, productID, imageID int64) error {
	if s.DeleteImageFn != nil {
		return s.DeleteImageFn(ctx, productID, imageID)
	}
	return nil
}

// Categories returns configured categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "General"}}, nil
}

// Category returns configured category.
func (s CatalogFacadeStub) Category(ctx context.Context, id int64) (*model.Category, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "General"}, nil
}

// CategoryProducts returns configured products for category.
func (s CatalogFacadeStub) CategoryProducts(ctx context.Context, id int64) ([]model.Product, error) {
	if s.CategoryProductsFn != nil {
		return s.CategoryProductsFn(ctx, id)
	}
	return nil, nil
}

// CreateCategory delegates to override.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name, description)
	}
	return &model.Category{ID: 1, Name: name, Description: description}, nil
}

// UpdateCategory delegates to override.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, name, description)
	}
	return &model.Category{ID: id, Name: name, Description: description}, nil
}

// DeleteCategory delegates to override.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, int64, []model.OrderLine, float64, model.ShippingDetails) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	OrderFn  func(context.Context, int64, int64) (*model.Order, error)
	CancelFn func(context.Context, int64, int64) (*model.Order, error)
}

// PlaceOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, lines []model.OrderLine, total float64, shipping model.ShippingDetails) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, lines, total, shipping)
	}
	return &model.Order{ID: 1, UserID: userID, TotalAmount: total, Status: model.OrderStatusPending, Shipping: shipping}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// Order returns a single order scoped to the owner.
func (s OrderFacadeStub) Order(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, UserID: userID}, nil
}

// CancelOrder delegates to override.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
}

// AdminFacadeStub simulates administrative operations.
type AdminFacadeStub struct {
	StatsFn             func(context.Context) (*model.StoreStats, error)
	UsersFn             func(context.Context) ([]model.UserSummary, error)
	UpdateUserRoleFn    func(context.Context, int64, model.Role) error
	DeleteUserFn        func(context.Context, int64) error
	AllOrdersFn         func(context.Context) ([]model.Order, error)
	OrderByIDFn         func(context.Context, int64) (*model.Order, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

// Stats returns configured counters.
func (s AdminFacadeStub) Stats(ctx context.Context) (*model.StoreStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.StoreStats{Products: 1, Users: 1, Orders: 1}, nil
}

// Users returns configured summaries.
func (s AdminFacadeStub) Users(ctx context.Context) ([]model.UserSummary, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.UserSummary{{ID: 1, Email: "user@example.com"}}, nil
}

// UpdateUserRole delegates to override.
func (s AdminFacadeStub) UpdateUserRole(ctx context.Context, userID int64, role model.Role) error {
	if s.UpdateUserRoleFn != nil {
		return s.UpdateUserRoleFn(ctx, userID, role)
	}
	return nil
}

// DeleteUser delegates to override.
func (s AdminFacadeStub) DeleteUser(ctx context.Context, userID int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, userID)
	}
	return nil
}

// AllOrders returns configured orders.
func (s AdminFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: 1}}, nil
}

// OrderByID returns configured order.
func (s AdminFacadeStub) OrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderByIDFn != nil {
		return s.OrderByIDFn(ctx, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

// UpdateOrderStatus delegates to override.
func (s AdminFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	AdminFacadeStub
}
