package handlers

import (
	"context"
	"mime/multipart"

	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	User(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, change model.ProfileChange) (*model.User, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// CatalogFacade covers product and category operations exposed via HTTP.
type CatalogFacade interface {
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, in repository.ProductInput, files []*multipart.FileHeader) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ReplaceProductImages(ctx context.Context, productID int64, files []*multipart.FileHeader) (*model.Product, error)
	DeleteProductImage(ctx context.Context, productID, imageID int64) error

	Categories(ctx context.Context) ([]model.Category, error)
	Category(ctx context.Context, id int64) (*model.Category, error)
	CategoryProducts(ctx context.Context, id int64) ([]model.Product, error)
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, name, description string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// OrderFacade encapsulates customer order operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, lines []model.OrderLine, total float64, shipping model.ShippingDetails) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, orderID, userID int64) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, userID int64) (*model.Order, error)
}

// AdminFacade covers the administrative surface.
type AdminFacade interface {
	Stats(ctx context.Context) (*model.StoreStats, error)
	Users(ctx context.Context) ([]model.UserSummary, error)
	UpdateUserRole(ctx context.Context, userID int64, role model.Role) error
	DeleteUser(ctx context.Context, userID int64) error
	AllOrders(ctx context.Context) ([]model.Order, error)
	OrderByID(ctx context.Context, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	AdminFacade
}
