package repository

import (
	"context"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// OrderRepository describes persistence operations for the order workflow.
//
// Create and UpdateStatus are the two multi-table atomic units of the
// system: each runs in a single database transaction and leaves no partial
// state behind on failure.
type OrderRepository interface {
	// Create inserts the order row, all its items and decrements product
	// stock as one unit. Returns ErrInsufficientStock when any line exceeds
	// available stock.
	Create(ctx context.Context, userID int64, lines []model.OrderLine, total float64, shipping model.ShippingDetails) (int64, error)
	// UpdateStatus writes the requested status. Transitioning into
	// "cancelled" from any other status restores the stock decremented at
	// creation, within the same transaction; re-cancelling is a no-op on
	// stock.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// GetByUser returns ErrNotFound for foreign orders as well as absent ones.
	GetByUser(ctx context.Context, orderID, userID int64) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, orderID int64) (*model.Order, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Stats(ctx context.Context) (*model.StoreStats, error)
}
