package usecase

import (
	"context"
	"math"
	"strings"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// totalTolerance absorbs float rounding between client and server sums.
const totalTolerance = 0.01

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

func validShipping(s model.ShippingDetails) bool {
	return strings.TrimSpace(s.Address) != "" &&
		strings.TrimSpace(s.City) != "" &&
		strings.TrimSpace(s.PostalCode) != "" &&
		strings.TrimSpace(s.Phone) != ""
}

// Place validates and persists a new order. The reported total must match
// the sum of line amounts; stock is checked and decremented atomically with
// the order insert.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, lines []model.OrderLine, total float64, shipping model.ShippingDetails) (*model.Order, error) {
	if len(lines) == 0 || !validShipping(shipping) {
		return nil, domainErrors.ErrValidation
	}

	var computed float64
	for _, line := range lines {
		if line.Quantity <= 0 || line.Price < 0 {
			return nil, domainErrors.ErrValidation
		}
		computed += float64(line.Quantity) * line.Price
	}
	if math.Abs(computed-total) > totalTolerance {
		return nil, domainErrors.ErrTotalMismatch
	}

	orderID, err := u.orders.Create(ctx, userID, lines, computed, shipping)
	if err != nil {
		return nil, err
	}

	return u.orders.GetByUser(ctx, orderID, userID)
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetByUser fetches a single order scoped to its owner.
func (u *OrderUseCase) GetByUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return u.orders.GetByUser(ctx, orderID, userID)
}

// CancelByUser lets the owner cancel an order regardless of its current
// state; stock restoration happens exactly once.
func (u *OrderUseCase) CancelByUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	if _, err := u.orders.GetByUser(ctx, orderID, userID); err != nil {
		return nil, err
	}
	if err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
		return nil, err
	}
	return u.orders.GetByUser(ctx, orderID, userID)
}

// UpdateStatus moves an order into the requested status. Any of the known
// statuses is accepted as a target.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return u.orders.Get(ctx, orderID)
}

// ListAll returns every order with customer information attached.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Get fetches any order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.Get(ctx, orderID)
}
