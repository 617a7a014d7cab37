package usecase

import (
	"context"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// AdminUseCase covers store-wide reporting and user administration.
type AdminUseCase struct {
	users  repository.UserRepository
	orders repository.OrderRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(users repository.UserRepository, orders repository.OrderRepository) *AdminUseCase {
	return &AdminUseCase{users: users, orders: orders}
}

// Stats aggregates store counters and revenue.
func (u *AdminUseCase) Stats(ctx context.Context) (*model.StoreStats, error) {
	return u.orders.Stats(ctx)
}

// ListUsers returns all accounts with their order counts.
func (u *AdminUseCase) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	return u.users.List(ctx)
}

// UpdateUserRole switches an account between customer and admin.
func (u *AdminUseCase) UpdateUserRole(ctx context.Context, userID int64, role model.Role) error {
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return domainErrors.ErrInvalidRole
	}
	return u.users.UpdateRole(ctx, userID, role)
}

// DeleteUser removes an account. Accounts with order history are kept so
// order records stay attributable.
func (u *AdminUseCase) DeleteUser(ctx context.Context, userID int64) error {
	count, err := u.orders.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domainErrors.ErrConflict
	}
	return u.users.Delete(ctx, userID)
}
