package repository

import (
	"context"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// ProfileUpdate carries optional profile mutations; nil fields are untouched.
type ProfileUpdate struct {
	FirstName    *string
	LastName     *string
	PasswordHash *string
}

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, firstName, lastName string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*model.User, error)
	UpdateRole(ctx context.Context, id int64, role model.Role) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.UserSummary, error)
}
