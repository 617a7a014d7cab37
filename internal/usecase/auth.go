package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
	pkgAuth "github.com/devansh6012/online-store-test/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

// Register creates a new customer account and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) {
		return nil, "", domainErrors.ErrValidation
	}
	if len(password) < minPasswordLength {
		return nil, "", domainErrors.ErrValidation
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateProfile applies partial profile changes. A password change requires
// the current password to match.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, change model.ProfileChange) (*model.User, error) {
	upd := repository.ProfileUpdate{
		FirstName: change.FirstName,
		LastName:  change.LastName,
	}

	if change.NewPassword != nil {
		if len(*change.NewPassword) < minPasswordLength {
			return nil, domainErrors.ErrValidation
		}
		if change.CurrentPassword == nil {
			return nil, domainErrors.ErrInvalidCredentials
		}
		usr, err := u.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := u.hasher.Compare(usr.PasswordHash, *change.CurrentPassword); err != nil {
			return nil, domainErrors.ErrInvalidCredentials
		}
		hash, err := u.hasher.Hash(*change.NewPassword)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	return u.users.UpdateProfile(ctx, userID, upd)
}
