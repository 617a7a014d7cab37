package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	testhelpers "github.com/devansh6012/online-store-test/internal/test"
)

func TestAdminUseCaseStats(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		StatsFn: func(context.Context) (*model.StoreStats, error) {
			return &model.StoreStats{Products: 3, Users: 2, Orders: 5, Revenue: 99.5}, nil
		},
	}
	uc := NewAdminUseCase(testhelpers.NewUserRepositoryStub(), orders)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if stats.Revenue != 99.5 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestAdminUseCaseUpdateUserRole(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAdminUseCase(users, &testhelpers.OrderRepositoryStub{})
	ctx := context.Background()

	user, err := users.Create(ctx, "eve@example.com", "hash", "Eve", "")
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	if err := uc.UpdateUserRole(ctx, user.ID, model.Role("root")); err != domainErrors.ErrInvalidRole {
		t.Fatalf("expected invalid role, got %v", err)
	}

	if err := uc.UpdateUserRole(ctx, user.ID, model.RoleAdmin); err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	stored, _ := users.GetByID(ctx, user.ID)
	if !stored.IsAdmin() {
		t.Fatalf("expected admin role, got %s", stored.Role)
	}

	if err := uc.UpdateUserRole(ctx, 404, model.RoleAdmin); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdminUseCaseDeleteUser(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()
	user, err := users.Create(ctx, "frank@example.com", "hash", "Frank", "")
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	t.Run("with order history", func(t *testing.T) {
		orders := &testhelpers.OrderRepositoryStub{
			Orders: []model.Order{{ID: 1, UserID: user.ID}},
		}
		uc := NewAdminUseCase(users, orders)
		if err := uc.DeleteUser(ctx, user.ID); err != domainErrors.ErrConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("without orders", func(t *testing.T) {
		uc := NewAdminUseCase(users, &testhelpers.OrderRepositoryStub{})
		if err := uc.DeleteUser(ctx, user.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := users.GetByID(ctx, user.ID); err != domainErrors.ErrNotFound {
			t.Fatalf("expected user removed, got %v", err)
		}
	})
}

func TestAdminUseCaseListUsers(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()
	if _, err := users.Create(ctx, "a@example.com", "hash", "", ""); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	uc := NewAdminUseCase(users, &testhelpers.OrderRepositoryStub{})

	listed, err := uc.ListUsers(ctx)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected result: users=%+v err=%v", listed, err)
	}
}
