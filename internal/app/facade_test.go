package app

import (
	"context"
	"testing"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	testhelpers "github.com/devansh6012/online-store-test/internal/test"
	"github.com/devansh6012/online-store-test/internal/usecase"
)

func newFacade() (*StoreFacade, *testhelpers.UserRepositoryStub, *testhelpers.OrderRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	productRepo := &testhelpers.ProductRepositoryStub{}
	categoryRepo := &testhelpers.CategoryRepositoryStub{}
	catalogUC := usecase.NewCatalogUseCase(productRepo, categoryRepo, &testhelpers.FileStoreStub{}, 5)

	orderRepo := &testhelpers.OrderRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orderRepo)

	adminUC := usecase.NewAdminUseCase(userRepo, orderRepo)

	return NewStoreFacade(authUC, catalogUC, orderUC, adminUC), userRepo, orderRepo
}

func TestStoreFacadeAuth(t *testing.T) {
	facade, users, _ := newFacade()
	ctx := context.Background()

	user, token, err := facade.Register(ctx, "user@example.com", "secret1", "Alice", "Smith")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" || user.Email != "user@example.com" {
		t.Fatalf("unexpected register result: user=%+v token=%q", user, token)
	}

	stored, err := users.GetByEmail(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	if _, _, err := facade.Authenticate(ctx, "user@example.com", "secret1"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	id, err := facade.ParseToken("anything")
	if err != nil || id != 99 {
		t.Fatalf("unexpected parse result: id=%d err=%v", id, err)
	}

	fetched, err := facade.User(ctx, stored.ID)
	if err != nil || fetched.Email != "user@example.com" {
		t.Fatalf("unexpected user: %+v err=%v", fetched, err)
	}

	first := "Alicia"
	updated, err := facade.UpdateProfile(ctx, stored.ID, model.ProfileChange{FirstName: &first})
	if err != nil || updated.FirstName != "Alicia" {
		t.Fatalf("unexpected profile: %+v err=%v", updated, err)
	}

	if err := facade.DeleteAccount(ctx, stored.ID); err != nil {
		t.Fatalf("delete account returned error: %v", err)
	}
	if _, err := facade.User(ctx, stored.ID); err == nil {
		t.Fatal("expected deleted account lookup to fail")
	}
}

func TestStoreFacadeCatalog(t *testing.T) {
	facade, _, _ := newFacade()
	ctx := context.Background()

	category, err := facade.CreateCategory(ctx, "Books", "printed")
	if err != nil {
		t.Fatalf("create category returned error: %v", err)
	}
	if _, err := facade.Category(ctx, category.ID); err != nil {
		t.Fatalf("get category returned error: %v", err)
	}
	if _, err := facade.Categories(ctx); err != nil {
		t.Fatalf("list categories returned error: %v", err)
	}
	if _, err := facade.CategoryProducts(ctx, category.ID); err != nil {
		t.Fatalf("category products returned error: %v", err)
	}
	if _, err := facade.UpdateCategory(ctx, category.ID, "Novels", "fiction"); err != nil {
		t.Fatalf("update category returned error: %v", err)
	}

	products, total, err := facade.ListProducts(ctx, model.ProductFilter{})
	if err != nil {
		t.Fatalf("list products returned error: %v", err)
	}
	if total != int64(len(products)) {
		t.Fatalf("total mismatch: %d vs %d", total, len(products))
	}

	if err := facade.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("delete category returned error: %v", err)
	}
}

func TestStoreFacadeOrders(t *testing.T) {
	facade, _, orderRepo := newFacade()
	ctx := context.Background()

	lines := []model.OrderLine{{ProductID: 1, Quantity: 2, Price: 5}}
	shipping := model.ShippingDetails{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Phone: "555-0100"}

	order, err := facade.PlaceOrder(ctx, 7, lines, 10, shipping)
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}

	if _, err := facade.Orders(ctx, 7); err != nil {
		t.Fatalf("orders returned error: %v", err)
	}
	if _, err := facade.Order(ctx, order.ID, 7); err != nil {
		t.Fatalf("order returned error: %v", err)
	}

	cancelled, err := facade.CancelOrder(ctx, order.ID, 7)
	if err != nil || cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected cancel result: order=%+v err=%v", cancelled, err)
	}

	if _, err := facade.UpdateOrderStatus(ctx, order.ID, model.OrderStatus("bogus")); err != domainErrors.ErrInvalidStatus {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if _, err := facade.UpdateOrderStatus(ctx, order.ID, model.OrderStatusProcessing); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}

	all, err := facade.AllOrders(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("unexpected all orders: %+v err=%v", all, err)
	}
	if _, err := facade.OrderByID(ctx, order.ID); err != nil {
		t.Fatalf("order by id returned error: %v", err)
	}

	if len(orderRepo.StatusCalls) == 0 {
		t.Fatal("expected status calls recorded")
	}
}

func TestStoreFacadeAdmin(t *testing.T) {
	facade, users, _ := newFacade()
	ctx := context.Background()

	user, err := users.Create(ctx, "admin@example.com", "hash", "Root", "")
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	if _, err := facade.Stats(ctx); err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if _, err := facade.Users(ctx); err != nil {
		t.Fatalf("users returned error: %v", err)
	}
	if err := facade.UpdateUserRole(ctx, user.ID, model.RoleAdmin); err != nil {
		t.Fatalf("update role returned error: %v", err)
	}
	if err := facade.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete user returned error: %v", err)
	}
}
