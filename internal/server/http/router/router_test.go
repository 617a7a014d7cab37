package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devansh6012/online-store-test/internal/config"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/server/http/handlers"
	testhelpers "github.com/devansh6012/online-store-test/internal/test"
)

func newEngine(t *testing.T, facade handlers.StoreFacade) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{UploadDir: t.TempDir()}
	return Setup(facade, cfg, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newEngine(t, testhelpers.StoreFacadeStub{})

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for products, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for categories, got %d", resp.Code)
	}
}

func TestSetupRequiresAuth(t *testing.T) {
	engine := newEngine(t, testhelpers.StoreFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d", resp.Code)
	}
}

func TestSetupOrderHistoryRoute(t *testing.T) {
	engine := newEngine(t, testhelpers.StoreFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for my-orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for order detail, got %d", resp.Code)
	}
}

func TestSetupServesProductImages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "widget.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("seed image: %v", err)
	}
	engine := Setup(testhelpers.StoreFacadeStub{}, &config.Config{UploadDir: dir}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/images/widget.png", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for stored image, got %d", resp.Code)
	}
	if resp.Body.String() != "png-bytes" {
		t.Fatalf("unexpected image body: %q", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products/images/missing.png", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing image, got %d", resp.Code)
	}
}

func TestSetupAdminGuard(t *testing.T) {
	customer := testhelpers.StoreFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			UserFn: func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Role: model.RoleCustomer}, nil
			},
		},
	}
	engine := newEngine(t, customer)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customer, got %d", resp.Code)
	}

	admin := testhelpers.StoreFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			UserFn: func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Role: model.RoleAdmin}, nil
			},
		},
	}
	engine = newEngine(t, admin)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin, got %d", resp.Code)
	}
}

var _ handlers.StoreFacade = testhelpers.StoreFacadeStub{}
