package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	addresssvc "github.com/zoramarket/zora-backend/internal/address"
	authsvc "github.com/zoramarket/zora-backend/internal/auth"
	cartsvc "github.com/zoramarket/zora-backend/internal/cart"
	contentsvc "github.com/zoramarket/zora-backend/internal/content"
	ordersvc "github.com/zoramarket/zora-backend/internal/orders"
	paymentsvc "github.com/zoramarket/zora-backend/internal/payments"
	productsvc "github.com/zoramarket/zora-backend/internal/products"
	reviewsvc "github.com/zoramarket/zora-backend/internal/reviews"
	"github.com/zoramarket/zora-backend/internal/users"
	"github.com/zoramarket/zora-backend/pkg/config"
	"github.com/zoramarket/zora-backend/pkg/db/models"
	"github.com/zoramarket/zora-backend/pkg/logger"
	pkgredis "github.com/zoramarket/zora-backend/pkg/redis"
	"github.com/zoramarket/zora-backend/pkg/types"
)

const testSessionToken = "tok_valid"

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) ExchangeSession(ctx context.Context, sessionID string) (*authsvc.ExchangeResult, error) {
	panic("unimplemented")
}

func (stubAuthService) ResolveIdentity(ctx context.Context, cookieToken, bearerToken string) (*models.User, error) {
	token := cookieToken
	if token == "" {
		token = bearerToken
	}
	if token == testSessionToken {
		return &models.User{ID: "user_abc123", Email: "ama@example.com", Name: "Ama"}, nil
	}
	return nil, nil
}

func (stubAuthService) Logout(ctx context.Context, userID string) error {
	return nil
}

func (stubAuthService) UpdateProfile(ctx context.Context, userID string, patch users.ProfilePatch) (*models.User, error) {
	panic("unimplemented")
}

type stubVendorService struct{}

func (stubVendorService) ListVendors(ctx context.Context, region, category string) ([]models.Vendor, error) {
	return []models.Vendor{}, nil
}

func (stubVendorService) GetVendor(ctx context.Context, id string) (*models.Vendor, error) {
	panic("unimplemented")
}

type stubProductService struct{}

func (stubProductService) ListProducts(ctx context.Context, filters productsvc.ListFilters) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (stubProductService) GetProduct(ctx context.Context, id string) (*productsvc.ProductDetail, error) {
	panic("unimplemented")
}

func (stubProductService) ProductsByRegion(ctx context.Context, region string) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (stubProductService) PopularProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (stubProductService) Search(ctx context.Context, query string) (*productsvc.SearchResult, error) {
	return &productsvc.SearchResult{Products: []models.Product{}, Vendors: []models.Vendor{}}, nil
}

type stubCartService struct{}

func (stubCartService) GetCart(ctx context.Context, userID string) (*cartsvc.CartView, error) {
	return &cartsvc.CartView{Items: []cartsvc.ItemView{}, Vendors: &[]cartsvc.VendorGroup{}}, nil
}

func (stubCartService) AddItem(ctx context.Context, userID string, line types.CartLine) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

func (stubCartService) ReplaceItems(ctx context.Context, userID string, lines types.CartLines) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

func (stubCartService) RemoveItem(ctx context.Context, userID, productID string) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

func (stubCartService) ClearCart(ctx context.Context, userID string) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

type stubOrderService struct{}

func (stubOrderService) Create(ctx context.Context, userID string, input ordersvc.CreateOrderInput) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrderService) List(ctx context.Context, userID string, filters ordersvc.ListFilters) ([]models.Order, error) {
	return []models.Order{}, nil
}

func (stubOrderService) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrderService) Cancel(ctx context.Context, userID, orderID string) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrderService) AttachPaymentIntent(ctx context.Context, orderID, intentID string) error {
	return nil
}

func (stubOrderService) MarkConfirmed(ctx context.Context, orderID string) error {
	return nil
}

type stubReviewService struct{}

func (stubReviewService) Create(ctx context.Context, user *models.User, input reviewsvc.CreateReviewInput) (*models.Review, error) {
	panic("unimplemented")
}

func (stubReviewService) ListForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return []models.Review{}, nil
}

func (stubReviewService) ListForVendor(ctx context.Context, vendorID string) ([]models.Review, error) {
	return []models.Review{}, nil
}

type stubAddressService struct{}

func (stubAddressService) List(ctx context.Context, userID string) ([]models.Address, error) {
	return []models.Address{}, nil
}

func (stubAddressService) Create(ctx context.Context, userID string, input addresssvc.AddressInput) (*models.Address, error) {
	panic("unimplemented")
}

func (stubAddressService) Update(ctx context.Context, userID, addressID string, input addresssvc.AddressInput) (*models.Address, error) {
	panic("unimplemented")
}

func (stubAddressService) Delete(ctx context.Context, userID, addressID string) error {
	return nil
}

type stubPaymentService struct{}

func (stubPaymentService) CreateIntent(ctx context.Context, user *models.User, input paymentsvc.CreateIntentInput) (*paymentsvc.CreateIntentResult, error) {
	panic("unimplemented")
}

func (stubPaymentService) Confirm(ctx context.Context, user *models.User, intentID string) (*paymentsvc.ConfirmResult, error) {
	panic("unimplemented")
}

func (stubPaymentService) Config() paymentsvc.ConfigResult {
	return paymentsvc.ConfigResult{PublishableKey: "pk_test_stub"}
}

type stubContentService struct{}

func (stubContentService) Home(ctx context.Context) (*contentsvc.HomeData, error) {
	return &contentsvc.HomeData{
		Banners:         []models.Banner{},
		Regions:         []models.Region{},
		FeaturedVendors: []models.Vendor{},
		PopularProducts: []models.Product{},
	}, nil
}

func (stubContentService) Regions(ctx context.Context) ([]models.Region, error) {
	return []models.Region{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: "test", Port: "0"},
		Auth: config.AuthConfig{CookieName: "session_token"},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		(*pkgredis.Client)(nil),
		Services{
			Auth:     stubAuthService{},
			Vendors:  stubVendorService{},
			Products: stubProductService{},
			Cart:     stubCartService{},
			Orders:   stubOrderService{},
			Reviews:  stubReviewService{},
			Address:  stubAddressService{},
			Payments: stubPaymentService{},
			Content:  stubContentService{},
		},
	)
}

func TestRootBanner(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for root banner got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Zora African Market API") {
		t.Fatalf("expected banner body, got %s", resp.Body.String())
	}
}

func TestPublicCatalogNeedsNoIdentity(t *testing.T) {
	router := newTestRouter(testConfig())
	for _, path := range []string{"/api/vendors/", "/api/products/", "/api/products/region/west-african", "/api/home", "/api/regions", "/api/search?q=jollof"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestCartRejectsAnonymous(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/cart/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session got %d", resp.Code)
	}
}

func TestCartAcceptsBearerToken(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/cart/", nil)
	req.Header.Set("Authorization", "Bearer "+testSessionToken)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer token got %d", resp.Code)
	}
}

func TestCartAcceptsSessionCookie(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Auth.CookieName, Value: testSessionToken})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with session cookie got %d", resp.Code)
	}
}

func TestSessionExchangeRejectsBadJSON(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/auth/session", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestProfileRoutesRequireIdentity(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous profile read got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	authed.Header.Set("Authorization", "Bearer "+testSessionToken)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for authed profile read got %d", resp.Code)
	}
}
