package products

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

func TestListProductsNormalizesPaging(t *testing.T) {
	repo := &stubProductRepo{}
	svc := buildTestService(t, repo, &stubVendorRepo{})

	if _, err := svc.ListProducts(context.Background(), ListFilters{Skip: -5, Limit: 0}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilters.Skip != 0 {
		t.Fatalf("expected skip clamped to 0, got %d", repo.lastFilters.Skip)
	}
	if repo.lastFilters.Limit != defaultListLimit {
		t.Fatalf("expected default limit %d, got %d", defaultListLimit, repo.lastFilters.Limit)
	}

	if _, err := svc.ListProducts(context.Background(), ListFilters{Limit: 500}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilters.Limit != maxListLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxListLimit, repo.lastFilters.Limit)
	}
}

func TestProductsByRegionUsesFixedShelf(t *testing.T) {
	repo := &stubProductRepo{}
	svc := buildTestService(t, repo, &stubVendorRepo{})

	products, err := svc.ProductsByRegion(context.Background(), "west-african")
	if err != nil {
		t.Fatalf("by region: %v", err)
	}
	if products == nil {
		t.Fatalf("expected empty slice for empty shelf, got nil")
	}
	if repo.lastFilters.Region != "west-african" {
		t.Fatalf("expected region filter, got %+v", repo.lastFilters)
	}
	if repo.lastFilters.Limit != regionShelfLimit {
		t.Fatalf("expected shelf limit %d, got %d", regionShelfLimit, repo.lastFilters.Limit)
	}
}

func TestPopularProductsDefaultLimit(t *testing.T) {
	repo := &stubProductRepo{}
	svc := buildTestService(t, repo, &stubVendorRepo{})

	if _, err := svc.PopularProducts(context.Background(), 0); err != nil {
		t.Fatalf("popular: %v", err)
	}
	if repo.lastPopularLimit != 20 {
		t.Fatalf("expected default popular limit 20, got %d", repo.lastPopularLimit)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := buildTestService(t, &stubProductRepo{}, &stubVendorRepo{})

	_, err := svc.GetProduct(context.Background(), "prod-missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetProductSurvivesMissingVendor(t *testing.T) {
	product := models.Product{ID: "prod-1", VendorID: "vendor-gone", Name: "Jollof base"}
	svc := buildTestService(t, &stubProductRepo{products: []models.Product{product}}, &stubVendorRepo{})

	detail, err := svc.GetProduct(context.Background(), "prod-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.Product.ID != "prod-1" {
		t.Fatalf("unexpected product: %+v", detail.Product)
	}
	if detail.Vendor != nil {
		t.Fatalf("expected vendor block absent for missing vendor")
	}
}

func TestSearchEmptyQueryReturnsEmptyResult(t *testing.T) {
	productRepo := &stubProductRepo{}
	vendorRepo := &stubVendorRepo{}
	svc := buildTestService(t, productRepo, vendorRepo)

	result, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Products) != 0 || len(result.Vendors) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if productRepo.searchCalls != 0 || vendorRepo.searchCalls != 0 {
		t.Fatalf("expected no repo calls for blank query")
	}
}

func buildTestService(t *testing.T, products *stubProductRepo, vendors *stubVendorRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{ProductRepo: products, VendorRepo: vendors})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubProductRepo struct {
	products         []models.Product
	lastFilters      ListFilters
	lastPopularLimit int
	searchCalls      int
}

func (r *stubProductRepo) List(_ context.Context, filters ListFilters) ([]models.Product, error) {
	r.lastFilters = filters
	return r.products, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) Popular(_ context.Context, limit int) ([]models.Product, error) {
	r.lastPopularLimit = limit
	return r.products, nil
}

func (r *stubProductRepo) Search(_ context.Context, _ string, _ int) ([]models.Product, error) {
	r.searchCalls++
	return r.products, nil
}

type stubVendorRepo struct {
	vendors     []models.Vendor
	searchCalls int
}

func (r *stubVendorRepo) FindByID(_ context.Context, id string) (*models.Vendor, error) {
	for i := range r.vendors {
		if r.vendors[i].ID == id {
			return &r.vendors[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVendorRepo) Search(_ context.Context, _ string, _ int) ([]models.Vendor, error) {
	r.searchCalls++
	return r.vendors, nil
}
