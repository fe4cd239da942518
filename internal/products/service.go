package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

const (
	defaultPopularLimit = 20
	regionShelfLimit    = 50
	searchLimit         = 20
)

// Service defines product read operations for the public catalog.
type Service interface {
	ListProducts(ctx context.Context, filters ListFilters) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
	ProductsByRegion(ctx context.Context, region string) ([]models.Product, error)
	PopularProducts(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, query string) (*SearchResult, error)
}

type productRepository interface {
	List(ctx context.Context, filters ListFilters) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Popular(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, query string, limit int) ([]models.Product, error)
}

type vendorRepository interface {
	FindByID(ctx context.Context, id string) (*models.Vendor, error)
	Search(ctx context.Context, query string, limit int) ([]models.Vendor, error)
}

type service struct {
	products productRepository
	vendors  vendorRepository
}

// ServiceParams bundles the dependencies required to build a product service.
type ServiceParams struct {
	ProductRepo productRepository
	VendorRepo  vendorRepository
}

// NewService constructs a product catalog service.
func NewService(params ServiceParams) (Service, error) {
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	return &service{products: params.ProductRepo, vendors: params.VendorRepo}, nil
}

func (s *service) ListProducts(ctx context.Context, filters ListFilters) ([]models.Product, error) {
	products, err := s.products.List(ctx, filters.normalized())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetProduct loads the product plus its vendor. A vendor that has gone
// missing does not fail the detail page; the vendor block is just absent.
func (s *service) GetProduct(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	detail := &ProductDetail{Product: *product}
	vendor, err := s.vendors.FindByID(ctx, product.VendorID)
	if err == nil {
		detail.Vendor = vendor
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product vendor")
	}
	return detail, nil
}

// ProductsByRegion serves the regional shelf: a fixed first page of the
// catalog filtered to one region, no paging knobs exposed.
func (s *service) ProductsByRegion(ctx context.Context, region string) ([]models.Product, error) {
	products, err := s.products.List(ctx, ListFilters{Region: region, Limit: regionShelfLimit})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products by region")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *service) PopularProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	products, err := s.products.Popular(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list popular products")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Search runs a combined product and vendor lookup for the q fragment.
func (s *service) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	result := &SearchResult{Products: []models.Product{}, Vendors: []models.Vendor{}}
	if query == "" {
		return result, nil
	}

	products, err := s.products.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search products")
	}
	vendors, err := s.vendors.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search vendors")
	}

	if products != nil {
		result.Products = products
	}
	if vendors != nil {
		result.Vendors = vendors
	}
	return result, nil
}
