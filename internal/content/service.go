package content

import (
	"context"
	"fmt"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

const (
	featuredVendorCount = 6
	popularProductCount = 12
	bannerLimit         = 10
	regionLimit         = 20
)

// HomeData is the aggregate payload for the home surface.
type HomeData struct {
	Banners         []models.Banner  `json:"banners"`
	Regions         []models.Region  `json:"regions"`
	FeaturedVendors []models.Vendor  `json:"featured_vendors"`
	PopularProducts []models.Product `json:"popular_products"`
}

// Service assembles the editorial and discovery content.
type Service interface {
	Home(ctx context.Context) (*HomeData, error)
	Regions(ctx context.Context) ([]models.Region, error)
}

type contentRepository interface {
	ListBanners(ctx context.Context, limit int) ([]models.Banner, error)
	ListRegions(ctx context.Context, limit int) ([]models.Region, error)
}

type vendorLister interface {
	List(ctx context.Context, region, category string) ([]models.Vendor, error)
}

type productLister interface {
	Popular(ctx context.Context, limit int) ([]models.Product, error)
}

type service struct {
	content  contentRepository
	vendors  vendorLister
	products productLister
}

// ServiceParams bundles the dependencies required to build a content service.
type ServiceParams struct {
	ContentRepo contentRepository
	VendorRepo  vendorLister
	ProductRepo productLister
}

// NewService constructs the content service.
func NewService(params ServiceParams) (Service, error) {
	if params.ContentRepo == nil {
		return nil, fmt.Errorf("content repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &service{
		content:  params.ContentRepo,
		vendors:  params.VendorRepo,
		products: params.ProductRepo,
	}, nil
}

func (s *service) Home(ctx context.Context) (*HomeData, error) {
	banners, err := s.content.ListBanners(ctx, bannerLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list banners")
	}
	regions, err := s.content.ListRegions(ctx, regionLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list regions")
	}
	vendors, err := s.vendors.List(ctx, "", "")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list featured vendors")
	}
	if len(vendors) > featuredVendorCount {
		vendors = vendors[:featuredVendorCount]
	}
	products, err := s.products.Popular(ctx, popularProductCount)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list popular products")
	}

	if banners == nil {
		banners = []models.Banner{}
	}
	if regions == nil {
		regions = []models.Region{}
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return &HomeData{
		Banners:         banners,
		Regions:         regions,
		FeaturedVendors: vendors,
		PopularProducts: products,
	}, nil
}

func (s *service) Regions(ctx context.Context) ([]models.Region, error) {
	regions, err := s.content.ListRegions(ctx, regionLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list regions")
	}
	if regions == nil {
		regions = []models.Region{}
	}
	return regions, nil
}
