package vendors

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

// Service defines vendor read operations for the public catalog.
type Service interface {
	ListVendors(ctx context.Context, region, category string) ([]models.Vendor, error)
	GetVendor(ctx context.Context, id string) (*models.Vendor, error)
}

type vendorRepository interface {
	List(ctx context.Context, region, category string) ([]models.Vendor, error)
	FindByID(ctx context.Context, id string) (*models.Vendor, error)
}

type service struct {
	vendors vendorRepository
}

// NewService constructs a vendor catalog service.
func NewService(repo vendorRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	return &service{vendors: repo}, nil
}

func (s *service) ListVendors(ctx context.Context, region, category string) ([]models.Vendor, error) {
	vendors, err := s.vendors.List(ctx, region, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vendors")
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	return vendors, nil
}

func (s *service) GetVendor(ctx context.Context, id string) (*models.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor")
	}
	return vendor, nil
}
