package content

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zoramarket/zora-backend/pkg/db/models"
)

// Repository exposes persistence for the editorial content tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a content repo tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBanners returns the promotional banners.
func (r *Repository) ListBanners(ctx context.Context, limit int) ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.WithContext(ctx).Limit(limit).Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// ListRegions returns the browsable catalog regions.
func (r *Repository) ListRegions(ctx context.Context, limit int) ([]models.Region, error) {
	var regions []models.Region
	if err := r.db.WithContext(ctx).Limit(limit).Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

// UpsertBanner inserts or fully refreshes a banner fixture.
func (r *Repository) UpsertBanner(ctx context.Context, banner *models.Banner) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(banner).Error
}

// UpsertRegion inserts or fully refreshes a region fixture.
func (r *Repository) UpsertRegion(ctx context.Context, region *models.Region) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(region).Error
}
