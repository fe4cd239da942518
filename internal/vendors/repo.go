package vendors

import (
	"context"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
)

// Repository exposes vendor persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a vendor repo tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns vendors matching the optional region and category filters.
// The sentinel value "all" disables a filter, same as leaving it empty.
func (r *Repository) List(ctx context.Context, region, category string) ([]models.Vendor, error) {
	query := r.db.WithContext(ctx).Model(&models.Vendor{})
	if region != "" && region != "all" {
		query = query.Where("? = ANY(regions)", region)
	}
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var vendors []models.Vendor
	if err := query.Order("name asc").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindByID loads a single vendor.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FindByIDs loads the vendors for the given id set, in no particular order.
func (r *Repository) FindByIDs(ctx context.Context, ids []string) ([]models.Vendor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// Search matches vendors by case-insensitive name fragment.
func (r *Repository) Search(ctx context.Context, query string, limit int) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// UpdateRating overwrites the derived rating columns.
func (r *Repository) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	return r.db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("id = ?", id).
		Updates(map[string]any{"rating": rating, "review_count": reviewCount}).Error
}
