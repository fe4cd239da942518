package reviews

import (
	"context"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
)

// Repository exposes review persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a review repo tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a review row.
func (r *Repository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ListForProduct returns the product's reviews, newest first.
func (r *Repository) ListForProduct(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListForVendor returns the vendor's reviews, newest first.
func (r *Repository) ListForVendor(ctx context.Context, vendorID string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at desc").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// StatsForProduct aggregates the product's review ratings.
func (r *Repository) StatsForProduct(ctx context.Context, productID string) (RatingStats, error) {
	return r.stats(ctx, "product_id", productID)
}

// StatsForVendor aggregates the vendor's review ratings.
func (r *Repository) StatsForVendor(ctx context.Context, vendorID string) (RatingStats, error) {
	return r.stats(ctx, "vendor_id", vendorID)
}

func (r *Repository) stats(ctx context.Context, column, id string) (RatingStats, error) {
	var row struct {
		Average float64
		Count   int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where(column+" = ?", id).
		Scan(&row).Error; err != nil {
		return RatingStats{}, err
	}
	return RatingStats{Average: row.Average, Count: row.Count}, nil
}
