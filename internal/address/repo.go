package address

import (
	"context"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
)

// Repository exposes address persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an address repo tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the user's saved addresses.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default desc, label asc").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// FindByUserAndID loads an address only if the user owns it.
func (r *Repository) FindByUserAndID(ctx context.Context, userID, addressID string) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// Create inserts an address row.
func (r *Repository) Create(ctx context.Context, address *models.Address) (*models.Address, error) {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// Update saves the full address row.
func (r *Repository) Update(ctx context.Context, address *models.Address) (*models.Address, error) {
	if err := r.db.WithContext(ctx).Save(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// Delete removes the user's address. Returns the number of rows removed.
func (r *Repository) Delete(ctx context.Context, userID, addressID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&models.Address{})
	return result.RowsAffected, result.Error
}
