package address

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

// Service manages the user's saved delivery addresses. Every operation
// is scoped to the owner; cross-user access reads as not found.
type Service interface {
	List(ctx context.Context, userID string) ([]models.Address, error)
	Create(ctx context.Context, userID string, input AddressInput) (*models.Address, error)
	Update(ctx context.Context, userID, addressID string, input AddressInput) (*models.Address, error)
	Delete(ctx context.Context, userID, addressID string) error
}

type addressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Address, error)
	FindByUserAndID(ctx context.Context, userID, addressID string) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) (*models.Address, error)
	Delete(ctx context.Context, userID, addressID string) (int64, error)
}

type service struct {
	addresses addressRepository
}

// NewService constructs an address book service.
func NewService(repo addressRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("address repository is required")
	}
	return &service{addresses: repo}, nil
}

func (s *service) List(ctx context.Context, userID string) ([]models.Address, error) {
	addresses, err := s.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list addresses")
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	return addresses, nil
}

func (s *service) Create(ctx context.Context, userID string, input AddressInput) (*models.Address, error) {
	address := &models.Address{
		ID:           uuid.NewString(),
		UserID:       userID,
		Label:        defaultString(input.Label, "Home"),
		Line1:        input.Line1,
		Line2:        input.Line2,
		City:         input.City,
		Postcode:     input.Postcode,
		Country:      defaultString(input.Country, "United Kingdom"),
		IsDefault:    input.IsDefault,
		Instructions: input.Instructions,
	}
	created, err := s.addresses.Create(ctx, address)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create address")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, userID, addressID string, input AddressInput) (*models.Address, error) {
	address, err := s.addresses.FindByUserAndID(ctx, userID, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load address")
	}

	address.Label = defaultString(input.Label, address.Label)
	address.Line1 = input.Line1
	address.Line2 = input.Line2
	address.City = input.City
	address.Postcode = input.Postcode
	address.Country = defaultString(input.Country, address.Country)
	address.IsDefault = input.IsDefault
	address.Instructions = input.Instructions

	updated, err := s.addresses.Update(ctx, address)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update address")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID, addressID string) error {
	affected, err := s.addresses.Delete(ctx, userID, addressID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete address")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}
	return nil
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
