package reviews

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/money"
)

const listLimit = 50

// Service is the rating aggregator: every accepted review recomputes
// the derived rating columns for the subjects it references.
type Service interface {
	Create(ctx context.Context, user *models.User, input CreateReviewInput) (*models.Review, error)
	ListForProduct(ctx context.Context, productID string) ([]models.Review, error)
	ListForVendor(ctx context.Context, vendorID string) ([]models.Review, error)
}

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	ListForProduct(ctx context.Context, productID string, limit int) ([]models.Review, error)
	ListForVendor(ctx context.Context, vendorID string, limit int) ([]models.Review, error)
	StatsForProduct(ctx context.Context, productID string) (RatingStats, error)
	StatsForVendor(ctx context.Context, vendorID string) (RatingStats, error)
}

type productRatingStore interface {
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
}

type vendorRatingStore interface {
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
}

type service struct {
	reviews  reviewRepository
	products productRatingStore
	vendors  vendorRatingStore
}

// ServiceParams bundles the dependencies required to build a review service.
type ServiceParams struct {
	ReviewRepo   reviewRepository
	ProductStore productRatingStore
	VendorStore  vendorRatingStore
}

// NewService constructs the rating aggregator.
func NewService(params ServiceParams) (Service, error) {
	if params.ReviewRepo == nil {
		return nil, fmt.Errorf("review repository is required")
	}
	if params.ProductStore == nil {
		return nil, fmt.Errorf("product store is required")
	}
	if params.VendorStore == nil {
		return nil, fmt.Errorf("vendor store is required")
	}
	return &service{
		reviews:  params.ReviewRepo,
		products: params.ProductStore,
		vendors:  params.VendorStore,
	}, nil
}

func (s *service) Create(ctx context.Context, user *models.User, input CreateReviewInput) (*models.Review, error) {
	if input.ProductID == nil && input.VendorID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "review must reference a product or a vendor")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	review := &models.Review{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserName:    user.Name,
		UserPicture: user.Picture,
		ProductID:   input.ProductID,
		VendorID:    input.VendorID,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}
	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create review")
	}

	if input.ProductID != nil {
		if err := s.recomputeProduct(ctx, *input.ProductID); err != nil {
			return nil, err
		}
	}
	if input.VendorID != nil {
		if err := s.recomputeVendor(ctx, *input.VendorID); err != nil {
			return nil, err
		}
	}
	return created, nil
}

func (s *service) ListForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	reviews, err := s.reviews.ListForProduct(ctx, productID, listLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list product reviews")
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (s *service) ListForVendor(ctx context.Context, vendorID string) ([]models.Review, error) {
	reviews, err := s.reviews.ListForVendor(ctx, vendorID, listLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vendor reviews")
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (s *service) recomputeProduct(ctx context.Context, productID string) error {
	stats, err := s.reviews.StatsForProduct(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate product rating")
	}
	rating, count := derived(stats)
	if err := s.products.UpdateRating(ctx, productID, rating, count); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product rating")
	}
	return nil
}

func (s *service) recomputeVendor(ctx context.Context, vendorID string) error {
	stats, err := s.reviews.StatsForVendor(ctx, vendorID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate vendor rating")
	}
	rating, count := derived(stats)
	if err := s.vendors.UpdateRating(ctx, vendorID, rating, count); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update vendor rating")
	}
	return nil
}

// derived maps raw aggregates onto the stored columns: mean rounded to
// one decimal, zero reviews pinning both columns to zero.
func derived(stats RatingStats) (float64, int) {
	if stats.Count == 0 {
		return 0, 0
	}
	return money.Round1(stats.Average), stats.Count
}
