package reviews

import (
	"context"
	"testing"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

func TestCreateReviewRecomputesProductRating(t *testing.T) {
	f := newFixtures()
	svc := buildTestService(t, f)
	author := &models.User{ID: "user-1", Name: "Ada"}
	productID := "prod-a"

	if _, err := svc.Create(context.Background(), author, CreateReviewInput{
		ProductID: &productID,
		Rating:    4,
		Comment:   "solid",
	}); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if f.products.rating != 4.0 || f.products.count != 1 {
		t.Fatalf("after first review got %v/%d, want 4.0/1", f.products.rating, f.products.count)
	}

	if _, err := svc.Create(context.Background(), author, CreateReviewInput{
		ProductID: &productID,
		Rating:    5,
	}); err != nil {
		t.Fatalf("second review: %v", err)
	}
	if f.products.rating != 4.5 || f.products.count != 2 {
		t.Fatalf("after ratings {4,5} got %v/%d, want 4.5/2", f.products.rating, f.products.count)
	}
	if f.vendors.calls != 0 {
		t.Fatalf("vendor rating must not change for product-only reviews")
	}
}

func TestCreateReviewWithBothSubjectsRecomputesBoth(t *testing.T) {
	f := newFixtures()
	svc := buildTestService(t, f)
	productID, vendorID := "prod-a", "vendor-a"

	review, err := svc.Create(context.Background(), &models.User{ID: "user-1", Name: "Ada"}, CreateReviewInput{
		ProductID: &productID,
		VendorID:  &vendorID,
		Rating:    3,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if review.ProductID == nil || review.VendorID == nil {
		t.Fatalf("expected both subject ids on the stored review")
	}
	if f.products.calls != 1 || f.vendors.calls != 1 {
		t.Fatalf("expected one recompute per subject, got %d/%d", f.products.calls, f.vendors.calls)
	}
}

func TestCreateReviewRequiresSubject(t *testing.T) {
	svc := buildTestService(t, newFixtures())

	_, err := svc.Create(context.Background(), &models.User{ID: "user-1"}, CreateReviewInput{Rating: 5})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc := buildTestService(t, newFixtures())
	productID := "prod-a"

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), &models.User{ID: "user-1"}, CreateReviewInput{
			ProductID: &productID,
			Rating:    rating,
		})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

type fixtures struct {
	reviews  *stubReviewRepo
	products *stubRatingStore
	vendors  *stubRatingStore
}

func newFixtures() *fixtures {
	return &fixtures{
		reviews:  &stubReviewRepo{},
		products: &stubRatingStore{},
		vendors:  &stubRatingStore{},
	}
}

func buildTestService(t *testing.T, f *fixtures) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		ReviewRepo:   f.reviews,
		ProductStore: f.products,
		VendorStore:  f.vendors,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubReviewRepo struct {
	rows []*models.Review
}

func (r *stubReviewRepo) Create(_ context.Context, review *models.Review) (*models.Review, error) {
	r.rows = append(r.rows, review)
	return review, nil
}

func (r *stubReviewRepo) ListForProduct(_ context.Context, productID string, _ int) ([]models.Review, error) {
	var out []models.Review
	for _, review := range r.rows {
		if review.ProductID != nil && *review.ProductID == productID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListForVendor(_ context.Context, vendorID string, _ int) ([]models.Review, error) {
	var out []models.Review
	for _, review := range r.rows {
		if review.VendorID != nil && *review.VendorID == vendorID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) StatsForProduct(_ context.Context, productID string) (RatingStats, error) {
	sum, count := 0, 0
	for _, review := range r.rows {
		if review.ProductID != nil && *review.ProductID == productID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return RatingStats{}, nil
	}
	return RatingStats{Average: float64(sum) / float64(count), Count: count}, nil
}

func (r *stubReviewRepo) StatsForVendor(_ context.Context, vendorID string) (RatingStats, error) {
	sum, count := 0, 0
	for _, review := range r.rows {
		if review.VendorID != nil && *review.VendorID == vendorID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return RatingStats{}, nil
	}
	return RatingStats{Average: float64(sum) / float64(count), Count: count}, nil
}

type stubRatingStore struct {
	rating float64
	count  int
	calls  int
}

func (s *stubRatingStore) UpdateRating(_ context.Context, _ string, rating float64, count int) error {
	s.rating = rating
	s.count = count
	s.calls++
	return nil
}
