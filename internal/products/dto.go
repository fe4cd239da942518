package products

import "github.com/zoramarket/zora-backend/pkg/db/models"

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// ListFilters describe the filter knobs for the product browse endpoint.
// The sentinel value "all" on category/region disables that filter.
type ListFilters struct {
	Category string
	Region   string
	VendorID string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Skip     int
	Limit    int
}

func (f ListFilters) normalized() ListFilters {
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	return f
}

// ProductDetail pairs a product with its owning vendor for the detail page.
type ProductDetail struct {
	Product models.Product `json:"product"`
	Vendor  *models.Vendor `json:"vendor,omitempty"`
}

// SearchResult groups the cross-entity matches for the search endpoint.
type SearchResult struct {
	Products []models.Product `json:"products"`
	Vendors  []models.Vendor  `json:"vendors"`
}
