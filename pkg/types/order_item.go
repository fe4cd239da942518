package types

// OrderItem is the denormalized line snapshot frozen into an order at
// creation time. Unlike CartLine it carries display fields so historical
// orders stay readable after catalog changes.
type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	VendorID  string  `json:"vendor_id" validate:"required"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Variant   *string `json:"variant,omitempty"`
}

// OrderItems is persisted as a jsonb column on the order row.
type OrderItems []OrderItem
