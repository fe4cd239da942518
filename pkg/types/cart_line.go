package types

// CartLine is a single stored cart entry. Product and vendor data are
// joined at read time, never denormalized into the cart itself.
type CartLine struct {
	ProductID string  `json:"product_id" validate:"required"`
	VendorID  string  `json:"vendor_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Variant   *string `json:"variant,omitempty"`
}

// CartLines is persisted as a jsonb column on the cart row.
type CartLines []CartLine
