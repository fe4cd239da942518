package types

// DeliveryAddress is the address snapshot frozen into an order.
type DeliveryAddress struct {
	ID           string  `json:"id,omitempty"`
	Label        string  `json:"label,omitempty"`
	Line1        string  `json:"line1"`
	Line2        *string `json:"line2,omitempty"`
	City         string  `json:"city"`
	Postcode     string  `json:"postcode"`
	Country      string  `json:"country,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}
