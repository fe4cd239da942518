package cart

// ItemView is a stored cart line joined with live product data.
type ItemView struct {
	ProductID  string  `json:"product_id"`
	VendorID   string  `json:"vendor_id"`
	Quantity   int     `json:"quantity"`
	Variant    *string `json:"variant,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
	VendorName string  `json:"vendor_name"`
	LineTotal  float64 `json:"line_total"`
}

// VendorGroup buckets the cart items sold by one vendor.
type VendorGroup struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	LogoURL      string     `json:"logo_url"`
	DeliveryTime string     `json:"delivery_time"`
	DeliveryFee  float64    `json:"delivery_fee"`
	Items        []ItemView `json:"items"`
	Subtotal     float64    `json:"subtotal"`
}

// CartView is the enriched response shape for every cart operation.
// Vendors is a pointer so the clear-cart response can drop the key
// entirely while every other response keeps "vendors":[] even when
// the cart is empty.
type CartView struct {
	Items             []ItemView     `json:"items"`
	Subtotal          float64        `json:"subtotal"`
	DeliveryFee       float64        `json:"delivery_fee"`
	ServiceFee        float64        `json:"service_fee"`
	Total             float64        `json:"total"`
	Vendors           *[]VendorGroup `json:"vendors,omitempty"`
	StaleItemsRemoved int            `json:"stale_items_removed"`
}
