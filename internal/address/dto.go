package address

// AddressInput is the request payload for creating or updating an address.
type AddressInput struct {
	Label        string  `json:"label,omitempty"`
	Line1        string  `json:"line1" validate:"required"`
	Line2        *string `json:"line2,omitempty"`
	City         string  `json:"city" validate:"required"`
	Postcode     string  `json:"postcode" validate:"required"`
	Country      string  `json:"country,omitempty"`
	IsDefault    bool    `json:"is_default,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}
