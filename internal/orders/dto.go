package orders

import "github.com/zoramarket/zora-backend/pkg/types"

// CreateOrderInput is the request payload for placing an order. Item
// prices are ignored; the engine always reprices from the live catalog.
type CreateOrderInput struct {
	Items           types.CartLines        `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress *types.DeliveryAddress `json:"delivery_address,omitempty"`
	DeliveryOption  string                 `json:"delivery_option,omitempty"`
	PaymentMethod   string                 `json:"payment_method,omitempty"`
}

// ListFilters narrows the order history query.
type ListFilters struct {
	Status string
}
