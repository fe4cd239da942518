package payments

// CreateIntentInput is the request payload for starting a card payment.
type CreateIntentInput struct {
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	OrderID *string `json:"order_id,omitempty"`
}

// CreateIntentResult carries the client-side material for Stripe.js.
type CreateIntentResult struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	PublishableKey  string `json:"publishable_key"`
}

// ConfirmResult reports the outcome of a payment confirmation check.
type ConfirmResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// ConfigResult exposes the browser-safe Stripe configuration.
type ConfigResult struct {
	PublishableKey string `json:"publishable_key"`
}
