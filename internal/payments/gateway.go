package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v84"

	pkgstripe "github.com/zoramarket/zora-backend/pkg/stripe"
)

// Gateway is the thin seam over Stripe's payment intent API.
type Gateway interface {
	CreateIntent(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*stripe.PaymentIntent, error)
	PublishableKey() string
}

type stripeGateway struct {
	client *pkgstripe.Client
}

// NewStripeGateway adapts the shared Stripe client to the payments seam.
func NewStripeGateway(client *pkgstripe.Client) (Gateway, error) {
	if client == nil {
		return nil, fmt.Errorf("stripe client is required")
	}
	return &stripeGateway{client: client}, nil
}

func (g *stripeGateway) CreateIntent(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
	return g.client.API().V1PaymentIntents.Create(ctx, params)
}

func (g *stripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*stripe.PaymentIntent, error) {
	return g.client.API().V1PaymentIntents.Retrieve(ctx, intentID, &stripe.PaymentIntentRetrieveParams{})
}

func (g *stripeGateway) PublishableKey() string {
	return g.client.PublishableKey()
}
