package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v84"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/money"
)

// Stripe rejects GBP charges under 30 pence; surface that limit before
// the API call does.
const minimumAmount = 0.30

// Service delegates card payments to Stripe. No card data touches this
// process; the backend only mints intents and checks their status.
type Service interface {
	CreateIntent(ctx context.Context, user *models.User, input CreateIntentInput) (*CreateIntentResult, error)
	Confirm(ctx context.Context, user *models.User, intentID string) (*ConfirmResult, error)
	Config() ConfigResult
}

type orderStore interface {
	AttachPaymentIntent(ctx context.Context, orderID, intentID string) error
	MarkConfirmed(ctx context.Context, orderID string) error
}

type service struct {
	gateway Gateway
	orders  orderStore
}

// ServiceParams bundles the dependencies required to build a payment service.
type ServiceParams struct {
	Gateway    Gateway
	OrderStore orderStore
}

// NewService constructs the payment service.
func NewService(params ServiceParams) (Service, error) {
	if params.Gateway == nil {
		return nil, fmt.Errorf("payment gateway is required")
	}
	if params.OrderStore == nil {
		return nil, fmt.Errorf("order store is required")
	}
	return &service{gateway: params.Gateway, orders: params.OrderStore}, nil
}

func (s *service) CreateIntent(ctx context.Context, user *models.User, input CreateIntentInput) (*CreateIntentResult, error) {
	if input.Amount < minimumAmount {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be at least £0.30")
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(money.Pence(input.Amount)),
		Currency: stripe.String(string(stripe.CurrencyGBP)),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("user_id", user.ID)
	if input.OrderID != nil {
		params.AddMetadata("order_id", *input.OrderID)
	}

	intent, err := s.gateway.CreateIntent(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePayment, err, "create payment intent")
	}

	if input.OrderID != nil {
		if err := s.orders.AttachPaymentIntent(ctx, *input.OrderID, intent.ID); err != nil {
			return nil, err
		}
	}

	return &CreateIntentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		PublishableKey:  s.gateway.PublishableKey(),
	}, nil
}

// Confirm re-reads the intent from Stripe. Success flips the metadata
// order to confirmed; any other status is reported without side effects.
func (s *service) Confirm(ctx context.Context, _ *models.User, intentID string) (*ConfirmResult, error) {
	if intentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment intent id is required")
	}

	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePayment, err, "retrieve payment intent")
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return &ConfirmResult{Success: false, Status: string(intent.Status)}, nil
	}

	if orderID := intent.Metadata["order_id"]; orderID != "" {
		if err := s.orders.MarkConfirmed(ctx, orderID); err != nil {
			return nil, err
		}
	}
	return &ConfirmResult{Success: true, Status: string(intent.Status)}, nil
}

func (s *service) Config() ConfigResult {
	return ConfigResult{PublishableKey: s.gateway.PublishableKey()}
}
