package payments

import (
	"context"
	"testing"

	"github.com/stripe/stripe-go/v84"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

func TestCreateIntentRejectsBelowMinimum(t *testing.T) {
	svc := buildTestService(t, &stubGateway{}, &stubOrderStore{})

	_, err := svc.CreateIntent(context.Background(), &models.User{ID: "user-1"}, CreateIntentInput{Amount: 0.29})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateIntentConvertsToPenceAndTagsMetadata(t *testing.T) {
	gateway := &stubGateway{intent: &stripe.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
	}}
	orders := &stubOrderStore{}
	svc := buildTestService(t, gateway, orders)
	orderID := "order-1"

	result, err := svc.CreateIntent(context.Background(), &models.User{ID: "user-1"}, CreateIntentInput{
		Amount:  12.34,
		OrderID: &orderID,
	})
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}

	if got := *gateway.lastParams.Amount; got != 1234 {
		t.Fatalf("amount = %d pence, want 1234", got)
	}
	if got := *gateway.lastParams.Currency; got != "gbp" {
		t.Fatalf("currency = %s, want gbp", got)
	}
	if gateway.lastParams.Metadata["user_id"] != "user-1" {
		t.Fatalf("missing user_id metadata: %v", gateway.lastParams.Metadata)
	}
	if gateway.lastParams.Metadata["order_id"] != "order-1" {
		t.Fatalf("missing order_id metadata: %v", gateway.lastParams.Metadata)
	}
	if orders.attachedIntent != "pi_123" || orders.attachedOrder != "order-1" {
		t.Fatalf("intent not attached to order: %+v", orders)
	}
	if result.ClientSecret != "pi_123_secret" || result.PaymentIntentID != "pi_123" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.PublishableKey != "pk_test_stub" {
		t.Fatalf("publishable key = %s", result.PublishableKey)
	}
}

func TestCreateIntentMinimumBoundaryIsThirtyPence(t *testing.T) {
	gateway := &stubGateway{intent: &stripe.PaymentIntent{ID: "pi_min", ClientSecret: "s"}}
	svc := buildTestService(t, gateway, &stubOrderStore{})

	if _, err := svc.CreateIntent(context.Background(), &models.User{ID: "user-1"}, CreateIntentInput{Amount: 0.30}); err != nil {
		t.Fatalf("0.30 must be accepted: %v", err)
	}
	if got := *gateway.lastParams.Amount; got != 30 {
		t.Fatalf("amount = %d pence, want 30", got)
	}
}

func TestConfirmSucceededIntentConfirmsOrder(t *testing.T) {
	gateway := &stubGateway{intent: &stripe.PaymentIntent{
		ID:       "pi_123",
		Status:   stripe.PaymentIntentStatusSucceeded,
		Metadata: map[string]string{"order_id": "order-1"},
	}}
	orders := &stubOrderStore{}
	svc := buildTestService(t, gateway, orders)

	result, err := svc.Confirm(context.Background(), &models.User{ID: "user-1"}, "pi_123")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !result.Success || result.Status != "succeeded" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if orders.confirmedOrder != "order-1" {
		t.Fatalf("expected order confirmed, got %q", orders.confirmedOrder)
	}
}

func TestConfirmPendingIntentReportsWithoutSideEffects(t *testing.T) {
	gateway := &stubGateway{intent: &stripe.PaymentIntent{
		ID:       "pi_123",
		Status:   stripe.PaymentIntentStatusRequiresPaymentMethod,
		Metadata: map[string]string{"order_id": "order-1"},
	}}
	orders := &stubOrderStore{}
	svc := buildTestService(t, gateway, orders)

	result, err := svc.Confirm(context.Background(), &models.User{ID: "user-1"}, "pi_123")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if result.Success {
		t.Fatalf("expected success=false for unpaid intent")
	}
	if result.Status != "requires_payment_method" {
		t.Fatalf("status = %s", result.Status)
	}
	if orders.confirmedOrder != "" {
		t.Fatalf("order must not be confirmed for unpaid intent")
	}
}

func buildTestService(t *testing.T, gateway Gateway, orders *stubOrderStore) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Gateway: gateway, OrderStore: orders})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubGateway struct {
	intent     *stripe.PaymentIntent
	err        error
	lastParams *stripe.PaymentIntentCreateParams
}

func (g *stubGateway) CreateIntent(_ context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
	g.lastParams = params
	if g.err != nil {
		return nil, g.err
	}
	return g.intent, nil
}

func (g *stubGateway) RetrieveIntent(_ context.Context, _ string) (*stripe.PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.intent, nil
}

func (g *stubGateway) PublishableKey() string {
	return "pk_test_stub"
}

type stubOrderStore struct {
	attachedOrder  string
	attachedIntent string
	confirmedOrder string
}

func (s *stubOrderStore) AttachPaymentIntent(_ context.Context, orderID, intentID string) error {
	s.attachedOrder = orderID
	s.attachedIntent = intentID
	return nil
}

func (s *stubOrderStore) MarkConfirmed(_ context.Context, orderID string) error {
	s.confirmedOrder = orderID
	return nil
}
