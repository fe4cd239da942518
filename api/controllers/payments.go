package controllers

import (
	"net/http"

	"github.com/zoramarket/zora-backend/api/middleware"
	"github.com/zoramarket/zora-backend/api/responses"
	"github.com/zoramarket/zora-backend/api/validators"
	paymentsvc "github.com/zoramarket/zora-backend/internal/payments"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/logger"
)

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

// PaymentCreateIntent mints a Stripe payment intent for the given amount.
func PaymentCreateIntent(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())

		var body paymentsvc.CreateIntentInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateIntent(r.Context(), user, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// PaymentConfirm re-checks the intent status with Stripe and confirms
// the linked order when the charge succeeded.
func PaymentConfirm(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())

		var body confirmPaymentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Confirm(r.Context(), user, body.PaymentIntentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// PaymentConfig exposes the browser-safe Stripe configuration.
func PaymentConfig(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Config())
	}
}
