package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zoramarket/zora-backend/api/middleware"
	"github.com/zoramarket/zora-backend/api/responses"
	"github.com/zoramarket/zora-backend/api/validators"
	cartsvc "github.com/zoramarket/zora-backend/internal/cart"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/logger"
	"github.com/zoramarket/zora-backend/pkg/types"
)

type addCartItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	VendorID  string  `json:"vendor_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Variant   *string `json:"variant,omitempty"`
}

type replaceCartRequest struct {
	Items types.CartLines `json:"items" validate:"dive"`
}

// CartGet serves the enriched cart view for the authenticated user.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		view, err := svc.GetCart(r.Context(), user.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAddItem merges a line into the cart by product id.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())

		var body addCartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddItem(r.Context(), user.ID, types.CartLine{
			ProductID: body.ProductID,
			VendorID:  body.VendorID,
			Quantity:  body.Quantity,
			Variant:   body.Variant,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartReplace overwrites the stored line list wholesale.
func CartReplace(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())

		var body replaceCartRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.ReplaceItems(r.Context(), user.ID, body.Items)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartRemoveItem pulls every line carrying the product id.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		view, err := svc.RemoveItem(r.Context(), user.ID, chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartClear drops the cart row outright.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		view, err := svc.ClearCart(r.Context(), user.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
