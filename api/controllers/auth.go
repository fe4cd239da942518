package controllers

import (
	"net/http"
	"time"

	"github.com/zoramarket/zora-backend/api/middleware"
	"github.com/zoramarket/zora-backend/api/responses"
	"github.com/zoramarket/zora-backend/api/validators"
	authsvc "github.com/zoramarket/zora-backend/internal/auth"
	"github.com/zoramarket/zora-backend/internal/users"
	"github.com/zoramarket/zora-backend/pkg/config"
	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/logger"
)

type exchangeSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type exchangeSessionResponse struct {
	User         *models.User `json:"user"`
	SessionToken string       `json:"session_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

type updateProfileRequest struct {
	Phone             *string   `json:"phone,omitempty"`
	CulturalInterests *[]string `json:"cultural_interests,omitempty"`
}

// AuthExchangeSession trades a one-time provider session id for a durable
// session. The token travels both in the body and in an HttpOnly cookie;
// native clients use the body, browsers ride the cookie.
func AuthExchangeSession(svc authsvc.Service, cfg config.AuthConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body exchangeSessionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ExchangeSession(r.Context(), body.SessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, sessionCookie(cfg.CookieName, result.SessionToken, result.ExpiresAt))
		responses.WriteSuccess(w, exchangeSessionResponse{
			User:         result.User,
			SessionToken: result.SessionToken,
			ExpiresAt:    result.ExpiresAt,
		})
	}
}

// AuthMe returns the authenticated user's profile.
func AuthMe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// AuthUpdateProfile patches the mutable profile fields.
func AuthUpdateProfile(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		var body updateProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), user.ID, users.ProfilePatch{
			Phone:             body.Phone,
			CulturalInterests: body.CulturalInterests,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// AuthLogout drops the server-side session and expires the cookie.
func AuthLogout(svc authsvc.Service, cfg config.AuthConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		if err := svc.Logout(r.Context(), user.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, expiredSessionCookie(cfg.CookieName))
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// sessionCookie mirrors the attributes the web client depends on:
// cross-site (SameSite=None) requires Secure, and HttpOnly keeps the
// token out of script reach.
func sessionCookie(name, token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func expiredSessionCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
