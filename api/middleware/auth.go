package middleware

import (
	"net/http"
	"strings"

	"github.com/zoramarket/zora-backend/api/responses"
	"github.com/zoramarket/zora-backend/internal/auth"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/logger"
)

// Session resolves the caller's identity from the session cookie or the
// Authorization bearer token, cookie winning when both are present. The
// request proceeds either way; handlers that need identity pair this
// with RequireAuth.
func Session(svc auth.Service, cookieName string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookieToken := ""
			if cookie, err := r.Cookie(cookieName); err == nil {
				cookieToken = cookie.Value
			}
			bearerToken := bearerFromHeader(r)

			user, err := svc.ResolveIdentity(ctx, cookieToken, bearerToken)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx = WithUser(ctx, user)
			if logg != nil {
				ctx = logg.WithUserID(ctx, user.ID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no resolved identity.
func RequireAuth(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserFromContext(r.Context()) == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerFromHeader(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}
