package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	apphttp "github.com/chainsafe/social-wallet-api/pkg/app/http"
)

// HeaderIdentityID carries the caller identity when no JWKS is configured.
const HeaderIdentityID = "X-Identity-ID"

// SubjectValidator resolves a bearer token to the identity ID it was issued for.
type SubjectValidator interface {
	Subject(ctx context.Context, token string) (string, error)
	IsConfigured() bool
}

// IdentityMiddleware puts the caller identity into the request context.
//
// With a configured validator the identity is the `sub` of the bearer token;
// otherwise the X-Identity-ID header is trusted as-is.
// A request without identity is rejected with 400, an invalid token with 401.
func IdentityMiddleware(validator SubjectValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identityID string

			if validator != nil && validator.IsConfigured() {
				token := bearerToken(r)
				if token == "" {
					apphttp.WriteError(w, r, apperrors.BadRequestError(nil, apperrors.KindInvalidRequest))
					return
				}

				sub, err := validator.Subject(r.Context(), token)
				if err != nil {
					logger.Debug("rejected identity token", zap.String("path", r.URL.Path), zap.Error(err))
					apphttp.WriteError(w, r, apperrors.UnAuthorizedError(err, apperrors.KindUnauthorized))
					return
				}
				identityID = sub
			} else {
				identityID = strings.TrimSpace(r.Header.Get(HeaderIdentityID))
			}

			if identityID == "" {
				apphttp.WriteError(w, r, apperrors.BadRequestError(nil, apperrors.KindInvalidRequest))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentityID(r.Context(), identityID)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
