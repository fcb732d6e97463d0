// Package auth provides the HTTP surface of authentication: the register,
// login, and password change endpoints, plus the bearer token middleware
// protecting write routes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"news-cms/internal/handler/http/respond"
	authUC "news-cms/internal/usecase/auth"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// IdentityFromContext returns the token identity stored by Authz.
func IdentityFromContext(ctx context.Context) (*authUC.Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(*authUC.Identity)
	return id, ok
}

// Authz returns middleware that requires a valid bearer token on every
// request it wraps. The extracted identity is stored in the request
// context for downstream handlers.
//
// Validation is purely cryptographic. Whether the subject still resolves
// to an active account is checked only by endpoints that act on the
// account itself, such as the password change.
func Authz(tokens *authUC.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := bearerIdentity(r.Header.Get("Authorization"), tokens)
			if err != nil {
				RecordTokenValidation("failure")
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			RecordTokenValidation("success")

			ctx := context.WithValue(r.Context(), ctxIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerIdentity parses the Authorization header and validates its token.
func bearerIdentity(authz string, tokens *authUC.TokenIssuer) (*authUC.Identity, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return nil, errors.New("missing bearer token")
	}
	return tokens.Validate(strings.TrimPrefix(authz, prefix))
}
