package auth

import (
	"net/http"

	authUC "news-cms/internal/usecase/auth"
)

// Register wires the authentication endpoints onto the mux.
// Registration and login are public; the password change requires a
// valid bearer token.
func Register(mux *http.ServeMux, svc *authUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("POST /auth/register", RegisterHandler{svc})
	mux.Handle("POST /auth/login", LoginHandler{svc})
	mux.Handle("POST /auth/password", authz(ChangePasswordHandler{svc}))
}
