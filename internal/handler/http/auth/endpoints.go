package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-cms/internal/domain/entity"
	"news-cms/internal/handler/http/respond"
	authUC "news-cms/internal/usecase/auth"
)

type RegisterHandler struct{ Svc *authUC.Service }

// ServeHTTP creates a new admin account from a username and password.
// Returns 409 when an active account already holds the username.
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if err := entity.ValidateUsername(req.Username); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := entity.ValidatePassword(req.Password); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	msg, err := h.Svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		RecordRegistration("failure")
		code := http.StatusInternalServerError
		if errors.Is(err, authUC.ErrUsernameTaken) {
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	RecordRegistration("success")
	respond.JSON(w, http.StatusCreated, map[string]string{"message": msg})
}

type LoginHandler struct{ Svc *authUC.Service }

// ServeHTTP verifies credentials and returns a bearer token.
// Unknown username and wrong password get the same 401 response.
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("username and password are required"))
		return
	}

	result, err := h.Svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		RecordLoginAttempt("failure")
		code := http.StatusInternalServerError
		if errors.Is(err, authUC.ErrInvalidCredentials) {
			code = http.StatusUnauthorized
		}
		respond.SafeError(w, code, err)
		return
	}

	RecordLoginAttempt("success")
	respond.JSON(w, http.StatusOK, map[string]any{
		"access_token": result.AccessToken,
		"token_type":   result.TokenType,
		"expires_in":   result.ExpiresIn,
	})
}

type ChangePasswordHandler struct{ Svc *authUC.Service }

// ServeHTTP replaces the caller's password after verifying the current one.
// The caller is identified by the bearer token; a stale token whose subject
// was deleted after issuance gets 401.
func (h ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.OldPassword == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("old_password is required"))
		return
	}
	if err := entity.ValidatePassword(req.NewPassword); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err := h.Svc.ChangePassword(r.Context(), identity.AdminID, req.OldPassword, req.NewPassword)
	if err != nil {
		RecordPasswordChange("failure")
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, authUC.ErrInvalidCredentials):
			code = http.StatusUnauthorized
		case errors.Is(err, authUC.ErrUserNotFound):
			code = http.StatusUnauthorized
		}
		respond.SafeError(w, code, err)
		return
	}

	RecordPasswordChange("success")
	respond.JSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}
