package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/httputil"
	"fintrack/internal/ledger"
	"fintrack/internal/store"
	"fintrack/internal/validation"

	"go.uber.org/zap"
)

// Handler carries the services the HTTP layer dispatches into.
type Handler struct {
	auth   *auth.Service
	ledger *ledger.Service
	store  *store.Store
	log    *zap.Logger
}

func New(authSvc *auth.Service, ledgerSvc *ledger.Service, st *store.Store, log *zap.Logger) *Handler {
	return &Handler{auth: authSvc, ledger: ledgerSvc, store: st, log: log}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, "email, username and password are required")
		return
	}

	token, err := h.auth.Signup(auth.SignupInput{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// writeAuthError maps the auth error taxonomy onto status codes. Validation
// and credential failures carry their safe, user-correctable message;
// anything else is a generic 500 without internal detail.
func (h *Handler) writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validation.ErrPasswordTooShort),
		errors.Is(err, validation.ErrPasswordWeak),
		errors.Is(err, validation.ErrUsernameTooShort),
		errors.Is(err, validation.ErrUsernameWeak):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicateAccount):
		httputil.WriteError(w, http.StatusBadRequest, "User already exists (Email or Username)")
	case errors.Is(err, auth.ErrInvalidCredentials):
		httputil.WriteError(w, http.StatusBadRequest, "Invalid Credentials")
	default:
		h.log.Error("auth request failed", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
	}
}
