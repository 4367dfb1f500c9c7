package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/currency"
	"fintrack/internal/httputil"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProfileResponse is the account view. The password hash never leaves the
// server; models.User already excludes it from JSON.
type ProfileResponse struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Mobile   string          `json:"mobile"`
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Salary   decimal.Decimal `json:"salary"`
	Currency string          `json:"currency"`
}

func profileView(user *models.User) ProfileResponse {
	return ProfileResponse{
		ID:       user.ID,
		Name:     user.Name,
		Mobile:   user.Mobile,
		Email:    user.Email,
		Username: user.Username,
		Salary:   user.Salary,
		Currency: user.Currency,
	}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	user, err := h.store.UserByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.Error("failed to fetch profile", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profileView(user))
}

type UpdateProfileRequest struct {
	Name     *string          `json:"name"`
	Mobile   *string          `json:"mobile"`
	Salary   *decimal.Decimal `json:"salary"`
	Currency *string          `json:"currency"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Salary != nil && req.Salary.IsNegative() {
		httputil.WriteError(w, http.StatusBadRequest, "salary must not be negative")
		return
	}
	if req.Currency != nil && !currency.Supported(*req.Currency) {
		httputil.WriteError(w, http.StatusBadRequest, "unsupported currency code")
		return
	}

	user, err := h.store.UpdateProfile(userID, store.ProfileUpdate{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Salary:   req.Salary,
		Currency: req.Currency,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.Error("failed to update profile", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profileView(user))
}
