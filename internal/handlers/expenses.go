package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/currency"
	"fintrack/internal/httputil"
	"fintrack/internal/ledger"
	"fintrack/internal/middleware"
	"fintrack/internal/receipt"
	"fintrack/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AddExpenseRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	expense, err := h.ledger.Add(userID, ledger.AddInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) || errors.Is(err, ledger.ErrMissingTitle) {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("failed to add expense", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, expense)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	expenses, err := h.ledger.List(userID)
	if err != nil {
		h.log.Error("failed to list expenses", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, expenses)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid expense id")
		return
	}

	if err := h.ledger.Remove(userID, uint(id)); err != nil {
		if errors.Is(err, ledger.ErrRecordNotAccessible) {
			// Same answer whether the id is missing or owned by someone else.
			httputil.WriteError(w, http.StatusNotFound, "expense not found")
			return
		}
		h.log.Error("failed to delete expense", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"msg": "expense removed"})
}

// SummaryResponse pairs the raw figures with display strings already
// rendered in the account's preferred currency.
type SummaryResponse struct {
	report.Summary
	Currency   string         `json:"currency"`
	Formatted  FormattedSums  `json:"formatted"`
	TimeSeries []report.Point `json:"time_series"`
}

type FormattedSums struct {
	TotalExpenses   string `json:"total_expenses"`
	Salary          string `json:"salary"`
	RemainingBudget string `json:"remaining_budget"`
}

func (h *Handler) ExpenseSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	user, err := h.store.UserByID(userID)
	if err != nil {
		h.log.Error("failed to fetch user for summary", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
		return
	}
	expenses, err := h.ledger.List(userID)
	if err != nil {
		h.log.Error("failed to list expenses for summary", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "server error")
		return
	}

	summary := report.Summarize(expenses, user.Salary)
	httputil.WriteJSON(w, http.StatusOK, SummaryResponse{
		Summary:  summary,
		Currency: user.Currency,
		Formatted: FormattedSums{
			TotalExpenses:   currency.Format(summary.TotalExpenses, user.Currency),
			Salary:          currency.Format(summary.Salary, user.Currency),
			RemainingBudget: currency.Format(summary.RemainingBudget, user.Currency),
		},
		TimeSeries: report.TimeSeries(expenses),
	})
}

type ScanRequest struct {
	Text string `json:"text"`
}

// ScanReceipt turns OCR output into a pre-filled expense draft. The OCR
// itself runs client side; this endpoint only does the field extraction.
func (h *Handler) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserID(r.Context()); !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, receipt.Parse(req.Text, time.Now()))
}
