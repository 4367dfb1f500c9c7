// Package ledger manages an account's expense records. Every operation is
// scoped to the owning account; records are append-and-delete only.
package ledger

import (
	"errors"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrMissingTitle  = errors.New("title is required")

	// ErrRecordNotAccessible is returned both when the record does not exist
	// and when it belongs to a different account. A single opaque error keeps
	// callers from probing which ids exist under other accounts.
	ErrRecordNotAccessible = errors.New("expense not found")
)

type Service struct {
	store *store.Store
	log   *zap.Logger
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// AddInput carries a new expense entry, manual or from a receipt scan.
type AddInput struct {
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

// Add validates and persists a new record for the account.
func (s *Service) Add(userID uint, in AddInput) (*models.Expense, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrMissingTitle
	}
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Other"
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    strings.TrimSpace(in.Title),
		Amount:   in.Amount.Round(2),
		Category: category,
		Date:     date,
	}
	if err := s.store.CreateExpense(expense); err != nil {
		return nil, err
	}

	s.log.Info("expense added",
		zap.Uint("user_id", userID),
		zap.Uint("expense_id", expense.ID),
		zap.String("category", expense.Category))
	return expense, nil
}

// Remove deletes one of the account's records by id.
func (s *Service) Remove(userID, expenseID uint) error {
	err := s.store.DeleteExpense(userID, expenseID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecordNotAccessible
	}
	return err
}

// List returns the account's records, newest first. The order is stable
// across repeated reads between writes.
func (s *Service) List(userID uint) ([]models.Expense, error) {
	return s.store.ExpensesByUser(userID)
}
