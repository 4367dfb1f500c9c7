package ledger

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LedgerTestSuite struct {
	suite.Suite
	svc   *Service
	st    *store.Store
	owner uint
	other uint
}

func (s *LedgerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(s.T(), err)
	require.NoError(s.T(), store.Migrate(db))

	s.st = store.New(db)
	s.svc = NewService(s.st, zap.NewNop())

	owner := models.User{Name: "Owner", Email: "owner@test.com", Username: "Owner1!", Password: "x"}
	other := models.User{Name: "Other", Email: "other@test.com", Username: "Other1!", Password: "x"}
	require.NoError(s.T(), s.st.CreateUser(&owner))
	require.NoError(s.T(), s.st.CreateUser(&other))
	s.owner = owner.ID
	s.other = other.ID
}

func (s *LedgerTestSuite) addExpense(userID uint, title, amount string, daysAgo int) *models.Expense {
	expense, err := s.svc.Add(userID, AddInput{
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Category: "Food",
		Date:     time.Now().AddDate(0, 0, -daysAgo),
	})
	require.NoError(s.T(), err)
	return expense
}

func (s *LedgerTestSuite) TestAddAndList() {
	s.addExpense(s.owner, "Older", "10.00", 2)
	s.addExpense(s.owner, "Newest", "30.00", 0)
	s.addExpense(s.owner, "Middle", "20.00", 1)

	listed, err := s.svc.List(s.owner)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 3)

	// Newest first, and stable across repeated reads.
	assert.Equal(s.T(), "Newest", listed[0].Title)
	assert.Equal(s.T(), "Middle", listed[1].Title)
	assert.Equal(s.T(), "Older", listed[2].Title)

	again, err := s.svc.List(s.owner)
	require.NoError(s.T(), err)
	for i := range listed {
		assert.Equal(s.T(), listed[i].ID, again[i].ID)
	}
}

func (s *LedgerTestSuite) TestListScopedToOwner() {
	s.addExpense(s.owner, "Mine", "10.00", 0)
	s.addExpense(s.other, "Theirs", "99.00", 0)

	listed, err := s.svc.List(s.owner)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 1)
	assert.Equal(s.T(), "Mine", listed[0].Title)
}

func (s *LedgerTestSuite) TestAddRejectsBadInput() {
	_, err := s.svc.Add(s.owner, AddInput{Title: "Free lunch", Amount: decimal.Zero})
	assert.ErrorIs(s.T(), err, ErrInvalidAmount)

	_, err = s.svc.Add(s.owner, AddInput{Title: "Refund", Amount: decimal.RequireFromString("-5.00")})
	assert.ErrorIs(s.T(), err, ErrInvalidAmount)

	_, err = s.svc.Add(s.owner, AddInput{Title: "   ", Amount: decimal.RequireFromString("5.00")})
	assert.ErrorIs(s.T(), err, ErrMissingTitle)
}

func (s *LedgerTestSuite) TestAddDefaults() {
	expense, err := s.svc.Add(s.owner, AddInput{
		Title:  "No category",
		Amount: decimal.RequireFromString("12.345"),
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "Other", expense.Category)
	assert.False(s.T(), expense.Date.IsZero())
	// Amounts are stored at two-decimal precision.
	assert.True(s.T(), expense.Amount.Equal(decimal.RequireFromString("12.35")), expense.Amount.String())
}

func (s *LedgerTestSuite) TestRemove() {
	expense := s.addExpense(s.owner, "Doomed", "10.00", 0)

	require.NoError(s.T(), s.svc.Remove(s.owner, expense.ID))

	listed, err := s.svc.List(s.owner)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), listed)
}

func (s *LedgerTestSuite) TestRemoveDoesNotLeakExistence() {
	expense := s.addExpense(s.owner, "Private", "10.00", 0)

	// A foreign record and a missing record fail identically.
	errForeign := s.svc.Remove(s.other, expense.ID)
	errMissing := s.svc.Remove(s.other, 99999)

	assert.ErrorIs(s.T(), errForeign, ErrRecordNotAccessible)
	assert.ErrorIs(s.T(), errMissing, ErrRecordNotAccessible)
	assert.Equal(s.T(), errForeign.Error(), errMissing.Error())

	// The record is untouched.
	listed, err := s.svc.List(s.owner)
	require.NoError(s.T(), err)
	assert.Len(s.T(), listed, 1)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
