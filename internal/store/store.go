package store

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateAccount means the email or username is already taken. The
	// unique indexes are the source of truth; concurrent signups racing past
	// the pre-check still land here.
	ErrDuplicateAccount = errors.New("email or username already exists")

	ErrNotFound = errors.New("record not found")
)

// Store wraps the database handle with the queries the services need.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser persists a new account. A uniqueness violation from the
// database maps to ErrDuplicateAccount, never to a generic failure.
func (s *Store) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// UserExists reports whether an account already uses the email or the
// username. Signup runs this as a fast pre-check before hashing.
func (s *Store) UserExists(email, username string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check existing user: %w", err)
	}
	return count > 0, nil
}

// ProfileUpdate carries the fields an owner may change. Nil means keep.
type ProfileUpdate struct {
	Name     *string
	Mobile   *string
	Salary   *decimal.Decimal
	Currency *string
}

// UpdateProfile applies a partial profile change and returns the fresh row.
func (s *Store) UpdateProfile(id uint, upd ProfileUpdate) (*models.User, error) {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Mobile != nil {
		fields["mobile"] = *upd.Mobile
	}
	if upd.Salary != nil {
		fields["salary"] = *upd.Salary
	}
	if upd.Currency != nil {
		fields["currency"] = *upd.Currency
	}
	if len(fields) > 0 {
		err := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, fmt.Errorf("update profile %d: %w", id, err)
		}
	}
	return s.UserByID(id)
}

func (s *Store) CreateExpense(expense *models.Expense) error {
	if err := s.db.Create(expense).Error; err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// ExpensesByUser lists an account's records, newest first. Ties on date
// break on id so repeated reads between writes return the same order.
func (s *Store) ExpensesByUser(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("list expenses for user %d: %w", userID, err)
	}
	return expenses, nil
}

// DeleteExpense removes a record only when both the id and the owner match.
// The caller cannot tell a foreign record from a missing one.
func (s *Store) DeleteExpense(userID, expenseID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", expenseID, userID).
		Delete(&models.Expense{})
	if res.Error != nil {
		return fmt.Errorf("delete expense %d: %w", expenseID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
