package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCurrency is assigned to new accounts until the owner picks another one.
const DefaultCurrency = "INR"

type User struct {
	gorm.Model
	Name     string          `gorm:"size:50;not null" json:"name"`
	Mobile   string          `gorm:"size:20" json:"mobile"`
	Email    string          `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username string          `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password string          `gorm:"size:255;not null" json:"-"`
	Salary   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"salary"`
	Currency string          `gorm:"size:3;not null;default:INR" json:"currency"`
}

type Expense struct {
	gorm.Model
	UserID   uint            `gorm:"index;not null" json:"-"`
	Title    string          `gorm:"size:255;not null" json:"title"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category string          `gorm:"size:50;index;not null" json:"category"`
	Date     time.Time       `gorm:"index;not null" json:"date"`
}

// Categories the expense form offers. The ledger accepts any non-empty
// label so records survive a category rename.
var Categories = []string{
	"Food",
	"Transport",
	"Utilities",
	"Entertainment",
	"Health",
	"Shopping",
	"Other",
}
