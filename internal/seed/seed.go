package seed

import (
	"time"

	"fintrack/internal/logger"
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	demoEmail    = "demo@fintrack.local"
	demoUsername = "Demo1!"
	demoPassword = "Demo123!"
)

var demoExpenses = []struct {
	Title    string
	Amount   string
	Category string
	DaysAgo  int
}{
	{"Groceries", "1450.00", "Food", 1},
	{"Metro card", "300.00", "Transport", 2},
	{"Electricity bill", "2100.50", "Utilities", 5},
	{"Movie night", "650.00", "Entertainment", 7},
	{"Pharmacy", "420.75", "Health", 9},
}

// Run inserts a demo account with a handful of expenses so a fresh install
// has something on the dashboard. Applied once; reruns are no-ops.
func Run(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		logger.Log.Fatal("seed check failed", zap.Error(err))
	}
	if count > 0 {
		logger.Log.Info("seed already applied, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatal("failed to hash seed password", zap.Error(err))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     "Demo User",
			Mobile:   "9999999999",
			Email:    demoEmail,
			Username: demoUsername,
			Password: string(hash),
			Salary:   decimal.RequireFromString("50000.00"),
			Currency: models.DefaultCurrency,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, e := range demoExpenses {
			expense := models.Expense{
				UserID:   user.ID,
				Title:    e.Title,
				Amount:   decimal.RequireFromString(e.Amount),
				Category: e.Category,
				Date:     now.AddDate(0, 0, -e.DaysAgo),
			}
			if err := tx.Create(&expense).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Fatal("seed failed", zap.Error(err))
	}
	logger.Log.Info("seeded demo user", zap.String("username", demoUsername))
}
