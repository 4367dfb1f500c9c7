// Package report derives summary figures from a ledger snapshot. All sums
// use decimal arithmetic so repeated aggregation never drifts.
package report

import (
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one slice of the spending breakdown. Order follows the
// first appearance of each category in the input.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Summary is the dashboard view of an account's finances.
type Summary struct {
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	Salary          decimal.Decimal `json:"salary"`
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
	CategoryTotals  []CategoryTotal `json:"category_totals"`
}

// Point is one step of the spending trend line.
type Point struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Summarize folds a ledger snapshot and a salary into dashboard totals in a
// single pass. RemainingBudget may go negative; the sign is meaningful and
// is never clamped. Empty input yields zero totals and an empty breakdown.
func Summarize(records []models.Expense, salary decimal.Decimal) Summary {
	total := decimal.Zero
	byCategory := map[string]int{}
	categories := []CategoryTotal{}

	for _, rec := range records {
		total = total.Add(rec.Amount)
		if i, ok := byCategory[rec.Category]; ok {
			categories[i].Total = categories[i].Total.Add(rec.Amount)
			continue
		}
		byCategory[rec.Category] = len(categories)
		categories = append(categories, CategoryTotal{Category: rec.Category, Total: rec.Amount})
	}

	return Summary{
		TotalExpenses:   total,
		Salary:          salary,
		RemainingBudget: salary.Sub(total),
		CategoryTotals:  categories,
	}
}

// TimeSeries maps records to trend points in the order supplied; the caller
// already owns the ordering guarantee.
func TimeSeries(records []models.Expense) []Point {
	points := make([]Point, 0, len(records))
	for _, rec := range records {
		points = append(points, Point{Date: rec.Date, Amount: rec.Amount})
	}
	return points
}
