// Package receipt extracts a best-effort expense draft from the raw text an
// external OCR service produced for a scanned bill.
package receipt

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDescription labels entries the user has not renamed yet.
const DefaultDescription = "Scanned Receipt"

var (
	amountPattern = regexp.MustCompile(`(\d+\.\d{2})`)
	datePattern   = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4})`)
)

// Draft is the pre-filled expense form derived from a scan.
type Draft struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// Parse scans the text for the first amount-looking and date-looking tokens.
// A missing amount yields zero; a missing or unparseable date yields now.
// Extraction is best effort and the user confirms the draft before saving.
func Parse(text string, now time.Time) Draft {
	draft := Draft{
		Amount:      decimal.Zero,
		Date:        now,
		Description: DefaultDescription,
	}

	if m := amountPattern.FindString(text); m != "" {
		if amount, err := decimal.NewFromString(m); err == nil {
			draft.Amount = amount
		}
	}

	if m := datePattern.FindString(text); m != "" {
		for _, layout := range []string{"1/2/2006", "1/2/06"} {
			if d, err := time.Parse(layout, m); err == nil {
				draft.Date = d
				break
			}
		}
	}

	return draft
}
