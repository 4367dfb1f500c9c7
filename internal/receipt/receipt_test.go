package receipt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var scanTime = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestParseExtractsAmountAndDate(t *testing.T) {
	text := "SUPERMART\n12/03/2025\nTOTAL 842.50\nTHANK YOU"

	draft := Parse(text, scanTime)

	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("842.50")), draft.Amount.String())
	assert.Equal(t, time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC), draft.Date)
	assert.Equal(t, DefaultDescription, draft.Description)
}

func TestParseTakesFirstAmount(t *testing.T) {
	draft := Parse("ITEM 10.00\nITEM 25.99\nTOTAL 35.99", scanTime)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("10.00")))
}

func TestParseTwoDigitYear(t *testing.T) {
	draft := Parse("paid on 1/2/25", scanTime)
	assert.Equal(t, 2025, draft.Date.Year())
	assert.Equal(t, time.January, draft.Date.Month())
	assert.Equal(t, 2, draft.Date.Day())
}

func TestParseFallbacks(t *testing.T) {
	draft := Parse("nothing useful here", scanTime)

	assert.True(t, draft.Amount.IsZero())
	assert.Equal(t, scanTime, draft.Date)
	assert.Equal(t, DefaultDescription, draft.Description)
}

func TestParseIntegerAmountIgnored(t *testing.T) {
	// Only two-decimal figures look like money to the extractor.
	draft := Parse("TABLE 12 TOTAL unknown", scanTime)
	assert.True(t, draft.Amount.IsZero())
}
