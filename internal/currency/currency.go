// Package currency renders monetary amounts with the symbol and digit
// grouping conventions of a supported currency code.
package currency

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type convention struct {
	symbol string
	locale language.Tag
}

// The supported set mirrors the account settings picker. Locales drive the
// grouping separator placement, e.g. en-IN groups lakhs and crores.
var conventions = map[string]convention{
	"USD": {"$", language.MustParse("en-US")},
	"INR": {"₹", language.MustParse("en-IN")},
	"EUR": {"€", language.MustParse("de-DE")},
	"GBP": {"£", language.MustParse("en-GB")},
	"JPY": {"¥", language.MustParse("ja-JP")},
	"AUD": {"A$", language.MustParse("en-AU")},
	"CAD": {"C$", language.MustParse("en-CA")},
	"CNY": {"¥", language.MustParse("zh-CN")},
}

const fallbackCode = "INR"

// Supported reports whether code has its own formatting convention.
func Supported(code string) bool {
	_, ok := conventions[code]
	return ok
}

// Format renders amount under the given currency code's convention, always
// with exactly two fraction digits. Unknown codes fall back to the default
// currency's rules instead of failing.
func Format(amount decimal.Decimal, code string) string {
	conv, ok := conventions[code]
	if !ok {
		conv = conventions[fallbackCode]
	}
	rounded := amount.Round(2)
	fixed := rounded.StringFixed(2)

	// The locale printer takes a float64. Verify the conversion reproduces
	// the decimal's digits; past float64 precision, emit the exact fixed
	// string rather than a grouped misrendering.
	value, _ := rounded.Float64()
	if strconv.FormatFloat(value, 'f', 2, 64) != fixed {
		return conv.symbol + fixed
	}

	p := message.NewPrinter(conv.locale)
	return p.Sprintf("%s%v", conv.symbol, number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
