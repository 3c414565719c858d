package belboard

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type currencyFormat struct {
	symbol   string
	decimals int
}

// Display formats per supported order currency. Unknown currencies render
// with the USD format.
var currencyFormats = map[string]currencyFormat{
	"USD": {symbol: "USD", decimals: 2},
	"EUR": {symbol: "EUR", decimals: 2},
	"GBP": {symbol: "GBP", decimals: 2},
	"JPY": {symbol: "JPY", decimals: 0},
	"KRW": {symbol: "KRW", decimals: 0},
	"AUD": {symbol: "AUD", decimals: 2},
}

// FormatMoney renders a dollar amount with thousands grouping, dropping
// the fraction for whole amounts ($6,500 rather than $6,500.00).
func FormatMoney(amount float64) string {
	if amount == math.Trunc(amount) {
		return "$" + groupThousands(fmt.Sprintf("%.0f", amount))
	}
	return "$" + groupThousands(fmt.Sprintf("%.2f", amount))
}

// FormatCurrency renders an amount with the display rules for the given
// currency code (symbol first, per-currency decimal count).
func FormatCurrency(amount float64, currency string) string {
	cfg, ok := currencyFormats[currency]
	if !ok {
		cfg = currencyFormats["USD"]
	}
	value := groupThousands(fmt.Sprintf("%.*f", cfg.decimals, amount))
	return cfg.symbol + " " + value
}

// FormatPercent renders a 0..1 ratio as a percentage with one decimal.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// FormatCount renders an integer with thousands grouping.
func FormatCount(n int) string {
	return groupThousands(fmt.Sprintf("%d", n))
}

// ParseDate parses the portal's YYYY-MM-DD date strings; the zero time and
// false are returned for empty or malformed input.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func groupThousands(value string) string {
	sign := ""
	if strings.HasPrefix(value, "-") {
		sign = "-"
		value = value[1:]
	}
	intPart := value
	fracPart := ""
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		intPart = value[:idx]
		fracPart = value[idx:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
