package cleaning

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	// numberPattern captures a signed decimal number possibly using comma
	// grouping or a comma decimal separator
	numberPattern = regexp.MustCompile(`-?\d+(?:[.,]\d+)*`)
	// currencyCodePattern matches recognized three-letter currency codes
	currencyCodePattern = regexp.MustCompile(`(?i)\b(usd|eur|gbp|jpy|cad|aud)\b`)
	// decimalCommaPattern matches a comma used as decimal separator
	decimalCommaPattern = regexp.MustCompile(`,\d{1,2}$`)
)

// symbolCurrencies maps currency symbols to ISO codes, in lookup order.
var symbolCurrencies = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
}

// ParsePrice extracts a numeric price and, where recognizable, a currency
// code from a raw value. Numeric inputs pass through with no currency.
// String inputs may carry a symbol ("$19.99"), a code ("USD 19.99"), comma
// grouping ("1,299.50"), or a comma decimal separator ("19,99"). Either
// result may be nil independently; negative values pass through unjudged.
func ParsePrice(raw any) (*float64, *string) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		f := v
		return &f, nil
	case int:
		f := float64(v)
		return &f, nil
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f, nil
		}
		return nil, nil
	case string:
		return parsePriceString(v)
	default:
		return nil, nil
	}
}

func parsePriceString(s string) (*float64, *string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	currency := extractCurrency(s)

	match := numberPattern.FindString(s)
	if match == "" {
		return nil, currency
	}

	value, err := strconv.ParseFloat(normalizeDecimal(match), 64)
	if err != nil {
		return nil, currency
	}
	return &value, currency
}

// extractCurrency finds the earliest recognized currency marker in s.
// Lookup is position-based so strings carrying several markers, like a
// listing with a converted price in parentheses, resolve the same way
// on every run.
func extractCurrency(s string) *string {
	best := -1
	var code string

	if loc := currencyCodePattern.FindStringIndex(s); loc != nil {
		best = loc[0]
		code = strings.ToUpper(s[loc[0]:loc[1]])
	}
	for _, sc := range symbolCurrencies {
		i := strings.Index(s, sc.symbol)
		if i >= 0 && (best == -1 || i < best) {
			best = i
			code = sc.code
		}
	}

	if best == -1 {
		return nil
	}
	return &code
}

// normalizeDecimal rewrites a matched numeric token to strconv form.
// Thousands grouping is dropped and a decimal comma becomes a dot:
// "1,299.50" → "1299.50", "1.299,00" → "1299.00", "19,99" → "19.99".
func normalizeDecimal(s string) string {
	lastComma := strings.LastIndex(s, ",")
	if lastComma == -1 {
		return s
	}
	lastDot := strings.LastIndex(s, ".")
	if lastDot > lastComma || !decimalCommaPattern.MatchString(s) {
		// dot decimal or pure grouping commas
		return strings.ReplaceAll(s, ",", "")
	}
	// comma decimal: drop grouping dots, convert the final comma
	s = strings.ReplaceAll(s, ".", "")
	i := strings.LastIndex(s, ",")
	return strings.ReplaceAll(s[:i], ",", "") + "." + s[i+1:]
}
