package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice_NumericPassThrough(t *testing.T) {
	price, currency := ParsePrice(19.5)
	require.NotNil(t, price)
	assert.Equal(t, 19.5, *price)
	assert.Nil(t, currency)
}

func TestParsePrice_DollarSymbol(t *testing.T) {
	price, currency := ParsePrice("$19.99")
	require.NotNil(t, price)
	assert.Equal(t, 19.99, *price)
	require.NotNil(t, currency)
	assert.Equal(t, "USD", *currency)
}

func TestParsePrice_EuroSymbol(t *testing.T) {
	price, currency := ParsePrice("€7,50")
	require.NotNil(t, price)
	assert.Equal(t, 7.5, *price)
	require.NotNil(t, currency)
	assert.Equal(t, "EUR", *currency)
}

func TestParsePrice_CurrencyCodePrefix(t *testing.T) {
	price, currency := ParsePrice("USD 10.50")
	require.NotNil(t, price)
	assert.Equal(t, 10.5, *price)
	require.NotNil(t, currency)
	assert.Equal(t, "USD", *currency)
}

func TestParsePrice_LowercaseCode(t *testing.T) {
	_, currency := ParsePrice("eur 12")
	require.NotNil(t, currency)
	assert.Equal(t, "EUR", *currency)
}

func TestParsePrice_CommaGrouping(t *testing.T) {
	price, _ := ParsePrice("$1,299.50")
	require.NotNil(t, price)
	assert.Equal(t, 1299.5, *price)
}

func TestParsePrice_GroupingWithoutDecimal(t *testing.T) {
	price, _ := ParsePrice("1,200")
	require.NotNil(t, price)
	assert.Equal(t, 1200.0, *price)
}

func TestParsePrice_NegativePassesThrough(t *testing.T) {
	price, _ := ParsePrice("-5.00")
	require.NotNil(t, price)
	assert.Equal(t, -5.0, *price)
}

func TestParsePrice_MultipleMarkersUseEarliest(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"€44.99 ($49.99)", "EUR"},
		{"$10 (approx. €9.20)", "USD"},
		{"£3 USD", "GBP"},
		{"USD 5 (€4.60)", "USD"},
	}

	for _, tt := range tests {
		// Repeat to catch any ordering instability in the lookup.
		for i := 0; i < 10; i++ {
			_, currency := ParsePrice(tt.raw)
			require.NotNil(t, currency, "raw %q", tt.raw)
			assert.Equal(t, tt.want, *currency, "raw %q", tt.raw)
		}
	}
}

func TestParsePrice_CurrencyWithoutNumber(t *testing.T) {
	price, currency := ParsePrice("USD call for price")
	assert.Nil(t, price)
	require.NotNil(t, currency)
	assert.Equal(t, "USD", *currency)
}

func TestParsePrice_Unparseable(t *testing.T) {
	for _, raw := range []any{nil, "", "free", false, []any{"1"}, map[string]any{}} {
		price, currency := ParsePrice(raw)
		assert.Nil(t, price, "raw %v", raw)
		assert.Nil(t, currency, "raw %v", raw)
	}
}
