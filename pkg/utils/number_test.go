package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		expected string
	}{
		{name: "milhar com centavos", value: decimal.RequireFromString("1234.5"), expected: "$1,234.50"},
		{name: "zero", value: decimal.Zero, expected: "$0.00"},
		{name: "negativo", value: decimal.RequireFromString("-20"), expected: "$-20.00"},
		{name: "milhões", value: decimal.RequireFromString("1250000.25"), expected: "$1,250,000.25"},
		{name: "centavos em valores altos", value: decimal.RequireFromString("100000000000000000.01"), expected: "$100,000,000,000,000,000.01"},
		{name: "acima de int64", value: decimal.RequireFromString("12345678901234567890123.45"), expected: "$12,345,678,901,234,567,890,123.45"},
		{name: "negativo menor que um", value: decimal.RequireFromString("-0.5"), expected: "$-0.50"},
		{name: "arredondado para zero", value: decimal.RequireFromString("-0.001"), expected: "$0.00"},
		{name: "arredonda centavos", value: decimal.RequireFromString("2.345"), expected: "$2.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "20.00%", FormatPercent(decimal.NewFromInt(20)))
	assert.Equal(t, "-40.00%", FormatPercent(decimal.NewFromInt(-40)))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
	assert.Equal(t, "1,234,567.89%", FormatPercent(decimal.RequireFromString("1234567.891")))
}

func TestParseCurrency(t *testing.T) {
	value, err := ParseCurrency("$1,234.56")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("1234.56")))

	value, err = ParseCurrency("$-20.00")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(-20)))

	value, err = ParseCurrency("12.50%")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("12.5")))

	_, err = ParseCurrency("abc")
	assert.Error(t, err)

	_, err = ParseCurrency("  ")
	assert.Error(t, err)
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, value := range []string{"98765.43", "100000000000000000.01", "-1234567.89"} {
		original := decimal.RequireFromString(value)
		parsed, err := ParseCurrency(FormatCurrency(original))
		require.NoError(t, err)
		assert.True(t, original.Equal(parsed), "valor %s", value)
	}
}
