package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency formata um valor no padrão $#,##0.00
func FormatCurrency(value decimal.Decimal) string {
	return "$" + formatFixed(value)
}

// FormatPercent formata um percentual no padrão #,##0.00%
func FormatPercent(value decimal.Decimal) string {
	return formatFixed(value) + "%"
}

// formatFixed separa os milhares sem passar por float64
func formatFixed(value decimal.Decimal) string {
	rounded := value.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	intPart, fraction, _ := strings.Cut(rounded.StringFixed(2), ".")
	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return sign + rounded.StringFixed(2)
	}

	return sign + humanize.BigComma(whole) + "." + fraction
}

// ParseCurrency converte textos como "$1,234.56", "-20" ou "12.5%" em decimal
func ParseCurrency(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor numérico inválido %q: %w", value, err)
	}

	return amount, nil
}
