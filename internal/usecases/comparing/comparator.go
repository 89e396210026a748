package comparing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Compare monta uma linha por produto selecionado, na ordem da seleção.
// Sem base anterior (total anterior zero) a variação percentual é zero.
func Compare(current, prior map[string]decimal.Decimal, keys []string, names map[string]string, codes map[string]string) []domain.ComparisonRow {
	rows := make([]domain.ComparisonRow, 0, len(keys))
	for _, key := range keys {
		totalCurrent := current[key]
		totalPrior := prior[key]

		pct, ok := percentChange(totalCurrent, totalPrior)
		if !ok {
			pct = decimal.Zero
		}

		name, exists := names[key]
		if !exists {
			name = key
		}

		rows = append(rows, domain.ComparisonRow{
			ProductKey:   key,
			DisplayName:  name,
			ProductCode:  codes[key],
			TotalCurrent: totalCurrent,
			TotalPrior:   totalPrior,
			Difference:   totalCurrent.Sub(totalPrior),
			PctVariation: pct,
		})
	}

	return rows
}

// percentChange calcula (value / base - 1) * 100; ok é falso quando a base é zero
func percentChange(value, base decimal.Decimal) (decimal.Decimal, bool) {
	if base.IsZero() {
		return decimal.Zero, false
	}
	return value.Div(base).Sub(decimal.NewFromInt(1)).Mul(hundred), true
}
