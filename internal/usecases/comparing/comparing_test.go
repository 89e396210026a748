package comparing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func record(row int, date time.Time, code, brand, category, amount string) domain.SalesRecord {
	return domain.SalesRecord{
		Row:              row,
		Date:             date,
		ProductCode:      code,
		BrandDescription: brand,
		DisplayName:      "Produto " + code + " - " + brand,
		Category:         category,
		Amount:           decimal.RequireFromString(amount),
	}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestFilterByRange(t *testing.T) {
	records := []domain.SalesRecord{
		record(0, day(2023, 9, 29), "A", "X", "C", "1"),
		record(1, day(2023, 9, 30), "A", "X", "C", "2"),
		record(2, day(2023, 9, 30), "B", "X", "C", "3"),
		record(3, day(2023, 9, 30), "C", "X", "C", "4"),
		record(4, day(2023, 10, 1), "A", "X", "C", "5"),
	}

	t.Run("Início igual ao fim - apenas o dia e os produtos selecionados", func(t *testing.T) {
		result := FilterByRange(records, []string{"A", "B"}, domain.DateRange{Start: day(2023, 9, 30), End: day(2023, 9, 30)})
		require.Len(t, result, 2)
		assert.Equal(t, 1, result[0].Row)
		assert.Equal(t, 2, result[1].Row)
	})

	t.Run("Limites inclusivos", func(t *testing.T) {
		result := FilterByRange(records, []string{"A"}, domain.DateRange{Start: day(2023, 9, 29), End: day(2023, 10, 1)})
		assert.Len(t, result, 3)
	})

	t.Run("Intervalo fora dos limites - vazio sem erro", func(t *testing.T) {
		result := FilterByRange(records, []string{"A"}, domain.DateRange{Start: day(2030, 1, 1), End: day(2030, 12, 31)})
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Datas com horário são comparadas pelo dia", func(t *testing.T) {
		end := time.Date(2023, 9, 30, 8, 0, 0, 0, time.UTC)
		result := FilterByRange(records, []string{"A"}, domain.DateRange{Start: day(2023, 9, 30), End: end})
		assert.Len(t, result, 1)
	})
}

func TestWindowTotals(t *testing.T) {
	records := []domain.SalesRecord{
		record(0, day(2023, 9, 30), "A", "X", "C", "100.10"),
		record(1, day(2023, 9, 30), "A", "X", "C", "-0.10"),
		record(2, day(2023, 9, 30), "Z", "X", "C", "999"),
	}

	totals := WindowTotals(records, []string{"A", "B"})

	require.Len(t, totals, 2)
	assert.True(t, totals["A"].Equal(dec("100")))
	total, ok := totals["B"]
	assert.True(t, ok, "produto selecionado sem vendas deve aparecer")
	assert.True(t, total.IsZero())
	_, ok = totals["Z"]
	assert.False(t, ok, "produto não selecionado não deve aparecer")
}

func TestBucketTotals_SparseAndChronological(t *testing.T) {
	records := []domain.SalesRecord{
		record(0, day(2023, 10, 1), "A", "X", "C", "5"),
		record(1, day(2023, 9, 30), "A", "X", "C", "2"),
		record(2, day(2023, 9, 30), "A", "X", "C", "3"),
		record(3, day(2023, 12, 25), "A", "X", "C", "7"),
	}

	series := BucketTotals(records, ByProduct, DayOfYearBucket)
	points := series["A"]

	require.Len(t, points, 3)
	assert.Equal(t, "09-30", points[0].Label)
	assert.True(t, points[0].Total.Equal(dec("5")))
	assert.Equal(t, "10-01", points[1].Label)
	assert.Equal(t, "12-25", points[2].Label)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		prior      string
		difference string
		pct        string
	}{
		{name: "Sem base anterior - variação zero", current: "150.00", prior: "0", difference: "150.00", pct: "0"},
		{name: "Crescimento de 20%", current: "120.00", prior: "100.00", difference: "20.00", pct: "20"},
		{name: "Queda de 40%", current: "90", prior: "150", difference: "-60", pct: "-40"},
		{name: "Base negativa (devoluções)", current: "50", prior: "-100", difference: "150", pct: "-150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Compare(
				map[string]decimal.Decimal{"A": dec(tt.current)},
				map[string]decimal.Decimal{"A": dec(tt.prior)},
				[]string{"A"},
				map[string]string{"A": "Leche - Lala"},
				map[string]string{"A": "A"},
			)

			require.Len(t, rows, 1)
			assert.Equal(t, "Leche - Lala", rows[0].DisplayName)
			assert.True(t, rows[0].Difference.Equal(dec(tt.difference)), "diferença %s", rows[0].Difference)
			assert.True(t, rows[0].PctVariation.Equal(dec(tt.pct)), "variação %s", rows[0].PctVariation)
		})
	}
}

func TestCompare_PreservesSelectionOrder(t *testing.T) {
	current := map[string]decimal.Decimal{"B": dec("1"), "A": dec("2"), "C": dec("3")}
	prior := map[string]decimal.Decimal{"B": dec("1"), "A": dec("2"), "C": dec("3")}

	rows := Compare(current, prior, []string{"C", "A", "B"}, map[string]string{}, map[string]string{})

	require.Len(t, rows, 3)
	assert.Equal(t, "C", rows[0].ProductKey)
	assert.Equal(t, "A", rows[1].ProductKey)
	assert.Equal(t, "B", rows[2].ProductKey)
	assert.Equal(t, "C", rows[0].DisplayName)
}

func TestDailyTrends(t *testing.T) {
	current := []domain.SalesRecord{
		record(0, day(2023, 10, 1), "A", "X", "C", "5"),
		record(1, day(2023, 9, 30), "A", "X", "C", "2"),
	}
	prior := []domain.SalesRecord{
		record(1, day(2023, 9, 30), "A", "X", "C", "2"), // mesma linha nas duas janelas
		record(2, day(2022, 10, 1), "A", "X", "C", "4"),
	}

	series := DailyTrends(current, prior, []string{"A", "B"}, map[string]string{"A": "Leche - Lala"})

	require.Len(t, series, 2)
	assert.Equal(t, "Leche - Lala", series[0].DisplayName)
	require.Len(t, series[0].Years, 2)

	assert.Equal(t, 2022, series[0].Years[0].Year)
	assert.Equal(t, 2023, series[0].Years[1].Year)

	points2023 := series[0].Years[1].Points
	require.Len(t, points2023, 2)
	assert.Equal(t, "09-30", points2023[0].Label)
	assert.True(t, points2023[0].Total.Equal(dec("2")), "linha repetida deve contar uma vez")
	assert.Equal(t, "10-01", points2023[1].Label)

	assert.Equal(t, "B", series[1].ProductKey)
	assert.Empty(t, series[1].Years)
}

func TestMonthlyTrends(t *testing.T) {
	window := domain.MonthWindow{TargetYear: 2024, MaxMonth: 5}
	records := []domain.SalesRecord{
		record(0, day(2024, 1, 10), "A", "Lala", "Lacteos", "60"),
		record(1, day(2024, 1, 20), "B", "Lala", "Lacteos", "40"),
		record(2, day(2024, 2, 5), "A", "Lala", "Lacteos", "150"),
		record(3, day(2024, 3, 1), "A", "Lala", "Lacteos", "90"),
		record(4, day(2024, 6, 1), "A", "Lala", "Lacteos", "1000"), // fora da janela
		record(5, day(2023, 2, 1), "A", "Lala", "Lacteos", "1000"), // outro ano
		record(6, day(2024, 2, 1), "A", "Danone", "Lacteos", "10"),
		record(7, day(2024, 2, 1), "A", "Lala", "Panaderia", "1000"), // outra categoria
	}

	t.Run("Variação sequencial mês a mês com primeiro ponto nulo", func(t *testing.T) {
		series, err := MonthlyTrends(records, domain.MonthlyQuery{Category: "Lacteos", Brands: []string{"Lala"}}, window)
		require.NoError(t, err)
		require.Len(t, series, 1)

		points := series[0].Points
		require.Len(t, points, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{points[0].Month, points[1].Month, points[2].Month})
		assert.Equal(t, "2024-01", points[0].Label)
		assert.True(t, points[0].Total.Equal(dec("100")))
		assert.Nil(t, points[0].YoYPct)
		require.NotNil(t, points[1].YoYPct)
		assert.True(t, points[1].YoYPct.Equal(dec("50")), "yoy %s", points[1].YoYPct)
		require.NotNil(t, points[2].YoYPct)
		assert.True(t, points[2].YoYPct.Equal(dec("-40")), "yoy %s", points[2].YoYPct)
	})

	t.Run("Sem marcas informadas - uma série por marca", func(t *testing.T) {
		series, err := MonthlyTrends(records, domain.MonthlyQuery{Category: "Lacteos"}, window)
		require.NoError(t, err)
		require.Len(t, series, 2)
		assert.Equal(t, "Danone", series[0].Brand)
		assert.Equal(t, "Lala", series[1].Brand)
	})

	t.Run("Meses explícitos restringem a série", func(t *testing.T) {
		series, err := MonthlyTrends(records, domain.MonthlyQuery{Category: "Lacteos", Brands: []string{"Lala"}, Months: []int{1, 3, 6}}, window)
		require.NoError(t, err)
		points := series[0].Points
		require.Len(t, points, 2)
		assert.Equal(t, 3, points[1].Month)
		assert.True(t, points[1].YoYPct.Equal(dec("-10")))
	})

	t.Run("Mês anterior zerado - variação nula", func(t *testing.T) {
		zeroed := []domain.SalesRecord{
			record(0, day(2024, 1, 3), "A", "Lala", "Lacteos", "25"),
			record(1, day(2024, 1, 9), "A", "Lala", "Lacteos", "-25"), // devolução
			record(2, day(2024, 2, 3), "A", "Lala", "Lacteos", "80"),
		}

		series, err := MonthlyTrends(zeroed, domain.MonthlyQuery{Category: "Lacteos"}, window)
		require.NoError(t, err)
		require.Len(t, series, 1)

		points := series[0].Points
		require.Len(t, points, 2)
		assert.True(t, points[0].Total.IsZero())
		assert.Nil(t, points[1].YoYPct)
	})

	t.Run("Sem registros - resultado vazio", func(t *testing.T) {
		_, err := MonthlyTrends(records, domain.MonthlyQuery{Category: "Carnes"}, window)
		assert.True(t, errors.Is(err, ErrEmptyResult))
	})

	t.Run("Janela inválida", func(t *testing.T) {
		_, err := MonthlyTrends(records, domain.MonthlyQuery{Category: "Lacteos"}, domain.MonthWindow{TargetYear: 2024, MaxMonth: 13})
		assert.True(t, errors.Is(err, ErrInvalidMonthWindow))

		code, ok := ErrorCode(err)
		assert.True(t, ok)
		assert.Equal(t, apiErrors.ErrInternalServer, code)
	})

	t.Run("Ano alvo ausente", func(t *testing.T) {
		_, err := MonthlyTrends(records, domain.MonthlyQuery{Category: "Lacteos"}, domain.MonthWindow{MaxMonth: 5})
		assert.True(t, errors.Is(err, ErrInvalidMonthWindow))
	})
}

func TestErrorCode_WithoutCode(t *testing.T) {
	_, ok := ErrorCode(&DataError{Err: ErrDateParse})
	assert.False(t, ok)

	_, ok = ErrorCode(errors.New("outro erro"))
	assert.False(t, ok)
}
