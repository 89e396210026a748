package comparing

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// GroupKeyFunc define a chave de agrupamento de um registro
type GroupKeyFunc func(domain.SalesRecord) string

// Bucketer define o agrupamento de calendário de um registro
type Bucketer func(domain.SalesRecord) domain.Bucket

// ByProduct agrupa pela chave do produto
func ByProduct(record domain.SalesRecord) string {
	return record.ProductKey()
}

// ByBrand agrupa pela marca
func ByBrand(record domain.SalesRecord) string {
	return record.BrandDescription
}

// ByYear agrupa pelo ano da venda
func ByYear(record domain.SalesRecord) string {
	return strconv.Itoa(record.Date.Year())
}

// DayOfYearBucket agrupa por mês e dia, ignorando o ano.
// O ordinal garante a ordem cronológica independente do rótulo.
func DayOfYearBucket(record domain.SalesRecord) domain.Bucket {
	month, day := record.Date.Month(), record.Date.Day()
	return domain.Bucket{
		Label:   fmt.Sprintf("%02d-%02d", int(month), day),
		Ordinal: int(month)*100 + day,
	}
}

// YearMonthBucket agrupa por ano e mês
func YearMonthBucket(record domain.SalesRecord) domain.Bucket {
	year, month := record.Date.Year(), record.Date.Month()
	return domain.Bucket{
		Label:   fmt.Sprintf("%04d-%02d", year, int(month)),
		Ordinal: year*100 + int(month),
	}
}

// WindowTotals soma o valor por produto. Todo produto selecionado aparece no
// resultado, com total zero quando não há registros na janela.
func WindowTotals(records []domain.SalesRecord, keys []string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(keys))
	for _, key := range keys {
		totals[key] = decimal.Zero
	}

	for _, record := range records {
		key := record.ProductKey()
		total, selected := totals[key]
		if !selected {
			continue
		}
		totals[key] = total.Add(record.Amount)
	}

	return totals
}

// BucketTotals soma o valor por grupo e por agrupamento de calendário.
// Cada série sai em ordem cronológica e agrupamentos sem registros são omitidos.
func BucketTotals(records []domain.SalesRecord, group GroupKeyFunc, bucketer Bucketer) map[string][]domain.BucketTotal {
	type accumulator struct {
		order  []int
		totals map[int]*domain.BucketTotal
	}

	accumulators := make(map[string]*accumulator)
	for _, record := range records {
		key := group(record)
		acc, exists := accumulators[key]
		if !exists {
			acc = &accumulator{totals: make(map[int]*domain.BucketTotal)}
			accumulators[key] = acc
		}

		bucket := bucketer(record)
		total, exists := acc.totals[bucket.Ordinal]
		if !exists {
			total = &domain.BucketTotal{Label: bucket.Label, Ordinal: bucket.Ordinal, Total: decimal.Zero}
			acc.totals[bucket.Ordinal] = total
			acc.order = append(acc.order, bucket.Ordinal)
		}
		total.Total = total.Total.Add(record.Amount)
	}

	series := make(map[string][]domain.BucketTotal, len(accumulators))
	for key, acc := range accumulators {
		sort.Ints(acc.order)
		points := make([]domain.BucketTotal, 0, len(acc.order))
		for _, ordinal := range acc.order {
			points = append(points, *acc.totals[ordinal])
		}
		series[key] = points
	}

	return series
}
