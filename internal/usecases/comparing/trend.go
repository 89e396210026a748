package comparing

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// DailyTrends monta, por produto, as séries mês-dia de cada ano presente na
// união das duas janelas. Um registro presente nas duas janelas conta uma vez.
func DailyTrends(current, prior []domain.SalesRecord, keys []string, names map[string]string) []domain.DailySeries {
	combined := unionByRow(current, prior)
	byProduct := make(map[string][]domain.SalesRecord, len(keys))
	for _, record := range combined {
		key := record.ProductKey()
		byProduct[key] = append(byProduct[key], record)
	}

	result := make([]domain.DailySeries, 0, len(keys))
	for _, key := range keys {
		name, exists := names[key]
		if !exists {
			name = key
		}

		series := domain.DailySeries{
			ProductKey:  key,
			DisplayName: name,
			Years:       make([]domain.YearSeries, 0),
		}

		for yearLabel, points := range BucketTotals(byProduct[key], ByYear, DayOfYearBucket) {
			year, err := strconv.Atoi(yearLabel)
			if err != nil {
				continue
			}
			series.Years = append(series.Years, domain.YearSeries{Year: year, Points: points})
		}
		sort.Slice(series.Years, func(i, j int) bool {
			return series.Years[i].Year < series.Years[j].Year
		})

		result = append(result, series)
	}

	return result
}

// MonthlyTrends monta as séries mensais de cada marca da categoria dentro da
// janela configurada. A variação de cada ponto é calculada contra o ponto
// anterior da própria série (mês a mês), e é nula no primeiro ponto.
func MonthlyTrends(records []domain.SalesRecord, query domain.MonthlyQuery, window domain.MonthWindow) ([]domain.MonthlySeries, error) {
	if window.TargetYear <= 0 || window.MaxMonth < 1 || window.MaxMonth > 12 {
		return nil, NewInvalidMonthWindowError(window.TargetYear, window.MaxMonth)
	}

	months := make(map[int]bool)
	for _, month := range query.Months {
		if month >= 1 && month <= window.MaxMonth {
			months[month] = true
		}
	}
	if len(query.Months) == 0 {
		for month := 1; month <= window.MaxMonth; month++ {
			months[month] = true
		}
	}

	brands := keySet(query.Brands)

	filtered := make([]domain.SalesRecord, 0)
	for _, record := range records {
		if record.Category != query.Category {
			continue
		}
		if len(brands) > 0 && !brands[record.BrandDescription] {
			continue
		}
		if record.Date.Year() != window.TargetYear || !months[int(record.Date.Month())] {
			continue
		}
		filtered = append(filtered, record)
	}

	if len(filtered) == 0 {
		return nil, NewEmptyResultError(fmt.Sprintf("sem vendas para a categoria %q em %d", query.Category, window.TargetYear))
	}

	byBrand := BucketTotals(filtered, ByBrand, YearMonthBucket)

	brandOrder := make([]string, 0, len(byBrand))
	for brand := range byBrand {
		brandOrder = append(brandOrder, brand)
	}
	sort.Strings(brandOrder)

	result := make([]domain.MonthlySeries, 0, len(brandOrder))
	for _, brand := range brandOrder {
		buckets := byBrand[brand]
		points := make([]domain.MonthlyPoint, 0, len(buckets))
		for i, bucket := range buckets {
			point := domain.MonthlyPoint{
				Month: bucket.Ordinal % 100,
				Label: bucket.Label,
				Total: bucket.Total,
			}
			if i > 0 {
				if pct, ok := percentChange(bucket.Total, buckets[i-1].Total); ok {
					point.YoYPct = &pct
				}
			}
			points = append(points, point)
		}

		result = append(result, domain.MonthlySeries{
			Category: query.Category,
			Brand:    brand,
			Year:     window.TargetYear,
			Points:   points,
		})
	}

	return result, nil
}

// unionByRow junta as duas janelas sem repetir a mesma linha de origem
func unionByRow(current, prior []domain.SalesRecord) []domain.SalesRecord {
	seen := make(map[int]bool, len(current)+len(prior))
	combined := make([]domain.SalesRecord, 0, len(current)+len(prior))
	for _, records := range [][]domain.SalesRecord{current, prior} {
		for _, record := range records {
			if seen[record.Row] {
				continue
			}
			seen[record.Row] = true
			combined = append(combined, record)
		}
	}
	return combined
}
