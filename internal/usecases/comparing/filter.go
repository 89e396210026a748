package comparing

import "github.com/vfg2006/sales-comparison-api/internal/domain"

// FilterByRange retorna os registros dos produtos selecionados cuja data está
// no intervalo fechado informado. Datas fora dos limites do dataset apenas
// resultam em um subconjunto vazio.
func FilterByRange(records []domain.SalesRecord, keys []string, dateRange domain.DateRange) []domain.SalesRecord {
	selected := keySet(keys)
	dateRange = domain.NewDateRange(dateRange.Start, dateRange.End)

	filtered := make([]domain.SalesRecord, 0)
	for _, record := range records {
		if !selected[record.ProductKey()] {
			continue
		}
		if !dateRange.Contains(record.Date) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, key := range keys {
		set[key] = true
	}
	return set
}
