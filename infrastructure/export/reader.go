package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// ComparisonEntry é uma linha lida de volta da planilha comparativa
type ComparisonEntry struct {
	DisplayName  string
	ProductCode  string
	TotalCurrent decimal.Decimal
	TotalPrior   decimal.Decimal
	Difference   decimal.Decimal
	PctVariation decimal.Decimal
}

// ReadComparison lê a planilha comparativa de um arquivo exportado,
// convertendo os textos formatados de volta para decimal.
func ReadComparison(r io.Reader, productCodeColumn string) ([]ComparisonEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("export: erro ao abrir arquivo: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetComparison)
	if err != nil {
		return nil, fmt.Errorf("export: erro ao ler planilha %q: %w", SheetComparison, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("export: planilha %q vazia", SheetComparison)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	for _, required := range []string{ColumnProduct, ColumnTotalCurrent, ColumnTotalPrior, ColumnDifference, ColumnPctVariation} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("export: coluna %q ausente", required)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	entries := make([]ComparisonEntry, 0, len(rows)-1)
	for n, row := range rows[1:] {
		entry := ComparisonEntry{
			DisplayName: cell(row, ColumnProduct),
			ProductCode: cell(row, productCodeColumn),
		}

		targets := []struct {
			column string
			dest   *decimal.Decimal
		}{
			{ColumnTotalCurrent, &entry.TotalCurrent},
			{ColumnTotalPrior, &entry.TotalPrior},
			{ColumnDifference, &entry.Difference},
			{ColumnPctVariation, &entry.PctVariation},
		}
		for _, target := range targets {
			value, err := utils.ParseCurrency(cell(row, target.column))
			if err != nil {
				return nil, fmt.Errorf("export: linha %d, coluna %q: %w", n+2, target.column, err)
			}
			*target.dest = value
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
