package export

import (
	"fmt"
	"io"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// Nomes das planilhas exportadas, nesta ordem
const (
	SheetCurrent    = "Fecha Actual"
	SheetPrior      = "Fecha Anterior"
	SheetComparison = "Comparación"

	FileName    = "comparacion_ventas.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Colunas da planilha comparativa
const (
	ColumnProduct      = "Producto"
	ColumnTotalCurrent = "Total Fecha Actual"
	ColumnTotalPrior   = "Total Fecha Anterior"
	ColumnDifference   = "Diferencia"
	ColumnPctVariation = "% Variación"
)

// Exporter gera a planilha de comparação
type Exporter interface {
	Write(w io.Writer, bundle domain.ExportBundle) error
}

type XLSXExporter struct{}

func NewExporter() Exporter {
	return &XLSXExporter{}
}

// Write grava as três planilhas no writer informado
func (e *XLSXExporter) Write(w io.Writer, bundle domain.ExportBundle) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("export: erro ao criar estilo do cabeçalho: %w", err)
	}

	// A planilha padrão vira a primeira aba
	if err := f.SetSheetName(f.GetSheetName(0), SheetCurrent); err != nil {
		return fmt.Errorf("export: erro ao renomear planilha: %w", err)
	}
	if _, err := f.NewSheet(SheetPrior); err != nil {
		return fmt.Errorf("export: erro ao criar planilha %q: %w", SheetPrior, err)
	}
	if _, err := f.NewSheet(SheetComparison); err != nil {
		return fmt.Errorf("export: erro ao criar planilha %q: %w", SheetComparison, err)
	}

	if err := writeRecords(f, SheetCurrent, bundle, bundle.Current, headerStyle); err != nil {
		return err
	}
	if err := writeRecords(f, SheetPrior, bundle, bundle.Prior, headerStyle); err != nil {
		return err
	}
	if err := writeComparison(f, bundle, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: erro ao gravar arquivo: %w", err)
	}
	return nil
}

// ComparisonHeader retorna as colunas da planilha comparativa na ordem canônica
func ComparisonHeader(fields domain.FieldNames, hasProductCode bool) []string {
	header := []string{ColumnProduct}
	if hasProductCode {
		header = append(header, fields.ProductCode)
	}
	return append(header, ColumnTotalCurrent, ColumnTotalPrior, ColumnDifference, ColumnPctVariation)
}

func writeRecords(f *excelize.File, sheet string, bundle domain.ExportBundle, records []domain.SalesRecord, headerStyle int) error {
	if err := writeRow(f, sheet, 1, toAny(bundle.Columns)); err != nil {
		return err
	}
	if err := styleHeader(f, sheet, len(bundle.Columns), headerStyle); err != nil {
		return err
	}

	for i, record := range records {
		values := make([]any, 0, len(bundle.Columns))
		for _, column := range bundle.Columns {
			switch column {
			case bundle.Fields.Date:
				values = append(values, record.Date.Format("2006-01-02"))
			case bundle.Fields.Amount:
				values = append(values, record.Amount.InexactFloat64())
			default:
				values = append(values, record.Fields[column])
			}
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	return nil
}

func writeComparison(f *excelize.File, bundle domain.ExportBundle, headerStyle int) error {
	header := ComparisonHeader(bundle.Fields, bundle.HasProductCode)
	if err := writeRow(f, SheetComparison, 1, toAny(header)); err != nil {
		return err
	}
	if err := styleHeader(f, SheetComparison, len(header), headerStyle); err != nil {
		return err
	}

	for i, row := range bundle.Rows {
		values := []any{row.DisplayName}
		if bundle.HasProductCode {
			values = append(values, row.ProductCode)
		}
		values = append(values,
			utils.FormatCurrency(row.TotalCurrent),
			utils.FormatCurrency(row.TotalPrior),
			utils.FormatCurrency(row.Difference),
			utils.FormatPercent(row.PctVariation),
		)
		if err := writeRow(f, SheetComparison, i+2, values); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetComparison, "A", "A", 40)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: célula inválida na linha %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: erro ao escrever linha %d de %q: %w", row, sheet, err)
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, columns int, style int) error {
	if columns == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
