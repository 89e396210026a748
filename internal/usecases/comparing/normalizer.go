package comparing

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
)

// Normalize valida o esquema da tabela bruta e produz o dataset normalizado.
// Linhas com data inválida são descartadas e apenas contadas. Valores
// monetários vazios contam como zero e valores não numéricos abortam a carga.
// A tabela de entrada não é alterada.
func Normalize(table domain.RawTable, fields domain.FieldNames) (*domain.Dataset, error) {
	for _, required := range fields.Required() {
		if !table.HasColumn(required) {
			return nil, NewSchemaError(required)
		}
	}

	dataset := &domain.Dataset{
		Fields:         fields,
		Columns:        append([]string(nil), table.Columns...),
		Records:        make([]domain.SalesRecord, 0, len(table.Rows)),
		HasProductCode: table.HasColumn(fields.ProductCode),
		HasCategory:    table.HasColumn(fields.Category),
	}
	dataset.Report.RowsRead = len(table.Rows)

	for i, row := range table.Rows {
		date, err := parseDate(row[fields.Date])
		if err != nil {
			dataset.Report.DroppedDateRows++
			logrus.WithFields(logrus.Fields{
				"row":   i + 1,
				"value": row[fields.Date],
			}).Debug("normalizer: linha descartada por data inválida")
			continue
		}

		// Célula vazia não soma nada, mas a linha continua valendo para o produto
		amount := decimal.Zero
		if strings.TrimSpace(row[fields.Amount]) == "" {
			dataset.Report.BlankAmountRows++
		} else if amount, err = utils.ParseCurrency(row[fields.Amount]); err != nil {
			return nil, NewAmountParseError(fields.Amount, i+1, row[fields.Amount])
		}

		description := strings.TrimSpace(row[fields.ProductDescription])
		brand := strings.TrimSpace(row[fields.Brand])

		record := domain.SalesRecord{
			Row:                i,
			Date:               date,
			ProductDescription: description,
			BrandDescription:   brand,
			DisplayName:        domain.BuildDisplayName(description, brand),
			Amount:             amount,
			Fields:             copyRow(row),
		}
		if dataset.HasProductCode {
			record.ProductCode = normalizeCode(row[fields.ProductCode])
		}
		if dataset.HasCategory {
			record.Category = strings.TrimSpace(row[fields.Category])
		}

		if dataset.Report.RowsKept == 0 || date.Before(dataset.Report.MinDate) {
			dataset.Report.MinDate = date
		}
		if dataset.Report.RowsKept == 0 || date.After(dataset.Report.MaxDate) {
			dataset.Report.MaxDate = date
		}
		dataset.Report.RowsKept++

		dataset.Records = append(dataset.Records, record)
	}

	if dataset.Report.DroppedDateRows > 0 {
		logrus.WithFields(logrus.Fields{
			"rows_read":         dataset.Report.RowsRead,
			"dropped_date_rows": dataset.Report.DroppedDateRows,
		}).Warn("normalizer: linhas descartadas por data inválida")
	}

	if dataset.Report.BlankAmountRows > 0 {
		logrus.WithField("blank_amount_rows", dataset.Report.BlankAmountRows).
			Warn("normalizer: linhas sem valor monetário contadas como zero")
	}

	if len(dataset.Records) == 0 {
		return nil, NewEmptyResultError("nenhuma linha com data válida")
	}

	return dataset, nil
}

// parseDate aceita os formatos comuns de data e descarta o horário
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &DataError{Err: ErrDateParse, Code: apiErrors.ErrInvalidFormat, Details: "data vazia"}
	}

	date, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, &DataError{Err: ErrDateParse, Code: apiErrors.ErrInvalidFormat, Details: err.Error()}
	}

	return domain.TruncateDay(date), nil
}

// normalizeCode remove espaços e o sufixo ".0" que planilhas adicionam a códigos numéricos
func normalizeCode(value string) string {
	code := strings.TrimSpace(value)
	if strings.HasSuffix(code, ".0") && isDigits(strings.TrimSuffix(code, ".0")) {
		code = strings.TrimSuffix(code, ".0")
	}
	return code
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func copyRow(row map[string]string) map[string]string {
	copied := make(map[string]string, len(row))
	for k, v := range row {
		copied[k] = v
	}
	return copied
}
