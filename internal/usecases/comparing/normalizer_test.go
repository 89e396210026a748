package comparing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

var testFields = domain.FieldNames{
	Date:               "Dia DiaID",
	ProductDescription: "Plu DESC",
	Brand:              "Marca DESC",
	Amount:             "$ Ventas sin impuestos Totales",
	ProductCode:        "Plu PluCD",
	Category:           "Sublinea DESC",
}

var testColumns = []string{"Dia DiaID", "Plu PluCD", "Plu DESC", "Marca DESC", "Sublinea DESC", "$ Ventas sin impuestos Totales"}

func rawRow(date, code, description, brand, category, amount string) map[string]string {
	return map[string]string{
		"Dia DiaID":                      date,
		"Plu PluCD":                      code,
		"Plu DESC":                       description,
		"Marca DESC":                     brand,
		"Sublinea DESC":                  category,
		"$ Ventas sin impuestos Totales": amount,
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		table    domain.RawTable
		validate func(t *testing.T, dataset *domain.Dataset, err error)
	}{
		{
			name: "Tabela válida - deve gerar nome de exibição e chave pelo código",
			table: domain.RawTable{
				Columns: testColumns,
				Rows: []map[string]string{
					rawRow("2023-09-30", "1001", "Leche Entera", "Lala", "Lacteos", "150.00"),
					rawRow("2023-10-01 00:00:00", "1002.0", "Yogurt", "Danone", "Lacteos", "$1,234.56"),
				},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				require.NoError(t, err)
				require.Len(t, dataset.Records, 2)
				assert.True(t, dataset.HasProductCode)
				assert.True(t, dataset.HasCategory)

				first := dataset.Records[0]
				assert.Equal(t, "Leche Entera - Lala", first.DisplayName)
				assert.Equal(t, "1001", first.ProductKey())
				assert.Equal(t, time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC), first.Date)
				assert.Equal(t, "Lacteos", first.Category)

				second := dataset.Records[1]
				assert.Equal(t, "1002", second.ProductKey())
				assert.True(t, second.Amount.Equal(decimal.RequireFromString("1234.56")))
				assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), second.Date)

				assert.Equal(t, 2, dataset.Report.RowsKept)
				assert.Equal(t, time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC), dataset.Report.MinDate)
				assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), dataset.Report.MaxDate)
			},
		},
		{
			name: "Datas inválidas - linhas descartadas e contadas",
			table: domain.RawTable{
				Columns: testColumns,
				Rows: []map[string]string{
					rawRow("2023-09-30", "1001", "Leche", "Lala", "Lacteos", "10"),
					rawRow("not a date", "1001", "Leche", "Lala", "Lacteos", "10"),
					rawRow("", "1001", "Leche", "Lala", "Lacteos", "10"),
				},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				require.NoError(t, err)
				assert.Len(t, dataset.Records, 1)
				assert.Equal(t, 3, dataset.Report.RowsRead)
				assert.Equal(t, 2, dataset.Report.DroppedDateRows)
			},
		},
		{
			name: "Campo de data ausente - erro de esquema com o nome do campo",
			table: domain.RawTable{
				Columns: []string{"Plu DESC", "Marca DESC", "$ Ventas sin impuestos Totales"},
				Rows:    []map[string]string{},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				require.Error(t, err)
				assert.Nil(t, dataset)
				assert.True(t, errors.Is(err, ErrSchema))
				assert.Contains(t, err.Error(), "Dia DiaID")
				assert.True(t, IsFatalDataError(err))
			},
		},
		{
			name: "Campo de descrição ausente - erro de esquema",
			table: domain.RawTable{
				Columns: []string{"Dia DiaID", "Marca DESC", "$ Ventas sin impuestos Totales"},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				var dataErr *DataError
				require.True(t, errors.As(err, &dataErr))
				assert.Equal(t, "Plu DESC", dataErr.Field)
			},
		},
		{
			name: "Valor monetário inválido - erro fatal, não zerado",
			table: domain.RawTable{
				Columns: testColumns,
				Rows: []map[string]string{
					rawRow("2023-09-30", "1001", "Leche", "Lala", "Lacteos", "10"),
					rawRow("2023-09-30", "1001", "Leche", "Lala", "Lacteos", "diez"),
				},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				require.Error(t, err)
				assert.Nil(t, dataset)
				assert.True(t, errors.Is(err, ErrAmountParse))

				var dataErr *DataError
				require.True(t, errors.As(err, &dataErr))
				assert.Equal(t, 2, dataErr.Row)
			},
		},
		{
			name: "Valor monetário vazio - linha mantida com zero",
			table: domain.RawTable{
				Columns: testColumns,
				Rows: []map[string]string{
					rawRow("2023-09-30", "1001", "Leche", "Lala", "Lacteos", "10"),
					rawRow("2023-10-01", "1001", "Leche", "Lala", "Lacteos", "  "),
				},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				require.NoError(t, err)
				require.Len(t, dataset.Records, 2)
				assert.True(t, dataset.Records[1].Amount.IsZero())
				assert.Equal(t, 1, dataset.Report.BlankAmountRows)
				assert.Equal(t, 2, dataset.Report.RowsKept)
			},
		},
		{
			name: "Nenhuma linha válida - resultado vazio",
			table: domain.RawTable{
				Columns: testColumns,
				Rows: []map[string]string{
					rawRow("??", "1001", "Leche", "Lala", "Lacteos", "10"),
				},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				assert.Nil(t, dataset)
				assert.True(t, errors.Is(err, ErrEmptyResult))
				assert.False(t, IsFatalDataError(err))
			},
		},
		{
			name: "Sem coluna de código - nome de exibição vira a chave",
			table: domain.RawTable{
				Columns: []string{"Dia DiaID", "Plu DESC", "Marca DESC", "$ Ventas sin impuestos Totales"},
				Rows: []map[string]string{
					{"Dia DiaID": "2024-01-05", "Plu DESC": "Pan", "Marca DESC": "Bimbo", "$ Ventas sin impuestos Totales": "-5.50"},
				},
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				require.NoError(t, err)
				assert.False(t, dataset.HasProductCode)
				assert.Equal(t, "Pan - Bimbo", dataset.Records[0].ProductKey())
				assert.True(t, dataset.Records[0].Amount.Equal(decimal.RequireFromString("-5.5")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset, err := Normalize(tt.table, testFields)
			tt.validate(t, dataset, err)
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	table := domain.RawTable{
		Columns: testColumns,
		Rows: []map[string]string{
			rawRow("09/30/2023", "1001", " Leche ", "Lala", "Lacteos", "$10.00"),
		},
	}

	_, err := Normalize(table, testFields)
	require.NoError(t, err)
	assert.Equal(t, "09/30/2023", table.Rows[0]["Dia DiaID"])
	assert.Equal(t, " Leche ", table.Rows[0]["Plu DESC"])
}

func TestNormalize_Idempotent(t *testing.T) {
	table := domain.RawTable{
		Columns: testColumns,
		Rows: []map[string]string{
			rawRow("09/30/2023", "1001", "Leche", "Lala", "Lacteos", "$1,010.00"),
			rawRow("bad", "1001", "Leche", "Lala", "Lacteos", "1"),
			rawRow("2023-10-01", "1002", "Yogurt", "Danone", "Lacteos", "-3.25"),
		},
	}

	first, err := Normalize(table, testFields)
	require.NoError(t, err)

	second, err := Normalize(first.Table(), testFields)
	require.NoError(t, err)

	require.Equal(t, len(first.Records), len(second.Records))
	assert.Equal(t, 0, second.Report.DroppedDateRows)
	for i := range first.Records {
		a, b := first.Records[i], second.Records[i]
		assert.Equal(t, a.Date, b.Date)
		assert.Equal(t, a.ProductKey(), b.ProductKey())
		assert.Equal(t, a.DisplayName, b.DisplayName)
		assert.Equal(t, a.Category, b.Category)
		assert.True(t, a.Amount.Equal(b.Amount))
	}
}

func TestNormalize_EveryRecordValid(t *testing.T) {
	table := domain.RawTable{
		Columns: testColumns,
		Rows: []map[string]string{
			rawRow("2023-01-01", "1", "", "", "", "1"),
			rawRow("2023-01-02", "", "Arroz", "Verde Valle", "Granos", "2"),
			rawRow("junk", "3", "Frijol", "Isadora", "Granos", "3"),
		},
	}

	dataset, err := Normalize(table, testFields)
	require.NoError(t, err)
	for _, record := range dataset.Records {
		assert.False(t, record.Date.IsZero())
		assert.NotEmpty(t, record.DisplayName)
		assert.NotEmpty(t, record.ProductKey())
	}
}
