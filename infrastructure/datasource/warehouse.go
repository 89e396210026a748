package datasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-comparison-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// WarehouseLoader lê a tabela de vendas diárias do data warehouse.
// Apenas leitura: os valores são entregues como texto, igual a um CSV.
type WarehouseLoader struct {
	queryer postgres.Queryer
	table   string
	fields  domain.FieldNames
}

func NewWarehouseLoader(queryer postgres.Queryer, table string, fields domain.FieldNames) *WarehouseLoader {
	return &WarehouseLoader{
		queryer: queryer,
		table:   table,
		fields:  fields,
	}
}

func (l *WarehouseLoader) Name() string {
	return "warehouse"
}

func (l *WarehouseLoader) Load(ctx context.Context) (domain.RawTable, error) {
	query, args, err := l.buildQuery()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := l.queryer.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("erro ao ler as colunas: %w", err)
	}

	table := domain.RawTable{
		Columns: columns,
		Rows:    make([]map[string]string, 0),
	}

	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return domain.RawTable{}, fmt.Errorf("erro ao escanear linha: %w", err)
		}
		row := make(map[string]string, len(columns))
		for i, column := range columns {
			row[column] = values[i].String
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return domain.RawTable{}, fmt.Errorf("erro ao iterar linhas: %w", err)
	}

	return table, nil
}

// buildQuery seleciona apenas as colunas do contrato de campos
func (l *WarehouseLoader) buildQuery() (string, []any, error) {
	columns := make([]string, 0, 6)
	for _, name := range []string{
		l.fields.Date,
		l.fields.ProductCode,
		l.fields.ProductDescription,
		l.fields.Brand,
		l.fields.Category,
		l.fields.Amount,
	} {
		if name != "" {
			columns = append(columns, pq.QuoteIdentifier(name))
		}
	}

	return squirrel.
		Select(columns...).
		From(pq.QuoteIdentifier(l.table)).
		OrderBy(pq.QuoteIdentifier(l.fields.Date) + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
