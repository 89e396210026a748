package domain

import "github.com/shopspring/decimal"

// ComparisonRow é a linha da tabela comparativa de um produto.
// Os valores são mantidos brutos; a formatação ocorre apenas na apresentação.
type ComparisonRow struct {
	ProductKey   string          `json:"product_key"`
	DisplayName  string          `json:"display_name"`
	ProductCode  string          `json:"product_code,omitempty"`
	TotalCurrent decimal.Decimal `json:"total_current"`
	TotalPrior   decimal.Decimal `json:"total_prior"`
	Difference   decimal.Decimal `json:"difference"`
	PctVariation decimal.Decimal `json:"pct_variation"`
}

// ComparisonResult agrupa a tabela comparativa e os registros de cada janela
type ComparisonResult struct {
	Selection      Selection       `json:"selection"`
	Rows           []ComparisonRow `json:"rows"`
	Current        []SalesRecord   `json:"-"`
	Prior          []SalesRecord   `json:"-"`
	HasProductCode bool            `json:"has_product_code"`
}

// ExportBundle é a entrada do gerador de planilhas
type ExportBundle struct {
	Fields         FieldNames
	Columns        []string
	Current        []SalesRecord
	Prior          []SalesRecord
	Rows           []ComparisonRow
	HasProductCode bool
}
