package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisplayNameSeparator separa descrição e marca no nome de exibição do produto
const DisplayNameSeparator = " - "

// FieldNames descreve os nomes das colunas da fonte de dados bruta.
// Os nomes são um contrato externo e não são renomeados fora da normalização.
type FieldNames struct {
	Date               string `mapstructure:"field_date"`
	ProductDescription string `mapstructure:"field_product_description"`
	Brand              string `mapstructure:"field_brand"`
	Amount             string `mapstructure:"field_amount"`
	ProductCode        string `mapstructure:"field_product_code"`
	Category           string `mapstructure:"field_category"`
}

// Required lista as colunas sem as quais a carga é abortada
func (f FieldNames) Required() []string {
	return []string{f.Date, f.ProductDescription, f.Brand, f.Amount}
}

// RawTable é a tabela carregada pelo adaptador de dados, antes da normalização
type RawTable struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn informa se a tabela possui a coluna informada
func (t RawTable) HasColumn(name string) bool {
	if name == "" {
		return false
	}
	for _, column := range t.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// SalesRecord representa uma linha normalizada de vendas por dia e produto
type SalesRecord struct {
	Row                int               `json:"row"` // índice da linha na tabela bruta
	Date               time.Time         `json:"date"`
	ProductCode        string            `json:"product_code,omitempty"`
	ProductDescription string            `json:"product_description"`
	BrandDescription   string            `json:"brand_description"`
	DisplayName        string            `json:"display_name"`
	Category           string            `json:"category,omitempty"`
	Amount             decimal.Decimal   `json:"amount"`
	Fields             map[string]string `json:"-"`
}

// ProductKey retorna a chave de agrupamento do produto.
// Sem código de produto, o nome de exibição é usado como chave.
func (r SalesRecord) ProductKey() string {
	if r.ProductCode != "" {
		return r.ProductCode
	}
	return r.DisplayName
}

// BuildDisplayName concatena descrição e marca
func BuildDisplayName(description, brand string) string {
	return description + DisplayNameSeparator + brand
}
