package domain

import "github.com/shopspring/decimal"

// Bucket identifica um agrupamento de calendário.
// Ordinal define a ordem cronológica; Label é apenas para exibição.
type Bucket struct {
	Label   string
	Ordinal int
}

// BucketTotal é o total de um agrupamento de calendário
type BucketTotal struct {
	Label   string          `json:"label"`
	Ordinal int             `json:"-"`
	Total   decimal.Decimal `json:"total"`
}

// YearSeries é a série diária (mês-dia) de um ano
type YearSeries struct {
	Year   int           `json:"year"`
	Points []BucketTotal `json:"points"`
}

// DailySeries agrupa as séries anuais de um produto para o polígono de frequência
type DailySeries struct {
	ProductKey  string       `json:"product_key"`
	DisplayName string       `json:"display_name"`
	Years       []YearSeries `json:"years"`
}

// MonthWindow limita a análise mensal a um ano e a um mês máximo
type MonthWindow struct {
	TargetYear int `json:"target_year" mapstructure:"monthly_trend_target_year"`
	MaxMonth   int `json:"max_month" mapstructure:"monthly_trend_max_month"`
}

// MonthlyQuery são os filtros da visão mensal
type MonthlyQuery struct {
	Category string   `json:"category"`
	Brands   []string `json:"brands"`
	Months   []int    `json:"months"` // vazio = todos os meses da janela
}

// MonthlyPoint é o total de um mês. YoYPct é nulo no primeiro ponto da série.
type MonthlyPoint struct {
	Month  int              `json:"month"`
	Label  string           `json:"label"`
	Total  decimal.Decimal  `json:"total"`
	YoYPct *decimal.Decimal `json:"yoy_pct"`
}

// MonthlySeries é a série mensal de uma marca dentro de uma categoria
type MonthlySeries struct {
	Category string         `json:"category"`
	Brand    string         `json:"brand"`
	Year     int            `json:"year"`
	Points   []MonthlyPoint `json:"points"`
}
