package domain

// ProductOption representa um produto selecionável na interface
type ProductOption struct {
	Key         string `json:"key"`
	ProductCode string `json:"product_code,omitempty"`
	DisplayName string `json:"display_name"`
	Label       string `json:"label"` // "<código> - <nome>" ou apenas o nome
}

// CategoryOption lista as marcas de uma categoria (sublinea) para o filtro mensal
type CategoryOption struct {
	Category string   `json:"category"`
	Brands   []string `json:"brands"`
}
