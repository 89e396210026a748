package domain

import (
	"sort"
	"time"
)

// NormalizationReport resume o resultado da normalização de uma tabela
type NormalizationReport struct {
	RowsRead        int       `json:"rows_read"`
	RowsKept        int       `json:"rows_kept"`
	DroppedDateRows int       `json:"dropped_date_rows"`
	BlankAmountRows int       `json:"blank_amount_rows"` // Mantidas com valor zero
	MinDate         time.Time `json:"min_date"`
	MaxDate         time.Time `json:"max_date"`
}

// Dataset é o conjunto normalizado e imutável de registros de vendas
type Dataset struct {
	Fields         FieldNames          `json:"-"`
	Columns        []string            `json:"columns"`
	Records        []SalesRecord       `json:"-"`
	HasProductCode bool                `json:"has_product_code"`
	HasCategory    bool                `json:"has_category"`
	Report         NormalizationReport `json:"report"`
}

// Clone cria uma cópia independente do dataset para uso isolado em uma sessão
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}

	clone := *d
	clone.Columns = append([]string(nil), d.Columns...)
	clone.Records = make([]SalesRecord, len(d.Records))
	for i, record := range d.Records {
		fields := make(map[string]string, len(record.Fields))
		for k, v := range record.Fields {
			fields[k] = v
		}
		record.Fields = fields
		clone.Records[i] = record
	}

	return &clone
}

// Table devolve o dataset como tabela bruta, com datas no formato ISO.
// Normalizar o resultado produz o mesmo dataset.
func (d *Dataset) Table() RawTable {
	rows := make([]map[string]string, 0, len(d.Records))
	for _, record := range d.Records {
		row := make(map[string]string, len(record.Fields))
		for k, v := range record.Fields {
			row[k] = v
		}
		row[d.Fields.Date] = record.Date.Format(time.DateOnly)
		rows = append(rows, row)
	}

	return RawTable{
		Columns: append([]string(nil), d.Columns...),
		Rows:    rows,
	}
}

// DisplayNames mapeia chave de produto para nome de exibição.
// Quando a mesma chave aparece com nomes diferentes, prevalece o último.
func (d *Dataset) DisplayNames() map[string]string {
	names := make(map[string]string)
	for _, record := range d.Records {
		names[record.ProductKey()] = record.DisplayName
	}
	return names
}

// Products lista os produtos disponíveis para seleção, ordenados pela chave
func (d *Dataset) Products() []ProductOption {
	names := d.DisplayNames()
	codes := make(map[string]string, len(names))
	for _, record := range d.Records {
		codes[record.ProductKey()] = record.ProductCode
	}

	options := make([]ProductOption, 0, len(names))
	for key, name := range names {
		options = append(options, ProductOption{
			Key:         key,
			ProductCode: codes[key],
			DisplayName: name,
			Label:       productLabel(key, codes[key], name),
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Key < options[j].Key
	})

	return options
}

// Categories agrupa as marcas disponíveis por categoria, em ordem alfabética
func (d *Dataset) Categories() []CategoryOption {
	brandsByCategory := make(map[string]map[string]bool)
	for _, record := range d.Records {
		if record.Category == "" {
			continue
		}
		brands, ok := brandsByCategory[record.Category]
		if !ok {
			brands = make(map[string]bool)
			brandsByCategory[record.Category] = brands
		}
		brands[record.BrandDescription] = true
	}

	options := make([]CategoryOption, 0, len(brandsByCategory))
	for category, brands := range brandsByCategory {
		list := make([]string, 0, len(brands))
		for brand := range brands {
			list = append(list, brand)
		}
		sort.Strings(list)
		options = append(options, CategoryOption{Category: category, Brands: list})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Category < options[j].Category
	})

	return options
}

// DateBounds retorna a menor e a maior data entre os registros dos produtos informados
func (d *Dataset) DateBounds(keys []string) (time.Time, time.Time, bool) {
	selected := make(map[string]bool, len(keys))
	for _, key := range keys {
		selected[key] = true
	}

	var minDate, maxDate time.Time
	found := false
	for _, record := range d.Records {
		if !selected[record.ProductKey()] {
			continue
		}
		if !found || record.Date.Before(minDate) {
			minDate = record.Date
		}
		if !found || record.Date.After(maxDate) {
			maxDate = record.Date
		}
		found = true
	}

	return minDate, maxDate, found
}

func productLabel(key, code, name string) string {
	if code == "" {
		return name
	}
	return key + DisplayNameSeparator + name
}
