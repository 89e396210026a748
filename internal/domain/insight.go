package domain

import (
	"fmt"
	"time"
)

// DateRange é um intervalo fechado de datas (inclusivo nas duas pontas)
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange cria um intervalo normalizando as datas para meia-noite UTC
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: TruncateDay(start), End: TruncateDay(end)}
}

// Contains informa se a data está dentro do intervalo
func (r DateRange) Contains(date time.Time) bool {
	day := TruncateDay(date)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Validate verifica se o início não é posterior ao fim
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}
	if r.Start.After(r.End) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}
	return nil
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
}

// Selection são os parâmetros resolvidos pela camada de apresentação
type Selection struct {
	ProductKeys  []string  `json:"selected_product_keys"`
	RangeCurrent DateRange `json:"range_current"`
	RangePrior   DateRange `json:"range_prior"`
}

// TruncateDay descarta a parte de horário, mantendo a data civil em UTC
func TruncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
