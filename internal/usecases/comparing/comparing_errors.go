package comparing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
)

// Erros específicos do motor de comparação
var (
	// Campo obrigatório ausente na fonte de dados (fatal)
	ErrSchema = errors.New("campo obrigatório ausente")
	// Data inválida em uma linha (não fatal, a linha é descartada)
	ErrDateParse = errors.New("data inválida")
	// Nenhuma linha restou após a normalização ou o filtro (não fatal)
	ErrEmptyResult = errors.New("nenhum registro encontrado")
	// Valor monetário não numérico (fatal para a carga)
	ErrAmountParse = errors.New("valor monetário inválido")
	// Janela mensal mal configurada
	ErrInvalidMonthWindow = errors.New("janela mensal inválida")
)

// DataError é um erro com contexto adicional sobre a linha ou campo envolvido
type DataError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo envolvido (quando aplicável)
	Row     int    // Linha da tabela bruta, começando em 1 (0 quando não se aplica)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DataError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Field)
	}
	if e.Row > 0 {
		msg = fmt.Sprintf("%s (linha %d)", msg, e.Row)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *DataError) Unwrap() error {
	return e.Err
}

// NewSchemaError cria o erro de campo obrigatório ausente
func NewSchemaError(field string) *DataError {
	return &DataError{
		Err:   ErrSchema,
		Code:  apiErrors.ErrSchema,
		Field: field,
	}
}

// NewAmountParseError cria o erro de valor monetário inválido para uma linha
func NewAmountParseError(field string, row int, value string) *DataError {
	return &DataError{
		Err:     ErrAmountParse,
		Code:    apiErrors.ErrAmountParse,
		Field:   field,
		Row:     row,
		Details: fmt.Sprintf("valor %q", value),
	}
}

// NewEmptyResultError cria o erro de resultado vazio
func NewEmptyResultError(details string) *DataError {
	return &DataError{
		Err:     ErrEmptyResult,
		Code:    apiErrors.ErrEmptyResult,
		Details: details,
	}
}

// NewInvalidMonthWindowError cria o erro de janela mensal mal configurada
func NewInvalidMonthWindowError(targetYear, maxMonth int) *DataError {
	return &DataError{
		Err:     ErrInvalidMonthWindow,
		Code:    apiErrors.ErrInternalServer,
		Details: fmt.Sprintf("ano %d, mês máximo %d", targetYear, maxMonth),
	}
}

// IsFatalDataError informa se o erro deve abortar a carga dos dados
func IsFatalDataError(err error) bool {
	return errors.Is(err, ErrSchema) || errors.Is(err, ErrAmountParse)
}

// ErrorCode extrai o código de API de um erro do motor de comparação.
// Erros sem código não são traduzidos.
func ErrorCode(err error) (string, bool) {
	var dataErr *DataError
	if errors.As(err, &dataErr) && dataErr.Code != "" {
		return dataErr.Code, true
	}
	return "", false
}
