package session

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
)

// Erros específicos para o contexto de sessões
var (
	ErrSessionNotFound   = errors.New("sessão não encontrada")
	ErrInvalidTransition = errors.New("ação não permitida no estado atual da sessão")
	ErrInvalidRange      = errors.New("intervalo de datas inválido")
	ErrRangeOrder        = errors.New("'Fecha Actual' deve ser posterior a 'Fecha Anterior'")
	ErrUnknownProduct    = errors.New("produto não encontrado no conjunto de dados")
	ErrEmptySelection    = errors.New("é necessário selecionar ao menos um produto")
	ErrNoDataset         = errors.New("nenhum conjunto de dados carregado")
)

var errorCodes = map[error]string{
	ErrSessionNotFound:   apiErrors.ErrSessionNotFound,
	ErrInvalidTransition: apiErrors.ErrInvalidTransition,
	ErrInvalidRange:      apiErrors.ErrInvalidRange,
	ErrRangeOrder:        apiErrors.ErrInvalidRange,
	ErrUnknownProduct:    apiErrors.ErrUnknownProduct,
	ErrEmptySelection:    apiErrors.ErrMissingRequiredData,
	ErrNoDataset:         apiErrors.ErrNoDataset,
}

// SessionError é um erro com contexto adicional para sessões
type SessionError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string // ID da sessão envolvida
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SessionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError cria um novo SessionError com o código de API correspondente ao erro base
func NewSessionError(err error, sessionID string, details string) *SessionError {
	code, ok := errorCodes[err]
	if !ok {
		code = apiErrors.ErrInternalServer
	}
	return &SessionError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
