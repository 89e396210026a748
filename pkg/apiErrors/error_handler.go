package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de dados (1000-1999)
	ErrSchema          = "DATA_001" // Campo obrigatório ausente na fonte de dados
	ErrAmountParse     = "DATA_002" // Valor monetário inválido
	ErrEmptyResult     = "DATA_003" // Nenhum registro encontrado
	ErrNoDataset       = "DATA_004" // Nenhum conjunto de dados carregado
	ErrUploadTooBig    = "DATA_005" // Arquivo enviado excede o limite
	ErrUnsupportedFile = "DATA_006" // Formato de arquivo não suportado
	ErrRefreshRunning  = "DATA_007" // Atualização do conjunto de dados já em andamento

	// Erros de sessão (3000-3999)
	ErrSessionNotFound   = "SES_001" // Sessão não encontrada
	ErrInvalidTransition = "SES_002" // Ação não permitida no estado atual da sessão
	ErrInvalidRange      = "SES_003" // Intervalo de datas inválido
	ErrUnknownProduct    = "SES_004" // Produto fora do conjunto de dados

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrSchema:              http.StatusUnprocessableEntity,
	ErrAmountParse:         http.StatusUnprocessableEntity,
	ErrEmptyResult:         http.StatusNotFound,
	ErrNoDataset:           http.StatusConflict,
	ErrUploadTooBig:        http.StatusRequestEntityTooLarge,
	ErrUnsupportedFile:     http.StatusUnsupportedMediaType,
	ErrRefreshRunning:      http.StatusConflict,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrInvalidTransition:   http.StatusConflict,
	ErrInvalidRange:        http.StatusBadRequest,
	ErrUnknownProduct:      http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// Error implementa a interface error
func (e APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// StatusCode retorna o status HTTP associado ao código
func StatusCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	json.NewEncoder(w).Encode(apiErr)
}
