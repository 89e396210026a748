package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-comparison-api/infrastructure/datasource"
	"github.com/vfg2006/sales-comparison-api/internal/scheduler"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/comparing"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/session"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeServiceError traduz os erros dos serviços para a resposta padronizada da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var sessionErr *session.SessionError
	if errors.As(err, &sessionErr) {
		logger.WithField(log.SessionIDField, sessionErr.SessionID).Warn(message)
		apiErrors.WriteError(w, sessionErr.Code, sessionErr.Error(), nil)
		return
	}

	if code, ok := comparing.ErrorCode(err); ok {
		if code == apiErrors.ErrInternalServer {
			logger.Error(message)
		} else {
			logger.Warn(message)
		}
		apiErrors.WriteError(w, code, err.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, datasource.ErrNoSource):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrNoDataset, err.Error(), nil)
	case errors.Is(err, datasource.ErrUnsupportedFormat):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedFile, err.Error(), nil)
	case errors.Is(err, scheduler.ErrRefreshInProgress):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrRefreshRunning, err.Error(), nil)
	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}
