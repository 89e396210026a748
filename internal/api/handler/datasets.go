package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-comparison-api/infrastructure/datasource"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

// DatasetStatusProvider expõe o estado do dataset remoto em cache
type DatasetStatusProvider interface {
	Status() datasource.Status
}

// DatasetRefresher executa a atualização do dataset remoto fora do agendamento
type DatasetRefresher interface {
	RefreshNow(ctx context.Context) error
	TriggerManualSync() error
	GetStatus() map[string]any
}

type datasetStatusResponse struct {
	Dataset   datasource.Status `json:"dataset"`
	Scheduler map[string]any    `json:"scheduler"`
}

func DatasetStatus(cache DatasetStatusProvider, refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, datasetStatusResponse{
			Dataset:   cache.Status(),
			Scheduler: refresher.GetStatus(),
		})
	})
}

// RefreshDataset recarrega a fonte remota e devolve o novo estado do cache.
// Com async=true a atualização segue em segundo plano e a resposta é 202.
func RefreshDataset(cache DatasetStatusProvider, refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RefreshDataset")

		if async, _ := strconv.ParseBool(r.URL.Query().Get("async")); async {
			if err := refresher.TriggerManualSync(); err != nil {
				writeServiceError(w, r, err, "Erro ao agendar atualização do conjunto de dados")
				return
			}
			writeJSON(w, http.StatusAccepted, datasetStatusResponse{
				Dataset:   cache.Status(),
				Scheduler: refresher.GetStatus(),
			})
			return
		}

		if err := refresher.RefreshNow(r.Context()); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar o conjunto de dados")
			return
		}

		writeJSON(w, http.StatusOK, datasetStatusResponse{
			Dataset:   cache.Status(),
			Scheduler: refresher.GetStatus(),
		})
	})
}
