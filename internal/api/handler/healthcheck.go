package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
