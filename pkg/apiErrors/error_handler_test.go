package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{ErrSchema, http.StatusUnprocessableEntity},
		{ErrNoDataset, http.StatusConflict},
		{ErrUploadTooBig, http.StatusRequestEntityTooLarge},
		{ErrRefreshRunning, http.StatusConflict},
		{ErrSessionNotFound, http.StatusNotFound},
		{ErrInvalidRange, http.StatusBadRequest},
		{"DESCONHECIDO", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]int{"linha": 3})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, "mensagem", body["message"])
			assert.NotNil(t, body["details"])
		})
	}
}
