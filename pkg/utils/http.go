package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MakeRequest faz um GET e devolve o corpo da resposta; o chamador deve fechá-lo
func MakeRequest(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	return resp.Body, nil
}
