package datasource

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

// Normalizer converte a tabela bruta no dataset normalizado
type Normalizer interface {
	Normalize(table domain.RawTable) (*domain.Dataset, error)
}

// Status resume o estado do dataset em cache
type Status struct {
	Source    string                      `json:"source"`
	Loaded    bool                        `json:"loaded"`
	LoadedAt  *time.Time                  `json:"loaded_at,omitempty"`
	LastError string                      `json:"last_error,omitempty"`
	Report    *domain.NormalizationReport `json:"report,omitempty"`
}

// DatasetCache guarda o último dataset remoto normalizado.
// Cada chamada de Current devolve uma cópia independente.
type DatasetCache struct {
	loader     Loader
	normalizer Normalizer
	now        func() time.Time

	mu        sync.RWMutex
	dataset   *domain.Dataset
	loadedAt  time.Time
	lastError error
}

// NewDatasetCache cria o cache; loader pode ser nil quando os dados chegam apenas por upload
func NewDatasetCache(loader Loader, normalizer Normalizer) *DatasetCache {
	return &DatasetCache{
		loader:     loader,
		normalizer: normalizer,
		now:        time.Now,
	}
}

// Refresh recarrega a fonte. Em caso de erro o dataset anterior é mantido.
func (c *DatasetCache) Refresh(ctx context.Context) error {
	if c.loader == nil {
		return ErrNoSource
	}

	logger := log.ForContext(ctx).WithField("dataset_source", c.loader.Name())
	logger.Info("dataset: carregando fonte de dados")

	table, err := c.loader.Load(ctx)
	if err == nil {
		var dataset *domain.Dataset
		dataset, err = c.normalizer.Normalize(table)
		if err == nil {
			c.mu.Lock()
			c.dataset = dataset
			c.loadedAt = c.now()
			c.lastError = nil
			c.mu.Unlock()

			logger.WithField("dataset_rows", len(dataset.Records)).Info("dataset: fonte de dados carregada")
			return nil
		}
	}

	c.mu.Lock()
	c.lastError = err
	c.mu.Unlock()

	logger.WithError(err).Error("dataset: falha ao carregar fonte de dados")
	return err
}

// Current devolve uma cópia do dataset em cache
func (c *DatasetCache) Current() (*domain.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dataset == nil {
		return nil, false
	}
	return c.dataset.Clone(), true
}

func (c *DatasetCache) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := Status{Source: "upload"}
	if c.loader != nil {
		status.Source = c.loader.Name()
	}
	if c.lastError != nil {
		status.LastError = c.lastError.Error()
	}
	if c.dataset != nil {
		loadedAt := c.loadedAt
		report := c.dataset.Report
		status.Loaded = true
		status.LoadedAt = &loadedAt
		status.Report = &report
	}

	return status
}
