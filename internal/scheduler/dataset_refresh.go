// Package scheduler contém os serviços agendados de manutenção dos dados do painel
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/config"
)

// ErrRefreshInProgress indica que outra atualização do dataset ainda não terminou
var ErrRefreshInProgress = errors.New("atualização do dataset já em andamento")

// Refresher recarrega o dataset da fonte remota
type Refresher interface {
	Refresh(ctx context.Context) error
}

type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           Refresher
	config              DatasetRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetRefreshService(refresher Refresher, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		SyncEnabled:  cfg.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.SyncEnabled,
	}).Info("dataset-refresh: configuração do agendador carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("dataset-refresh: cron desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("dataset-refresh: iniciando cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshNow(ctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
			logrus.WithError(err).Error("dataset-refresh: erro na atualização agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("dataset-refresh: parando cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshNow executa a atualização de forma síncrona.
// Retorna ErrRefreshInProgress se outra atualização estiver em andamento.
func (s *DatasetRefreshService) RefreshNow(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("dataset-refresh: atualização já está em execução")
		return ErrRefreshInProgress
	}
	return s.run(ctx)
}

// TriggerManualSync inicia manualmente uma atualização em segundo plano
func (s *DatasetRefreshService) TriggerManualSync() error {
	if !s.begin() {
		logrus.Info("dataset-refresh: atualização já em andamento, ignorando solicitação manual")
		return ErrRefreshInProgress
	}

	logrus.Info("dataset-refresh: iniciando atualização manual")
	go func() {
		if err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("dataset-refresh: erro na atualização manual")
		}
	}()
	return nil
}

// begin marca a atualização como em andamento; falso se já estava
func (s *DatasetRefreshService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *DatasetRefreshService) run(ctx context.Context) error {
	err := s.refresher.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
