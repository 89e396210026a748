package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/config"
)

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls++
	return f.err
}

type blockingRefresher struct {
	release chan struct{}
	done    chan struct{}
}

func (b *blockingRefresher) Refresh(ctx context.Context) error {
	<-b.release
	close(b.done)
	return nil
}

type fakeSweeper struct {
	maxIdle time.Duration
	removed int
}

func (f *fakeSweeper) SweepIdle(ctx context.Context, maxIdle time.Duration) int {
	f.maxIdle = maxIdle
	return f.removed
}

func TestDatasetRefreshService_RefreshNow(t *testing.T) {
	tests := []struct {
		name      string
		refresher *fakeRefresher
		validate  func(t *testing.T, service *DatasetRefreshService, err error)
	}{
		{
			name:      "Atualização com sucesso",
			refresher: &fakeRefresher{},
			validate: func(t *testing.T, service *DatasetRefreshService, err error) {
				require.NoError(t, err)
				status := service.GetStatus()
				assert.Equal(t, "", status["last_sync_error"])
				assert.Equal(t, false, status["sync_running"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name:      "Falha na fonte - erro registrado no status",
			refresher: &fakeRefresher{err: errors.New("fonte indisponível")},
			validate: func(t *testing.T, service *DatasetRefreshService, err error) {
				assert.Error(t, err)
				assert.Equal(t, "fonte indisponível", service.GetStatus()["last_sync_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewDatasetRefreshService(tt.refresher, &config.Config{})
			err := service.RefreshNow(context.Background())
			assert.Equal(t, 1, tt.refresher.calls)
			tt.validate(t, service, err)
		})
	}
}

func TestDatasetRefreshService_RejectsWhenRunning(t *testing.T) {
	refresher := &fakeRefresher{}
	service := NewDatasetRefreshService(refresher, &config.Config{})
	service.syncRunning = true

	err := service.RefreshNow(context.Background())
	assert.True(t, errors.Is(err, ErrRefreshInProgress))
	assert.Equal(t, 0, refresher.calls)

	assert.True(t, errors.Is(service.TriggerManualSync(), ErrRefreshInProgress))
	assert.Equal(t, 0, refresher.calls)
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	refresher := &blockingRefresher{release: make(chan struct{}), done: make(chan struct{})}
	service := NewDatasetRefreshService(refresher, &config.Config{})

	require.NoError(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])
	assert.True(t, errors.Is(service.RefreshNow(context.Background()), ErrRefreshInProgress))

	close(refresher.release)
	<-refresher.done
	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestDatasetRefreshService_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("Desabilitado - não agenda", func(t *testing.T) {
		service := NewDatasetRefreshService(&fakeRefresher{}, &config.Config{})
		assert.NoError(t, service.Start(ctx))
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		cfg := &config.Config{DatasetRefresh: config.DatasetRefresh{CronSchedule: "não é cron", Enabled: true}}
		service := NewDatasetRefreshService(&fakeRefresher{}, cfg)
		assert.Error(t, service.Start(ctx))
	})
}

func TestSessionSweepService_Sweep(t *testing.T) {
	sweeper := &fakeSweeper{removed: 3}
	cfg := &config.Config{SessionSweep: config.SessionSweep{CronSchedule: "*/15 * * * *", IdleTimeout: 2 * time.Hour}}

	service := NewSessionSweepService(sweeper, cfg)
	removed := service.Sweep(context.Background())

	assert.Equal(t, 3, removed)
	assert.Equal(t, 2*time.Hour, sweeper.maxIdle)
}

func TestSessionSweepService_StartDisabled(t *testing.T) {
	service := NewSessionSweepService(&fakeSweeper{}, &config.Config{})
	assert.NoError(t, service.Start(context.Background()))
}
