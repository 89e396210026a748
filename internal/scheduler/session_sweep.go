package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/config"
)

// Sweeper remove sessões inativas
type Sweeper interface {
	SweepIdle(ctx context.Context, maxIdle time.Duration) int
}

type SessionSweepService struct {
	scheduler    *gocron.Scheduler
	sweeper      Sweeper
	cronSchedule string
	idleTimeout  time.Duration
}

func NewSessionSweepService(sweeper Sweeper, cfg *config.Config) *SessionSweepService {
	return &SessionSweepService{
		scheduler:    gocron.NewScheduler(time.Local),
		sweeper:      sweeper,
		cronSchedule: cfg.SessionSweep.CronSchedule,
		idleTimeout:  cfg.SessionSweep.IdleTimeout,
	}
}

func (s *SessionSweepService) Start(ctx context.Context) error {
	if s.idleTimeout <= 0 {
		logrus.Info("session-sweep: limpeza de sessões desabilitada (SESSION_IDLE_TIMEOUT <= 0)")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"cron":         s.cronSchedule,
		"idle_timeout": s.idleTimeout.String(),
	}).Info("session-sweep: iniciando cron")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("session-sweep: parando cron")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep remove as sessões inativas há mais tempo que o limite configurado
func (s *SessionSweepService) Sweep(ctx context.Context) int {
	removed := s.sweeper.SweepIdle(ctx, s.idleTimeout)
	logrus.WithField("removed", removed).Debug("session-sweep: limpeza concluída")
	return removed
}
