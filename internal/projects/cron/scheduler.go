package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ghanabuild/estimator-backend/internal/projects/repository"
)

// Scheduler runs the nightly registry snapshot job.
type Scheduler struct {
	store  repository.Store
	logger *zap.Logger
	cron   *cron.Cron
}

func NewScheduler(store repository.Store, logger *zap.Logger) *Scheduler {
	return &Scheduler{store: store, logger: logger}
}

// Start schedules the snapshot nightly at 12:00AM.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.snapshot()
	})
	if err != nil {
		s.logger.Error("failed to create cron job", zap.Error(err))
		return
	}

	s.logger.Info("cron scheduler started (registry snapshot nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler; running jobs finish first.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) snapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("registry snapshot failed", zap.Error(err))
		return
	}

	s.logger.Info("registry snapshot", zap.Int("projects", len(items)))
}
