package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"lx-registry-service/internal/core/ports/output"
)

// ScheduleService clears the scheduler's periodic task store.
type ScheduleService struct {
	repo    ports.PeriodicTaskRepository
	metrics ports.MetricsRecorder
}

func NewScheduleService(repo ports.PeriodicTaskRepository, metrics ports.MetricsRecorder) *ScheduleService {
	return &ScheduleService{repo: repo, metrics: metrics}
}

// Reset deletes every periodic task. It never filters and is safe to run
// against an empty store.
func (s *ScheduleService) Reset(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset schedule: %w", err)
	}

	log.WithField("deleted", deleted).Info("periodic tasks purged")
	if s.metrics != nil {
		s.metrics.RecordPeriodicTasksPurged(deleted)
	}
	return deleted, nil
}
