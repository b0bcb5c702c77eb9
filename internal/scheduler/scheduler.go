package scheduler

import (
	"context"
	"log/slog"
	"time"

	"activity_stream/internal/domain"
)

// Syncer runs one ingestion cycle for a stream.
type Syncer interface {
	RunSync(ctx context.Context, streamID int64) (*domain.SyncStats, error)
}

// StreamLister enumerates the streams to cycle over.
type StreamLister interface {
	ListActive(ctx context.Context) ([]domain.Stream, error)
}

// Scheduler drives periodic syncs for every active stream. The per
// connection refresh windows live inside the sync service; the scheduler
// only decides how often they get evaluated.
type Scheduler struct {
	syncer   Syncer
	streams  StreamLister
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, streams StreamLister, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		streams:  streams,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	streams, err := s.streams.ListActive(ctx)
	if err != nil {
		s.logger.Error("list active streams failed", "error", err)
		return
	}

	for _, stream := range streams {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := s.syncer.RunSync(ctx, stream.ID); err != nil {
			s.logger.Error("stream sync failed", "stream", stream.ID, "error", err)
		}
	}
}
