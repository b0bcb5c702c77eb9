package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"activity_stream/internal/config"
	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

// SyncService orchestrates one stream's ingestion cycle: for each active
// stream connection it gates on the refresh window, fetches from the
// matching provider adapter, normalizes, annotates visibility, and upserts.
type SyncService struct {
	registry    *provider.Registry
	streams     StreamStore
	streamConns StreamConnectionStore
	items       ItemStore
	directory   ConnectionDirectory
	publisher   Publisher
	logger      *slog.Logger
	config      config.SyncConfig
	now         func() time.Time
}

func NewSyncService(
	registry *provider.Registry,
	streams StreamStore,
	streamConns StreamConnectionStore,
	items ItemStore,
	directory ConnectionDirectory,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		registry:    registry,
		streams:     streams,
		streamConns: streamConns,
		items:       items,
		directory:   directory,
		publisher:   publisher,
		logger:      logger,
		config:      cfg,
		now:         time.Now,
	}
}

// RunSync runs one cycle over every active connection of the stream.
// Connections sync in parallel; they touch disjoint natural-key spaces, so
// the store's uniqueness constraint is the only synchronization needed. An
// error is returned only when every due connection failed; partial success
// is success, with per-connection diagnostics in the stats.
func (s *SyncService) RunSync(ctx context.Context, streamID int64) (*domain.SyncStats, error) {
	startTime := s.now()

	stream, err := s.streams.Get(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("load stream: %w", err)
	}

	scs, err := s.streamConns.ListActiveByStream(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("list stream connections: %w", err)
	}

	connections, err := s.directory.ListActiveConnections(ctx, stream.UserID)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	byID := make(map[int64]domain.Connection, len(connections))
	for _, c := range connections {
		byID[c.ID] = c
	}

	stats := &domain.SyncStats{
		StreamID:    streamID,
		Connections: make([]domain.ConnectionStats, len(scs)),
	}

	var wg sync.WaitGroup
	for i, sc := range scs {
		conn, ok := byID[sc.ConnectionID]
		if !ok {
			// Directory no longer knows this connection; reconciliation
			// will deactivate it.
			stats.Connections[i] = domain.ConnectionStats{
				ConnectionID: sc.ConnectionID,
				Provider:     sc.Provider,
				Skipped:      true,
			}
			continue
		}

		wg.Add(1)
		go func(i int, sc domain.StreamConnection, conn domain.Connection) {
			defer wg.Done()

			connCtx, cancel := context.WithTimeout(ctx, s.config.ConnectionTimeout)
			defer cancel()

			stats.Connections[i] = s.syncConnection(connCtx, stream, sc, conn)
		}(i, sc, conn)
	}
	wg.Wait()

	stats.Duration = s.now().Sub(startTime)

	attempted := stats.Attempted()
	failed := stats.Failed()
	s.logger.Info("sync cycle completed",
		"stream", streamID,
		"connections", len(scs),
		"attempted", attempted,
		"failed", failed,
		"duration", stats.Duration,
	)

	if attempted > 0 && failed == attempted {
		return stats, fmt.Errorf("all %d connection syncs failed", attempted)
	}
	return stats, nil
}

func (s *SyncService) syncConnection(ctx context.Context, stream *domain.Stream, sc domain.StreamConnection, conn domain.Connection) domain.ConnectionStats {
	startTime := s.now()
	stats := domain.ConnectionStats{
		ConnectionID: sc.ConnectionID,
		Provider:     sc.Provider,
	}
	logger := s.logger.With("stream", stream.ID, "provider", sc.Provider, "connection", sc.ConnectionID)

	bundle, ok := s.registry.Lookup(sc.Provider)
	if !ok {
		// The broker may register providers before we grow an adapter.
		logger.Debug("no adapter registered, skipping")
		stats.Skipped = true
		return stats
	}

	due, err := s.isDue(ctx, stream.ID, sc)
	if err != nil {
		stats.Err = err
		return stats
	}
	if !due {
		stats.Skipped = true
		return stats
	}

	raws, err := bundle.Adapter.FetchRecent(ctx, conn)
	if err != nil {
		var partial *domain.PartialFetchError
		if errors.As(err, &partial) {
			logger.Warn("partial fetch", "collection", partial.Collection, "error", partial.Err)
			stats.Partial = true
		} else {
			logger.Error("fetch failed", "error", err)
			stats.Err = err
			return stats
		}
	}

	stats.Fetched = len(raws)

	var lastStoreErr error
	for _, raw := range raws {
		item, err := bundle.Normalizer.Normalize(raw, conn)
		if err != nil {
			logger.Warn("skipping malformed post", "source_id", raw.SourceID, "error", err)
			stats.Malformed++
			continue
		}
		item.StreamID = stream.ID

		published, err := bundle.Policy.Annotate(ctx, &item, raw, conn)
		if err != nil {
			var lookupErr *domain.PolicyLookupError
			if errors.As(err, &lookupErr) {
				// Neutral: the lookup being down never suppresses.
				logger.Warn("policy lookup unavailable", "source_id", item.SourceID, "error", err)
			} else {
				// The returned decision still stands; the error is only
				// diagnostic.
				logger.Warn("policy annotation failed", "source_id", item.SourceID, "error", err)
			}
		}
		item.IsPublished = item.IsPublished && published
		if !item.IsPublished {
			stats.Suppressed++
		}

		stored, err := s.items.UpsertIfAbsent(ctx, &item)
		if err != nil {
			logger.Error("store item failed", "source_id", item.SourceID, "error", err)
			stats.Errors++
			lastStoreErr = err
			continue
		}
		if !stored {
			stats.Duplicates++
			continue
		}
		stats.Stored++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, &item); err != nil {
				logger.Warn("publish item failed", "source_id", item.SourceID, "error", err)
			}
		}
	}

	// Nothing from the batch landed and at least one store write broke:
	// keep the watermark so the next cycle retries the whole fetch.
	if stats.Errors > 0 && stats.Stored == 0 && stats.Duplicates == 0 {
		stats.Err = fmt.Errorf("store items: %w", lastStoreErr)
		return stats
	}

	if err := s.streamConns.AdvanceWatermark(ctx, sc.ID, s.now()); err != nil {
		stats.Err = fmt.Errorf("advance watermark: %w", err)
		return stats
	}

	stats.Duration = s.now().Sub(startTime)
	logger.Info("connection synced",
		"fetched", stats.Fetched,
		"stored", stats.Stored,
		"duplicates", stats.Duplicates,
		"malformed", stats.Malformed,
		"suppressed", stats.Suppressed,
		"partial", stats.Partial,
		"duration", stats.Duration,
	)
	return stats
}

// isDue gates one connection on its refresh window. A connection with zero
// published items for its provider has never produced anything visible, so
// it is always due regardless of the window.
func (s *SyncService) isDue(ctx context.Context, streamID int64, sc domain.StreamConnection) (bool, error) {
	count, err := s.items.CountPublishedByProvider(ctx, streamID, sc.Provider)
	if err != nil {
		return false, fmt.Errorf("count published items: %w", err)
	}
	if count == 0 {
		return true, nil
	}
	return sc.NeedsRefresh(s.now()), nil
}
