package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"activity_stream/internal/domain"
)

type StreamConnectionStore struct {
	db *sqlx.DB
}

func NewStreamConnectionStore(db *sqlx.DB) *StreamConnectionStore {
	return &StreamConnectionStore{db: db}
}

// Ensure creates the (stream, connection) row if missing and reactivates it
// if the directory reports the connection active again. The unique index on
// the pair keeps reconciliation idempotent.
func (s *StreamConnectionStore) Ensure(ctx context.Context, sc *domain.StreamConnection) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO stream_connections (
			stream_id, connection_id, provider,
			stream_refresh_hours, post_delay_hours
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (stream_id, connection_id) DO UPDATE SET
			is_active = TRUE`,
		sc.StreamID,
		sc.ConnectionID,
		sc.Provider,
		sc.StreamRefreshHours,
		sc.PostDelayHours,
	)
	return err
}

// DeactivateMissing soft-deactivates rows whose connection no longer appears
// in the directory's active set.
func (s *StreamConnectionStore) DeactivateMissing(ctx context.Context, streamID int64, activeConnectionIDs []int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE stream_connections
		 SET is_active = FALSE
		 WHERE stream_id = $1
		   AND is_active = TRUE
		   AND NOT (connection_id = ANY($2))`,
		streamID, pq.Array(activeConnectionIDs),
	)
	return err
}

func (s *StreamConnectionStore) ListActiveByStream(ctx context.Context, streamID int64) ([]domain.StreamConnection, error) {
	var scs []domain.StreamConnection
	err := s.db.SelectContext(ctx, &scs,
		`SELECT id, stream_id, connection_id, provider,
		        stream_refresh_hours, post_delay_hours,
		        is_published, is_active, created, updated
		 FROM stream_connections
		 WHERE stream_id = $1 AND is_active = TRUE
		 ORDER BY id`,
		streamID,
	)
	return scs, err
}

func (s *StreamConnectionStore) SetPublished(ctx context.Context, id int64, published bool) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE stream_connections SET is_published = $2 WHERE id = $1`,
		id, published,
	)
	return err
}

// AdvanceWatermark records the completion time of a successful sync. Failed
// syncs never call this, so the next refresh-window evaluation retries.
func (s *StreamConnectionStore) AdvanceWatermark(ctx context.Context, id int64, syncedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE stream_connections SET updated = $2 WHERE id = $1`,
		id, syncedAt,
	)
	return err
}
