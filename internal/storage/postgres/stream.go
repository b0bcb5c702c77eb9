package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"activity_stream/internal/domain"
)

type StreamStore struct {
	db *sqlx.DB
}

func NewStreamStore(db *sqlx.DB) *StreamStore {
	return &StreamStore{db: db}
}

// GetOrCreateByUser lazily creates the user's stream on first access. The
// unique index on user_id keeps it at exactly one stream per user even when
// two callers race.
func (s *StreamStore) GetOrCreateByUser(ctx context.Context, userID int64) (*domain.Stream, error) {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		`INSERT INTO streams (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	var stream domain.Stream
	err = sqlx.GetContext(ctx, exec, &stream,
		`SELECT id, user_id, is_published, is_active, created, updated
		 FROM streams WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

func (s *StreamStore) Get(ctx context.Context, id int64) (*domain.Stream, error) {
	var stream domain.Stream
	err := s.db.GetContext(ctx, &stream,
		`SELECT id, user_id, is_published, is_active, created, updated
		 FROM streams WHERE id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

// ListActive returns the streams the background scheduler cycles over.
func (s *StreamStore) ListActive(ctx context.Context) ([]domain.Stream, error) {
	var streams []domain.Stream
	err := s.db.SelectContext(ctx, &streams,
		`SELECT id, user_id, is_published, is_active, created, updated
		 FROM streams WHERE is_active = TRUE ORDER BY id`,
	)
	return streams, err
}

// SetActive toggles the stream. Deactivation cascades to its stream
// connections so the scheduler stops picking them up.
func (s *StreamStore) SetActive(ctx context.Context, id int64, active bool) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		`UPDATE streams SET is_active = $2, updated = NOW() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return err
	}

	if !active {
		_, err = exec.ExecContext(ctx,
			`UPDATE stream_connections SET is_active = FALSE, updated = NOW()
			 WHERE stream_id = $1`,
			id,
		)
	}
	return err
}
