package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"activity_stream/internal/domain"
)

type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

// UpsertIfAbsent inserts the item unless one with the same natural key
// (stream, connection, source_id, date) exists. The unique index plus
// ON CONFLICT DO NOTHING makes this race-free under concurrent syncs: at
// most one writer wins, the rest see stored=false. Existing rows are never
// touched.
func (s *ItemStore) UpsertIfAbsent(ctx context.Context, item *domain.ActivityItem) (bool, error) {
	query := `
		INSERT INTO stream_items (
			stream_id, connection_id, provider, type, date, title, body,
			permalink, source_id,
			picture, picture_small, picture_medium, picture_id,
			street, city, state, country, latitude, longitude, place_id, place_name,
			privacy, raw_data, is_published, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21,
			$22, $23, $24, $25
		)
		ON CONFLICT (stream_id, connection_id, source_id, date) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.StreamID,
		item.ConnectionID,
		item.Provider,
		item.Type,
		item.Date,
		item.Title,
		item.Body,
		item.Permalink,
		item.SourceID,
		item.Picture,
		item.PictureSmall,
		item.PictureMedium,
		item.PictureID,
		item.Street,
		item.City,
		item.State,
		item.Country,
		item.Latitude,
		item.Longitude,
		item.PlaceID,
		item.PlaceName,
		item.Privacy,
		item.RawData,
		item.IsPublished,
		item.IsActive,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// CountPublishedByProvider reports how many published items the stream
// already holds for one provider. Zero means the connection has never been
// bootstrapped.
func (s *ItemStore) CountPublishedByProvider(ctx context.Context, streamID int64, provider string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM stream_items
		 WHERE stream_id = $1 AND provider = $2 AND is_published = TRUE`,
		streamID, provider,
	)
	return count, err
}

// ListFeed returns the stream's published, active items newest-first.
// Items from muted stream connections are excluded.
func (s *ItemStore) ListFeed(ctx context.Context, streamID int64) ([]domain.ActivityItem, error) {
	query := `
		SELECT i.*
		FROM stream_items i
		JOIN stream_connections sc
		  ON sc.stream_id = i.stream_id AND sc.connection_id = i.connection_id
		WHERE i.stream_id = $1
		  AND i.is_published = TRUE
		  AND i.is_active = TRUE
		  AND sc.is_published = TRUE
		ORDER BY i.date DESC`

	var items []domain.ActivityItem
	err := s.db.SelectContext(ctx, &items, query, streamID)
	return items, err
}
