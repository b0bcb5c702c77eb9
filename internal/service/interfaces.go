package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"activity_stream/internal/domain"
)

type ItemStore interface {
	UpsertIfAbsent(ctx context.Context, item *domain.ActivityItem) (bool, error)
	CountPublishedByProvider(ctx context.Context, streamID int64, provider string) (int, error)
	ListFeed(ctx context.Context, streamID int64) ([]domain.ActivityItem, error)
}

type StreamStore interface {
	GetOrCreateByUser(ctx context.Context, userID int64) (*domain.Stream, error)
	Get(ctx context.Context, id int64) (*domain.Stream, error)
	ListActive(ctx context.Context) ([]domain.Stream, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type StreamConnectionStore interface {
	Ensure(ctx context.Context, sc *domain.StreamConnection) error
	DeactivateMissing(ctx context.Context, streamID int64, activeConnectionIDs []int64) error
	ListActiveByStream(ctx context.Context, streamID int64) ([]domain.StreamConnection, error)
	AdvanceWatermark(ctx context.Context, id int64, syncedAt time.Time) error
}

// ConnectionDirectory is the external broker that owns Connection records.
type ConnectionDirectory interface {
	ListActiveConnections(ctx context.Context, userID int64) ([]domain.Connection, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, item *domain.ActivityItem) error
	Close() error
}
