package service

import (
	"context"
	"fmt"

	"activity_stream/internal/domain"
)

// ListFeed returns the stream's aggregated feed, newest first, filtered to
// published items. An unpublished or deactivated stream reads back empty
// rather than erroring, so callers can render the same way either side of a
// toggle.
func (s *SyncService) ListFeed(ctx context.Context, streamID int64) ([]domain.ActivityItem, error) {
	stream, err := s.streams.Get(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("load stream: %w", err)
	}
	if !stream.IsPublished || !stream.IsActive {
		return []domain.ActivityItem{}, nil
	}

	items, err := s.items.ListFeed(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}
	return items, nil
}
