package domain

import "time"

// Stream is a user's aggregated activity feed container. Exactly one exists
// per user; it is created lazily on first access.
type Stream struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	IsPublished bool      `db:"is_published"`
	IsActive    bool      `db:"is_active"`
	Created     time.Time `db:"created"`
	Updated     time.Time `db:"updated"`
}

// StreamConnection holds per-provider sync configuration and state for one
// Stream. At most one exists per (stream, connection) pair.
type StreamConnection struct {
	ID                 int64     `db:"id"`
	StreamID           int64     `db:"stream_id"`
	ConnectionID       int64     `db:"connection_id"`
	Provider           string    `db:"provider"`
	StreamRefreshHours int       `db:"stream_refresh_hours"`
	PostDelayHours     int       `db:"post_delay_hours"`
	IsPublished        bool      `db:"is_published"`
	IsActive           bool      `db:"is_active"`
	Created            time.Time `db:"created"`
	// Updated is the watermark: the completion time of the last successful
	// sync. A failed sync leaves it untouched so the next cycle retries.
	Updated time.Time `db:"updated"`
}

// NeedsRefresh reports whether the connection's refresh window has elapsed.
// PostDelayHours shifts the perceived "now" forward, staggering freshness;
// StreamRefreshHours is the minimum interval between syncs.
func (sc StreamConnection) NeedsRefresh(now time.Time) bool {
	adjusted := now.Add(time.Duration(sc.PostDelayHours) * time.Hour)
	window := sc.Updated.Add(time.Duration(sc.StreamRefreshHours) * time.Hour)
	return adjusted.After(window)
}
