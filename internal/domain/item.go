package domain

import "time"

// Item types produced by the normalizers.
const (
	ItemTypeTweet  = "tweet"
	ItemTypeStatus = "status"
	ItemTypePhoto  = "photo"
)

// ActivityItem is one normalized, deduplicated post. The tuple
// (StreamID, ConnectionID, SourceID, Date) is the natural key: ingesting a
// duplicate is a no-op, never a field overwrite. Items are immutable once
// persisted, apart from soft deactivation.
type ActivityItem struct {
	ID           int64     `db:"id"`
	StreamID     int64     `db:"stream_id"`
	ConnectionID int64     `db:"connection_id"`
	Provider     string    `db:"provider"`
	Type         string    `db:"type"`
	// Date is the provider-reported creation time, not ingestion time,
	// stored in UTC.
	Date      time.Time `db:"date"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Permalink string    `db:"permalink"`
	// SourceID is the provider-native identifier, unique per provider only.
	SourceID string `db:"source_id"`

	Picture       *string `db:"picture"`
	PictureSmall  *string `db:"picture_small"`
	PictureMedium *string `db:"picture_medium"`
	PictureID     *string `db:"picture_id"`

	Street    *string  `db:"street"`
	City      *string  `db:"city"`
	State     *string  `db:"state"`
	Country   *string  `db:"country"`
	Latitude  *float64 `db:"latitude"`
	Longitude *float64 `db:"longitude"`
	PlaceID   *string  `db:"place_id"`
	PlaceName *string  `db:"place_name"`

	Privacy *string `db:"privacy"`
	// RawData keeps the original provider payload verbatim for audit and
	// reprocessing; the core never interprets it after normalization.
	RawData []byte `db:"raw_data"`

	IsPublished bool      `db:"is_published"`
	IsActive    bool      `db:"is_active"`
	Created     time.Time `db:"created"`
	Updated     time.Time `db:"updated"`
}
