package domain

import "time"

// Provider tags known to the registry. Anything else is skipped silently.
const (
	ProviderTwitter  = "twitter"
	ProviderFacebook = "facebook"
)

// Connection is one external account linked by a user, as reported by the
// connection directory. Its lifecycle is owned by the directory; the core
// only holds weak references to it.
type Connection struct {
	ID                int64
	UserID            int64
	Provider          string
	ExternalAccountID string
	Username          string
	Name              string
	AuthToken         string
	IsActive          bool
}

// ConnectionChange is a directory notification that a connection was added,
// removed, or deactivated. The core reacts by reconciling StreamConnections.
type ConnectionChange struct {
	UserID       int64     `json:"user_id"`
	ConnectionID int64     `json:"connection_id"`
	Provider     string    `json:"provider"`
	Action       string    `json:"action"` // "added", "removed", "deactivated"
	OccurredAt   time.Time `json:"occurred_at"`
}
