package twitter

import (
	"context"
	"encoding/json"

	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

// Policy suppresses items from protected accounts.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

func (p *Policy) Annotate(ctx context.Context, item *domain.ActivityItem, raw provider.RawPost, conn domain.Connection) (bool, error) {
	var tweet struct {
		User struct {
			Protected bool `json:"protected"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw.Payload, &tweet); err != nil {
		// Normalization already accepted the payload; an undecodable one
		// here should not reach publication.
		return false, nil
	}
	return !tweet.User.Protected, nil
}
