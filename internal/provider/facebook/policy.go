package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

// Policy suppresses posts authored by someone other than the connection's
// own account (shared and tagged posts), then checks the post's privacy
// level against the Graph API. Only a fully public post is published; a
// failed lookup is neutral.
type Policy struct {
	client *Client
	logger *slog.Logger
}

func NewPolicy(client *Client, logger *slog.Logger) *Policy {
	return &Policy{
		client: client,
		logger: logger.With("provider", domain.ProviderFacebook),
	}
}

func (p *Policy) Annotate(ctx context.Context, item *domain.ActivityItem, raw provider.RawPost, conn domain.Connection) (bool, error) {
	var post struct {
		From Author `json:"from"`
	}
	if err := json.Unmarshal(raw.Payload, &post); err != nil {
		return false, nil
	}

	if post.From.ID != conn.ExternalAccountID {
		return false, nil
	}

	level, err := p.lookupPrivacy(ctx, item.SourceID, conn.AuthToken)
	if err != nil {
		// Lookup unavailable: neutral, the remaining rules decide.
		return true, &domain.PolicyLookupError{
			Provider: domain.ProviderFacebook,
			SourceID: item.SourceID,
			Err:      err,
		}
	}
	if level == "" {
		return true, nil
	}

	item.Privacy = &level
	return level == privacyEveryone, nil
}

// lookupPrivacy makes the secondary per-post Graph API call for the post's
// privacy setting.
func (p *Policy) lookupPrivacy(ctx context.Context, postID, token string) (string, error) {
	query := url.Values{}
	query.Set("fields", "privacy")

	body, err := p.client.Get(ctx, postID, token, query)
	if err != nil {
		return "", fmt.Errorf("privacy lookup: %w", err)
	}

	var resp struct {
		Privacy *Privacy `json:"privacy"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode privacy: %w", err)
	}
	if resp.Privacy == nil {
		return "", nil
	}
	return resp.Privacy.Value, nil
}
