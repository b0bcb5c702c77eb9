package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

// Config holds Twitter adapter configuration.
type Config struct {
	BaseURL        string
	Count          int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Adapter fetches a user's recent timeline, excluding replies and retweets.
type Adapter struct {
	httpClient     *http.Client
	baseURL        string
	count          int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func NewAdapter(cfg Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		count:          cfg.Count,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("provider", domain.ProviderTwitter),
	}
}

// FetchRecent fetches the connection's recent tweets.
func (a *Adapter) FetchRecent(ctx context.Context, conn domain.Connection) ([]provider.RawPost, error) {
	url := fmt.Sprintf(
		"%s/statuses/user_timeline.json?exclude_replies=true&include_rts=false&count=%d",
		a.baseURL, a.count,
	)

	body, err := a.fetch(ctx, url, conn.AuthToken)
	if err != nil {
		return nil, &domain.FetchError{Provider: domain.ProviderTwitter, Err: err}
	}

	var envelopes []json.RawMessage
	if err := json.Unmarshal(body, &envelopes); err != nil {
		return nil, &domain.FetchError{
			Provider: domain.ProviderTwitter,
			Err:      fmt.Errorf("decode timeline: %w", err),
		}
	}

	posts := make([]provider.RawPost, 0, len(envelopes))
	for _, raw := range envelopes {
		var id struct {
			IDStr string `json:"id_str"`
		}
		if err := json.Unmarshal(raw, &id); err != nil || id.IDStr == "" {
			a.logger.Warn("timeline entry without id, skipping")
			continue
		}
		posts = append(posts, provider.RawPost{
			Provider: domain.ProviderTwitter,
			SourceID: id.IDStr,
			Payload:  raw,
		})
	}

	a.logger.Debug("fetched timeline", "count", len(posts))
	return posts, nil
}

func (a *Adapter) fetch(ctx context.Context, url, token string) ([]byte, error) {
	var body []byte
	var err error

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		body, err = a.doRequest(ctx, url, token)
		if err == nil {
			return body, nil
		}

		if attempt == a.maxAttempts {
			break
		}

		backoff := a.calculateBackoff(attempt)
		a.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", a.maxAttempts, err)
}

func (a *Adapter) doRequest(ctx context.Context, url, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return buf, nil
}

func (a *Adapter) calculateBackoff(attempt int) time.Duration {
	backoff := a.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > a.maxBackoff {
		backoff = a.maxBackoff
	}
	return backoff
}
