package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
)

// Collection kinds, also used as the item sub-type tag.
const (
	KindStatus = "status"
	KindPhoto  = "photo"
)

// Config holds Facebook adapter configuration.
type Config struct {
	GraphURL string
	Limit    int
	Timeout  time.Duration
}

// Adapter fetches two independent Graph API collections, statuses and
// photos, and merges them. One failing collection does not abort the other.
type Adapter struct {
	client *Client
	limit  int
	logger *slog.Logger
}

func NewAdapter(cfg Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: NewClient(cfg.GraphURL, cfg.Timeout),
		limit:  cfg.Limit,
		logger: logger.With("provider", domain.ProviderFacebook),
	}
}

func (a *Adapter) FetchRecent(ctx context.Context, conn domain.Connection) ([]provider.RawPost, error) {
	var posts []provider.RawPost
	var partial *domain.PartialFetchError
	var firstErr error
	failed := 0

	collections := []struct {
		kind string
		path string
	}{
		{KindStatus, "me/statuses"},
		{KindPhoto, "me/photos"},
	}

	for _, c := range collections {
		fetched, err := a.fetchCollection(ctx, conn, c.kind, c.path)
		if err != nil {
			a.logger.Warn("collection fetch failed",
				"collection", c.kind,
				"error", err,
			)
			failed++
			if firstErr == nil {
				firstErr = err
			}
			partial = &domain.PartialFetchError{
				Provider:   domain.ProviderFacebook,
				Collection: c.kind,
				Err:        err,
			}
			continue
		}
		posts = append(posts, fetched...)
	}

	// Every branch down means the provider itself is unreachable. A
	// surviving collection that happens to be empty is still a success.
	if failed == len(collections) {
		return nil, &domain.FetchError{Provider: domain.ProviderFacebook, Err: firstErr}
	}
	if partial != nil {
		return posts, partial
	}

	a.logger.Debug("fetched collections", "count", len(posts))
	return posts, nil
}

func (a *Adapter) fetchCollection(ctx context.Context, conn domain.Connection, kind, path string) ([]provider.RawPost, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprint(a.limit))
	if kind == KindPhoto {
		query.Set("type", "uploaded")
	}

	body, err := a.client.Get(ctx, path, conn.AuthToken, query)
	if err != nil {
		return nil, err
	}

	var list struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", kind, err)
	}

	posts := make([]provider.RawPost, 0, len(list.Data))
	for _, raw := range list.Data {
		var envelope struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.ID == "" {
			a.logger.Warn("entry without id, skipping", "collection", kind)
			continue
		}
		posts = append(posts, provider.RawPost{
			Provider: domain.ProviderFacebook,
			Kind:     kind,
			SourceID: envelope.ID,
			Payload:  raw,
		})
	}

	return posts, nil
}

// Client is a thin Graph API client scoped to one base URL. The adapter and
// the visibility policy share it.
type Client struct {
	httpClient *http.Client
	graphURL   string
}

func NewClient(graphURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		graphURL:   graphURL,
	}
}

func (c *Client) Get(ctx context.Context, path, token string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s?%s", c.graphURL, path, query.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
