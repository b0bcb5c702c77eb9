package provider

import (
	"context"
	"encoding/json"

	"activity_stream/internal/domain"
)

// RawPost is one post as fetched from a provider, before normalization.
// Payload is the provider's original JSON for this post; it is stored
// verbatim on the item and decoded again by the matching normalizer.
type RawPost struct {
	Provider string
	// Kind is the provider sub-collection the post came from, e.g. a
	// Facebook photo vs. a status. Empty where the provider has only one.
	Kind     string
	SourceID string
	Payload  json.RawMessage
}

// Adapter fetches recent posts for one authenticated connection. A failing
// sub-collection must not abort the others: adapters return partial results
// together with a *domain.PartialFetchError. A full failure is reported as a
// *domain.FetchError.
type Adapter interface {
	FetchRecent(ctx context.Context, conn domain.Connection) ([]RawPost, error)
}

// Normalizer maps one raw post onto the canonical item schema. It performs
// no I/O.
type Normalizer interface {
	Normalize(raw RawPost, conn domain.Connection) (domain.ActivityItem, error)
}

// Policy decides whether a normalized item may be published. Implementations
// may call back to the provider (the Facebook privacy lookup); a lookup
// failure is returned as a *domain.PolicyLookupError and must be treated as
// neutral by the caller.
type Policy interface {
	Annotate(ctx context.Context, item *domain.ActivityItem, raw RawPost, conn domain.Connection) (bool, error)
}

// Bundle groups the three per-provider pieces.
type Bundle struct {
	Adapter    Adapter
	Normalizer Normalizer
	Policy     Policy
}

// Registry maps provider tags to bundles. Unregistered tags are not an
// error; the orchestrator skips them so that connections from providers the
// broker learns about first keep flowing through untouched.
type Registry struct {
	bundles map[string]Bundle
}

func NewRegistry() *Registry {
	return &Registry{bundles: make(map[string]Bundle)}
}

func (r *Registry) Register(tag string, b Bundle) {
	r.bundles[tag] = b
}

func (r *Registry) Lookup(tag string) (Bundle, bool) {
	b, ok := r.bundles[tag]
	return b, ok
}
