package domain

import "fmt"

// FetchError is a provider-level network or auth failure. Retryable: the
// orchestrator must not advance the watermark for the affected connection.
type FetchError struct {
	Provider string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s: %v", e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PartialFetchError means one sub-collection within a provider failed while
// the others succeeded. The adapter returns the surviving results alongside
// it; processing continues.
type PartialFetchError struct {
	Provider   string
	Collection string
	Err        error
}

func (e *PartialFetchError) Error() string {
	return fmt.Sprintf("fetch %s %s: %v", e.Provider, e.Collection, e.Err)
}

func (e *PartialFetchError) Unwrap() error { return e.Err }

// NormalizationError marks one malformed payload. The offending item is
// skipped; the rest of the batch proceeds.
type NormalizationError struct {
	Provider string
	SourceID string
	Err      error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize %s post %s: %v", e.Provider, e.SourceID, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

// PolicyLookupError means a visibility lookup against the provider was
// unavailable. Neutral: it never forces suppression.
type PolicyLookupError struct {
	Provider string
	SourceID string
	Err      error
}

func (e *PolicyLookupError) Error() string {
	return fmt.Sprintf("policy lookup %s post %s: %v", e.Provider, e.SourceID, e.Err)
}

func (e *PolicyLookupError) Unwrap() error { return e.Err }
