package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoKeywords is returned when a scan is requested without keywords.
	ErrNoKeywords = errors.New("no keywords provided")

	// ErrNoSource is returned when no source adapter is configured.
	ErrNoSource = errors.New("no data source configured")

	// ErrSearchFailed is returned when a source adapter cannot complete a
	// search. Recoverable: the caller falls back to the next source.
	ErrSearchFailed = errors.New("source search failed")

	// ErrRateLimited is returned when the live API rejects a call for rate
	// limiting (HTTP 429).
	ErrRateLimited = errors.New("source rate limited")

	// ErrBadQuery is returned when the live API rejects the query itself
	// (HTTP 400); triggers the one documented relaxed retry.
	ErrBadQuery = errors.New("source rejected query")

	// ErrCompletionTimeout is returned when a completion call exceeds its
	// deadline.
	ErrCompletionTimeout = errors.New("completion timed out")

	// ErrMalformedCompletion is returned when the completion service answers
	// with output the lenient decoder cannot recover.
	ErrMalformedCompletion = errors.New("malformed completion output")

	// ErrScanInFlight is returned when a caller exceeds the scan rate limit.
	ErrScanInFlight = errors.New("scan rate limit exceeded")
)

// StageError wraps a fatal stage failure with the stage number and elapsed
// time, so callers know where and when the pipeline died.
type StageError struct {
	Stage   int
	Elapsed time.Duration
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d failed after %s: %v", e.Stage, e.Elapsed.Round(time.Millisecond), e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
