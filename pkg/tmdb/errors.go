package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found in catalog")
	ErrUnauthorized = errors.New("catalog rejected credentials")
	ErrInvalidID    = errors.New("catalog id out of range")
)

// UpstreamError is any catalog failure other than not found or unauthorized.
// Transport failures carry StatusCode 502.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("catalog request failed with status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// statusError maps a non 200 catalog status to an error
func statusError(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return &UpstreamError{StatusCode: status}
	}
}

func transportError(err error) error {
	return &UpstreamError{StatusCode: http.StatusBadGateway, Err: err}
}

// retryable is true for failures worth repeating, transport errors and 5xx answers
func retryable(err error) bool {
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		return false
	}
	return upstream.StatusCode >= http.StatusInternalServerError
}
