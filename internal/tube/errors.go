package tube

import (
	"errors"
	"fmt"
)

// Sentinel failure classes. Every stage of the pipeline either returns a
// value wrapped in one of these or a best-effort partial entity; callers are
// never left in an indeterminate state.
var (
	// ErrNetwork covers transport failures, timeouts and non-2xx statuses.
	ErrNetwork = errors.New("network failure")
	// ErrMalformedData means a located JSON span could not be parsed.
	ErrMalformedData = errors.New("malformed embedded data")
	// ErrNotFound means no recognizable schema matched, or the primary
	// identifier was missing from every strategy.
	ErrNotFound = errors.New("entity not found")
	// ErrDecode means a cache payload or response body was corrupt.
	ErrDecode = errors.New("decode failure")
)

// NetworkError wraps err so it matches ErrNetwork.
func NetworkError(op string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", op, ErrNetwork)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrNetwork, err)
}

// StatusError reports a non-2xx HTTP response as a network failure.
func StatusError(op string, status int) error {
	return fmt.Errorf("%s: %w: status %d", op, ErrNetwork, status)
}

// MalformedDataError wraps a JSON parse failure on a located span.
func MalformedDataError(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedData, err)
}

// NotFoundError reports schema resolution failure for one entity.
func NotFoundError(kind Kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}

// DecodeError wraps a corrupt payload failure.
func DecodeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrDecode, err)
}
