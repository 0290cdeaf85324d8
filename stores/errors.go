package stores

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoPrice reports that a results page rendered but yielded no usable
// price candidate.
var ErrNoPrice = errors.New("no price found")

// NavigationError indicates the results page could not be loaded.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// ExtractionError indicates the rendered page could not be read or parsed.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract candidates: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// MissLabel classifies a SearchPrice miss for metrics labels.
func MissLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoPrice):
		return "empty"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		var nav *NavigationError
		if errors.As(err, &nav) {
			return "navigation"
		}
		var ext *ExtractionError
		if errors.As(err, &ext) {
			return "extraction"
		}
		return "other"
	}
}
