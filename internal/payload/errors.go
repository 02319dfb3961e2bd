package payload

import "errors"

// Failure kinds shared by the polled sources. Callers handle all three the
// same way (warn, restore from cache) but they are kept apart for logging
// and metrics.
var (
	ErrNetwork      = errors.New("network error")
	ErrEmptyPayload = errors.New("empty payload")
	ErrShape        = errors.New("unrecognized payload shape")
)

// Kind returns a short label for err, suitable for a metric label.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrEmptyPayload):
		return "empty"
	case errors.Is(err, ErrShape):
		return "shape"
	default:
		return "unknown"
	}
}
