// Package reliability classifies collaborator failures and paces retries.
package reliability

import (
	"math"
	"net/http"
	"time"
)

// IsRetryableStatus reports whether an HTTP status from a collaborator is
// worth retrying. Client errors are not: the request will not get better.
func IsRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Backoff returns the delay before retry attempt n (0-based): base doubled
// per attempt, capped at max.
func Backoff(n int, base, max time.Duration) time.Duration {
	if n < 0 {
		n = 0
	}
	d := time.Duration(float64(base) * math.Pow(2, float64(n)))
	if d > max || d <= 0 {
		return max
	}
	return d
}
