package reliability

import (
	"testing"
	"time"
)

func TestIsRetryableStatus(t *testing.T) {
	retryable := []int{408, 429, 500, 502, 503, 504}
	for _, s := range retryable {
		if !IsRetryableStatus(s) {
			t.Fatalf("IsRetryableStatus(%d) = false, want true", s)
		}
	}
	for _, s := range []int{200, 201, 400, 401, 403, 404, 422} {
		if IsRetryableStatus(s) {
			t.Fatalf("IsRetryableStatus(%d) = true, want false", s)
		}
	}
}

func TestBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	max := 2 * time.Second
	if got := Backoff(0, base, max); got != base {
		t.Fatalf("Backoff(0) = %v, want %v", got, base)
	}
	if got := Backoff(2, base, max); got != 400*time.Millisecond {
		t.Fatalf("Backoff(2) = %v, want 400ms", got)
	}
	if got := Backoff(10, base, max); got != max {
		t.Fatalf("Backoff(10) = %v, want capped at %v", got, max)
	}
	if got := Backoff(-1, base, max); got != base {
		t.Fatalf("Backoff(-1) = %v, want %v", got, base)
	}
}
