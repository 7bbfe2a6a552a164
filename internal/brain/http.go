package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/reliability"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
)

const (
	maxAttempts  = 3
	retryBase    = 200 * time.Millisecond
	retryMax     = 2 * time.Second
	maxRespBytes = 1 << 20
)

// HTTPAdapter calls the sidecar over JSON POST endpoints /v1/analyze and
// /v1/compose. Transient failures are retried with backoff inside the
// request context's deadline.
type HTTPAdapter struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAdapter(baseURL string, timeout time.Duration) *HTTPAdapter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPAdapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (a *HTTPAdapter) Name() string { return "http" }

func (a *HTTPAdapter) Analyze(ctx context.Context, req AnalyzeRequest) (signal.Observation, error) {
	var obs signal.Observation
	if err := a.post(ctx, "/v1/analyze", req, &obs); err != nil {
		return signal.Observation{}, err
	}
	if obs.Source == "" {
		obs.Source = "brain"
	}
	return obs, nil
}

func (a *HTTPAdapter) Compose(ctx context.Context, req ComposeRequest) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	if err := a.post(ctx, "/v1/compose", req, &out); err != nil {
		return "", err
	}
	if out.Response == "" {
		return "", fmt.Errorf("compose: empty response from sidecar")
	}
	return out.Response, nil
}

func (a *HTTPAdapter) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(reliability.Backoff(attempt-1, retryBase, retryMax)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := a.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			err = json.NewDecoder(io.LimitReader(resp.Body, maxRespBytes)).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil
		}

		io.Copy(io.Discard, io.LimitReader(resp.Body, maxRespBytes))
		resp.Body.Close()
		lastErr = fmt.Errorf("status %d", resp.StatusCode)
		if !reliability.IsRetryableStatus(resp.StatusCode) {
			return fmt.Errorf("sidecar %s: %w", path, lastErr)
		}
	}
	return fmt.Errorf("sidecar %s after %d attempts: %w", path, maxAttempts, lastErr)
}
