// Package brain talks to an optional language-model sidecar that can analyze
// messages and compose responses with more nuance than the built-in rules.
// The engine treats it as advisory: every operation has a deterministic
// in-process fallback.
package brain

import (
	"context"
	"fmt"
	"time"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/scripture"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
)

// AnalyzeRequest asks the collaborator to extract signals from one message.
type AnalyzeRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
	Turn     int    `json:"turn"`
}

// ComposeRequest asks the collaborator for a phase-appropriate response.
type ComposeRequest struct {
	Phase     memory.Phase              `json:"phase"`
	Memory    memory.ConversationMemory `json:"memory"`
	Citations []scripture.Citation      `json:"citations,omitempty"`
	Language  string                    `json:"language,omitempty"`
}

// Adapter is the collaborator surface. Implementations must be safe for
// concurrent use.
type Adapter interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (signal.Observation, error)
	Compose(ctx context.Context, req ComposeRequest) (string, error)
	Name() string
}

// Config selects and parameterizes the adapter.
type Config struct {
	// Mode is one of auto, http, mock, off.
	Mode    string
	HTTPURL string
	Timeout time.Duration

	// OnFallback is invoked when the primary adapter fails and the backup
	// serves, with the operation name. May be nil.
	OnFallback func(op string)
}

// NewAdapter builds an adapter for the configured mode. Mode off returns
// nil: the engine then runs purely on its deterministic rules.
func NewAdapter(cfg Config) (Adapter, error) {
	switch cfg.Mode {
	case "off":
		return nil, nil
	case "mock":
		return NewMockAdapter(), nil
	case "http":
		if cfg.HTTPURL == "" {
			return nil, fmt.Errorf("brain mode http requires a url")
		}
		return NewHTTPAdapter(cfg.HTTPURL, cfg.Timeout), nil
	case "auto", "":
		if cfg.HTTPURL == "" {
			return nil, nil
		}
		primary := NewHTTPAdapter(cfg.HTTPURL, cfg.Timeout)
		return NewFallbackAdapter(primary, NewMockAdapter(), cfg.OnFallback), nil
	}
	return nil, fmt.Errorf("unknown brain mode %q", cfg.Mode)
}
