package brain

import (
	"context"
	"fmt"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
)

// MockAdapter is a deterministic stand-in used in tests and as the fallback
// backup. Analyze runs the keyword extractor; Compose produces a minimal
// phase-shaped response.
type MockAdapter struct {
	extractor *signal.Extractor
}

func NewMockAdapter() *MockAdapter {
	return &MockAdapter{extractor: signal.NewExtractor()}
}

func (a *MockAdapter) Name() string { return "mock" }

func (a *MockAdapter) Analyze(_ context.Context, req AnalyzeRequest) (signal.Observation, error) {
	return a.extractor.Extract(req.Message), nil
}

func (a *MockAdapter) Compose(_ context.Context, req ComposeRequest) (string, error) {
	switch req.Phase {
	case memory.PhaseAnswering, memory.PhaseSynthesis:
		base := "Thank you for sharing what weighs on you."
		if req.Memory.Emotion != "" {
			base = fmt.Sprintf("I hear the %s you are carrying.", req.Memory.Emotion)
		}
		if len(req.Citations) > 0 {
			c := req.Citations[0]
			return fmt.Sprintf("%s As %s says: %q. Sit with that for a moment today.", base, c.Reference, c.Text), nil
		}
		return base + " Let us look at this together, one small step at a time.", nil
	case memory.PhaseClosure:
		return "May you carry some of this peace with you. I am here whenever you wish to talk again.", nil
	default:
		return "I am listening. Tell me more about what has been happening.", nil
	}
}
