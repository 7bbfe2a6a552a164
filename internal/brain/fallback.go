package brain

import (
	"context"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
)

// FallbackAdapter tries the primary and, on any error, serves from the
// backup so a sidecar outage never breaks a conversation.
type FallbackAdapter struct {
	primary    Adapter
	backup     Adapter
	onFallback func(op string)
}

func NewFallbackAdapter(primary, backup Adapter, onFallback func(op string)) *FallbackAdapter {
	return &FallbackAdapter{primary: primary, backup: backup, onFallback: onFallback}
}

func (a *FallbackAdapter) Name() string { return a.primary.Name() + "+" + a.backup.Name() }

func (a *FallbackAdapter) Analyze(ctx context.Context, req AnalyzeRequest) (signal.Observation, error) {
	obs, err := a.primary.Analyze(ctx, req)
	if err == nil {
		return obs, nil
	}
	a.note("analyze")
	return a.backup.Analyze(ctx, req)
}

func (a *FallbackAdapter) Compose(ctx context.Context, req ComposeRequest) (string, error) {
	out, err := a.primary.Compose(ctx, req)
	if err == nil {
		return out, nil
	}
	a.note("compose")
	return a.backup.Compose(ctx, req)
}

func (a *FallbackAdapter) note(op string) {
	if a.onFallback != nil {
		a.onFallback(op)
	}
}
