// Package app assembles the service from configuration.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/brain"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/config"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/engine"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/httpapi"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/observability"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/respond"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/safety"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/scripture"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/session"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/pkg/log"
)

// App is the wired service.
type App struct {
	Handler  http.Handler
	Sessions *session.Manager
	Metrics  *observability.Metrics

	cleanups []func()
}

// Close releases resources in reverse wiring order.
func (a *App) Close() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
}

// Build wires stores, collaborators and the engine from cfg.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)
	a.Metrics = metrics

	store, err := session.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	a.cleanups = append(a.cleanups, store.Close)

	retriever, err := scripture.NewRetriever(ctx, cfg.DatabaseURL)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("scripture retriever: %w", err)
	}
	a.cleanups = append(a.cleanups, retriever.Close)

	adapter, err := brain.NewAdapter(brain.Config{
		Mode:    cfg.BrainMode,
		HTTPURL: cfg.BrainHTTPURL,
		Timeout: cfg.BrainTimeout,
		OnFallback: func(op string) {
			metrics.CollaboratorFallback.WithLabelValues(op).Inc()
		},
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("brain adapter: %w", err)
	}
	if adapter != nil {
		log.FromCtx(ctx).Info().Str("adapter", adapter.Name()).Msg("brain collaborator enabled")
	} else {
		log.FromCtx(ctx).Info().Msg("running on deterministic rules only")
	}

	mgr := session.NewManager(store, cfg.SessionTTL)
	mgr.OnExpire = func(string) { metrics.SessionEvents.WithLabelValues("expired").Inc() }
	mgr.OnCount = func(n int) { metrics.ActiveSessions.Set(float64(n)) }
	a.Sessions = mgr

	policy := engine.Policy{
		MinClarificationTurns: cfg.MinClarificationTurns,
		MaxClarificationTurns: cfg.MaxClarificationTurns,
		MinQuotes:             cfg.MinQuotes,
		StrictMinQuotes:       cfg.StrictMinQuotes,
		ReadinessThreshold:    cfg.ReadinessThreshold,
		Strict:                adapter != nil,
	}

	eng := engine.NewEngine(
		mgr,
		respond.NewComposer(retriever),
		adapter,
		safety.NewValidator(cfg.CrisisDetection),
		metrics,
		policy,
		cfg.MaxMessageChars,
		cfg.DisengageMaxChars,
	)

	a.Handler = httpapi.NewServer(eng, mgr, metrics, cfg.AllowAnyOrigin)
	return a, nil
}
