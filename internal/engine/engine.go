// Package engine drives the conversation: one HandleTurn call takes a user
// message and produces the companion's reply, advancing the session's phase
// and memory under the session manager's per-session lock.
package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/brain"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/observability"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/respond"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/safety"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/scripture"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/session"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/pkg/log"
)

// TurnRequest is one user message aimed at a session. An empty SessionID
// starts a new session transparently.
type TurnRequest struct {
	SessionID      string
	UserID         string
	Message        string
	Language       string
	IdempotencyKey string
	Profile        memory.Profile
}

// TurnResult is everything a caller needs to render the reply.
type TurnResult struct {
	SessionID        string               `json:"session_id"`
	Phase            memory.Phase         `json:"phase"`
	Response         string               `json:"response"`
	Citations        []scripture.Citation `json:"citations,omitempty"`
	SignalsCollected map[string]any       `json:"signals_collected"`
	TurnCount        int                  `json:"turn_count"`
	IsComplete       bool                 `json:"is_complete"`
}

// Engine wires the collaborators behind HandleTurn.
type Engine struct {
	sessions  *session.Manager
	composer  *respond.Composer
	brain     brain.Adapter
	extractor *signal.Extractor
	validator *safety.Validator
	metrics   *observability.Metrics
	policy    Policy

	maxMessageChars   int
	disengageMaxChars int
}

func NewEngine(
	sessions *session.Manager,
	composer *respond.Composer,
	adapter brain.Adapter,
	validator *safety.Validator,
	metrics *observability.Metrics,
	policy Policy,
	maxMessageChars, disengageMaxChars int,
) *Engine {
	return &Engine{
		sessions:          sessions,
		composer:          composer,
		brain:             adapter,
		extractor:         signal.NewExtractor(),
		validator:         validator,
		metrics:           metrics,
		policy:            policy,
		maxMessageChars:   maxMessageChars,
		disengageMaxChars: disengageMaxChars,
	}
}

// StartSession creates a session and returns it with the opening message.
func (e *Engine) StartSession(ctx context.Context, userID string, profile memory.Profile) (session.Session, string, error) {
	sess, err := e.sessions.Create(ctx, userID, profile)
	if err != nil {
		return session.Session{}, "", err
	}
	e.metrics.SessionEvents.WithLabelValues("created").Inc()
	return sess, respond.WelcomeMessage, nil
}

// HandleTurn processes one message. An unknown or expired session id is
// replaced with a fresh session rather than failing the turn.
func (e *Engine) HandleTurn(ctx context.Context, req TurnRequest) (TurnResult, error) {
	start := time.Now()

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return e.invalidInput(ctx, req, respond.EmptyMessagePrompt)
	}
	if e.maxMessageChars > 0 && len(msg) > e.maxMessageChars {
		return e.invalidInput(ctx, req, respond.OversizedMessagePrompt)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sess, _, err := e.StartSession(ctx, req.UserID, req.Profile)
		if err != nil {
			return TurnResult{}, err
		}
		sessionID = sess.ID
	}

	var result TurnResult
	run := func() error {
		return e.sessions.WithSession(ctx, sessionID, func(s *session.Session) error {
			var err error
			result, err = e.turn(ctx, s, msg, req)
			return err
		})
	}
	err := run()
	if errors.Is(err, session.ErrNotFound) {
		sess, _, cerr := e.StartSession(ctx, req.UserID, req.Profile)
		if cerr != nil {
			return TurnResult{}, cerr
		}
		sessionID = sess.ID
		err = run()
	}
	if err != nil {
		return TurnResult{}, err
	}

	e.metrics.Turns.WithLabelValues(string(result.Phase)).Inc()
	e.metrics.TurnLatency.Observe(float64(time.Since(start).Milliseconds()))
	return result, nil
}

// invalidInput answers empty or oversized messages with a neutral prompt.
// The turn does not count and memory is untouched.
func (e *Engine) invalidInput(ctx context.Context, req TurnRequest, prompt string) (TurnResult, error) {
	if req.SessionID != "" {
		sess, err := e.sessions.Get(ctx, req.SessionID)
		if err == nil {
			return TurnResult{
				SessionID:        sess.ID,
				Phase:            sess.Memory.Phase,
				Response:         prompt,
				SignalsCollected: sess.Memory.SignalsSummary(),
				TurnCount:        sess.Memory.TurnCount,
			}, nil
		}
	}
	return TurnResult{
		SessionID:        req.SessionID,
		Phase:            memory.PhaseListening,
		Response:         prompt,
		SignalsCollected: map[string]any{},
	}, nil
}

func (e *Engine) turn(ctx context.Context, s *session.Session, msg string, req TurnRequest) (TurnResult, error) {
	mem := &s.Memory

	if req.IdempotencyKey != "" && req.IdempotencyKey == mem.LastIdempotencyKey && mem.CachedResponse != "" {
		return e.result(s, mem.CachedResponse, nil), nil
	}

	if e.validator.IsCrisis(msg) {
		// The crisis reply bypasses extraction entirely, so the turn
		// counter stays where it is.
		e.metrics.CrisisInterventions.Inc()
		log.FromCtx(ctx).Warn().Str("session_id", s.ID).Msg("crisis language detected")
		e.cache(mem, req.IdempotencyKey, safety.CrisisResponse)
		return e.result(s, safety.CrisisResponse, nil), nil
	}

	before := e.policy.Clamp(mem.Phase, mem)
	if before != mem.Phase {
		log.FromCtx(ctx).Warn().
			Str("session_id", s.ID).
			Str("from", string(mem.Phase)).
			Str("to", string(before)).
			Msg("inconsistent phase clamped")
	}

	disengaged := Disengaged(msg, before, e.disengageMaxChars)
	obs := e.analyze(ctx, msg, req.Language, mem.TurnCount+1)

	mem.TurnCount++
	if disengaged {
		mem.DisengagementCount++
		mem.ProbePending = true
		e.metrics.Disengagements.Inc()
	} else {
		mem.Merge(obs, mem.TurnCount)
		if !obs.Minimal {
			mem.ProbePending = false
		}
	}

	farewell := !disengaged && before.Guidance() && isFarewell(msg)
	continues := !disengaged && obs.HasSignals()
	next := e.policy.Next(before, mem, disengaged, farewell, continues)
	if next != before {
		e.metrics.PhaseTransitions.WithLabelValues(string(before), string(next)).Inc()
	}
	mem.Phase = next

	composed, err := e.composer.Compose(ctx, mem, disengaged)
	if err != nil {
		return TurnResult{}, err
	}
	text := composed.Text

	if e.brain != nil && next.Guidance() && !disengaged {
		out, berr := e.brain.Compose(ctx, brain.ComposeRequest{
			Phase:     next,
			Memory:    *mem,
			Citations: composed.Citations,
			Language:  req.Language,
		})
		if berr == nil && out != "" {
			text = out
		} else if berr != nil {
			e.metrics.CollaboratorFallback.WithLabelValues("compose").Inc()
		}
	}

	text = e.validator.Soften(text)

	fp := respond.Fingerprint(text)
	if next.Guidance() {
		if fp == mem.LastResponseFingerprint {
			// The collaborator repeated itself; the deterministic
			// composer already rotated away from the last reply.
			text = e.validator.Soften(composed.Text)
			fp = respond.Fingerprint(text)
		}
		mem.LastGuidanceTurn = mem.TurnCount
	}
	mem.LastResponseFingerprint = fp

	snippet := msg
	if len(snippet) > 60 {
		snippet = snippet[:60]
	}
	log.FromCtx(ctx).Debug().
		Str("session_id", s.ID).
		Int("turn", mem.TurnCount).
		Str("phase", string(next)).
		Str("snippet", safety.RedactPII(snippet)).
		Msg("turn processed")

	e.cache(mem, req.IdempotencyKey, text)
	return e.result(s, text, composed.Citations), nil
}

// analyze prefers the external collaborator and falls back to the keyword
// extractor on any failure.
func (e *Engine) analyze(ctx context.Context, msg, language string, turn int) signal.Observation {
	if e.brain == nil {
		return e.extractor.Extract(msg)
	}
	obs, err := e.brain.Analyze(ctx, brain.AnalyzeRequest{Message: msg, Language: language, Turn: turn})
	if err != nil {
		e.metrics.CollaboratorFallback.WithLabelValues("analyze").Inc()
		log.FromCtx(ctx).Warn().Err(err).Msg("analyze fell back to keyword extraction")
		return e.extractor.Extract(msg)
	}
	return obs
}

func (e *Engine) cache(mem *memory.ConversationMemory, key, text string) {
	if key == "" {
		return
	}
	mem.LastIdempotencyKey = key
	mem.CachedResponse = text
}

func (e *Engine) result(s *session.Session, text string, citations []scripture.Citation) TurnResult {
	return TurnResult{
		SessionID:        s.ID,
		Phase:            s.Memory.Phase,
		Response:         text,
		Citations:        citations,
		SignalsCollected: s.Memory.SignalsSummary(),
		TurnCount:        s.Memory.TurnCount,
		IsComplete:       s.Memory.Phase == memory.PhaseClosure,
	}
}

var farewellMarkers = []string{"thank you", "thanks", "goodbye", "bye", "that helps", "i feel better", "feeling better"}

func isFarewell(msg string) bool {
	lower := strings.ToLower(msg)
	for _, m := range farewellMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
