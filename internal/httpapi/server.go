// Package httpapi exposes the conversation engine over HTTP and websocket.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/engine"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/observability"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/session"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/pkg/log"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("empty request body")

// Server holds the HTTP surface.
type Server struct {
	engine         *engine.Engine
	sessions       *session.Manager
	metrics        *observability.Metrics
	allowAnyOrigin bool
	router         chi.Router
}

func NewServer(eng *engine.Engine, sessions *session.Manager, metrics *observability.Metrics, allowAnyOrigin bool) *Server {
	s := &Server{
		engine:         eng,
		sessions:       sessions,
		metrics:        metrics,
		allowAnyOrigin: allowAnyOrigin,
	}
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/session", s.handleCreateSession)
		r.Get("/session/{id}", s.handleGetSession)
		r.Delete("/session/{id}", s.handleDeleteSession)
		r.Post("/conversation", s.handleTurn)
		r.Get("/conversation/ws", s.handleWS)
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type createSessionRequest struct {
	UserID  string         `json:"user_id,omitempty"`
	Profile memory.Profile `json:"user_profile,omitempty"`
}

type createSessionResponse struct {
	SessionID string       `json:"session_id"`
	Phase     memory.Phase `json:"phase"`
	Welcome   string       `json:"welcome"`
	CreatedAt time.Time    `json:"created_at"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, welcome, err := s.engine.StartSession(r.Context(), req.UserID, req.Profile)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("create session failed")
		respondError(w, http.StatusInternalServerError, "could not create session")
		return
	}
	respondJSON(w, http.StatusCreated, createSessionResponse{
		SessionID: sess.ID,
		Phase:     sess.Memory.Phase,
		Welcome:   welcome,
		CreatedAt: sess.CreatedAt,
	})
}

type sessionStateResponse struct {
	SessionID        string         `json:"session_id"`
	Phase            memory.Phase   `json:"phase"`
	TurnCount        int            `json:"turn_count"`
	SignalsCollected map[string]any `json:"signals_collected"`
	CreatedAt        time.Time      `json:"created_at"`
	LastActivityAt   time.Time      `json:"last_activity_at"`
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.Get(r.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("get session failed")
		respondError(w, http.StatusInternalServerError, "could not load session")
		return
	}
	respondJSON(w, http.StatusOK, sessionStateResponse{
		SessionID:        sess.ID,
		Phase:            sess.Memory.Phase,
		TurnCount:        sess.Memory.TurnCount,
		SignalsCollected: sess.Memory.SignalsSummary(),
		CreatedAt:        sess.CreatedAt,
		LastActivityAt:   sess.LastActivityAt,
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	switch err := s.sessions.Delete(r.Context(), id); {
	case err == nil:
		s.metrics.SessionEvents.WithLabelValues("deleted").Inc()
	case errors.Is(err, session.ErrNotFound):
		// Idempotent: a session that is already gone is a success.
	default:
		log.FromCtx(r.Context()).Error().Err(err).Msg("delete session failed")
		respondError(w, http.StatusInternalServerError, "could not delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type turnRequest struct {
	SessionID      string         `json:"session_id,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	Message        string         `json:"message"`
	Language       string         `json:"language,omitempty"`
	Profile        memory.Profile `json:"user_profile,omitempty"`
	IdempotencyKey string         `json:"idempotency_key,omitempty"`
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := s.engine.HandleTurn(r.Context(), engine.TurnRequest{
		SessionID:      req.SessionID,
		UserID:         req.UserID,
		Message:        req.Message,
		Language:       req.Language,
		Profile:        req.Profile,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("turn failed")
		respondError(w, http.StatusInternalServerError, "could not process message")
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":          "ready",
		"active_sessions": s.sessions.ActiveCount(r.Context()),
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(body, v)
}
