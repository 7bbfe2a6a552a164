package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/engine"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/observability"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/respond"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/safety"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/scripture"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	metrics := observability.NewMetrics("test")
	mgr := session.NewManager(session.NewInMemoryStore(), time.Hour)
	eng := engine.NewEngine(
		mgr,
		respond.NewComposer(scripture.NewLibrary()),
		nil,
		safety.NewValidator(true),
		metrics,
		engine.Policy{
			MinClarificationTurns: 3,
			MaxClarificationTurns: 10,
			MinQuotes:             1,
			StrictMinQuotes:       3,
			ReadinessThreshold:    0.8,
		},
		4000,
		12,
	)
	return NewServer(eng, mgr, metrics, true)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
}

func TestCreateSession(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/v1/session", map[string]any{
		"user_profile": map[string]string{"name": "Asha"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	var resp createSessionResponse
	decodeBody(t, rec, &resp)
	if resp.SessionID == "" {
		t.Fatal("empty session_id")
	}
	if resp.Phase != "listening" {
		t.Fatalf("phase = %q, want listening", resp.Phase)
	}
	if resp.Welcome == "" {
		t.Fatal("empty welcome")
	}
}

func TestCreateSessionEmptyBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/session", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 for empty body", rec.Code)
	}
}

func TestConversationFlow(t *testing.T) {
	s := newTestServer(t)

	var created createSessionResponse
	decodeBody(t, doJSON(t, s, http.MethodPost, "/v1/session", nil), &created)

	var res engine.TurnResult
	rec := doJSON(t, s, http.MethodPost, "/v1/conversation", map[string]string{
		"session_id": created.SessionID,
		"message":    "I feel so stressed about my work and deadlines",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &res)
	if res.Phase != "clarification" {
		t.Fatalf("phase = %q, want clarification", res.Phase)
	}
	if res.SignalsCollected["emotion"] != "stress" {
		t.Fatalf("signals = %v", res.SignalsCollected)
	}

	// Session state reflects the turn.
	var state sessionStateResponse
	decodeBody(t, doJSON(t, s, http.MethodGet, "/v1/session/"+created.SessionID, nil), &state)
	if state.TurnCount != 1 {
		t.Fatalf("TurnCount = %d, want 1", state.TurnCount)
	}
	if state.Phase != "clarification" {
		t.Fatalf("state phase = %q", state.Phase)
	}
}

func TestTurnWithoutSessionCreatesOne(t *testing.T) {
	s := newTestServer(t)
	var res engine.TurnResult
	rec := doJSON(t, s, http.MethodPost, "/v1/conversation", map[string]string{
		"message": "I feel lost and alone these days",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &res)
	if res.SessionID == "" {
		t.Fatal("empty session_id")
	}
	if res.TurnCount != 1 {
		t.Fatalf("TurnCount = %d, want 1", res.TurnCount)
	}
}

func TestTurnValidation(t *testing.T) {
	s := newTestServer(t)

	// Empty and oversized messages get a neutral prompt, not an error, and
	// do not consume a turn.
	var res engine.TurnResult
	rec := doJSON(t, s, http.MethodPost, "/v1/conversation", map[string]string{"message": "   "})
	if rec.Code != http.StatusOK {
		t.Fatalf("empty message status = %d, want 200", rec.Code)
	}
	decodeBody(t, rec, &res)
	if res.Response == "" || res.TurnCount != 0 {
		t.Fatalf("res = %+v, want prompt with zero turns", res)
	}

	rec = doJSON(t, s, http.MethodPost, "/v1/conversation", map[string]string{"message": strings.Repeat("a", 5000)})
	if rec.Code != http.StatusOK {
		t.Fatalf("long message status = %d, want 200", rec.Code)
	}

	// A malformed body is still a client error.
	req := httptest.NewRequest(http.MethodPost, "/v1/conversation", nil)
	rec2 := httptest.NewRecorder()
	s.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Fatalf("empty body status = %d, want 400", rec2.Code)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/v1/session/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestServer(t)
	var created createSessionResponse
	decodeBody(t, doJSON(t, s, http.MethodPost, "/v1/session", nil), &created)

	rec := doJSON(t, s, http.MethodDelete, "/v1/session/"+created.SessionID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	// Delete is idempotent: repeating it succeeds.
	rec = doJSON(t, s, http.MethodDelete, "/v1/session/"+created.SessionID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("second delete status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, s, http.MethodDelete, "/v1/session/never-existed", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("unknown-id delete status = %d, want 204", rec.Code)
	}
}

func TestHealthAndReady(t *testing.T) {
	s := newTestServer(t)
	if rec := doJSON(t, s, http.MethodGet, "/healthz", nil); rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodGet, "/readyz", nil); rec.Code != http.StatusOK {
		t.Fatalf("readyz status = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/v1/session", nil)
	rec := doJSON(t, s, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test_session_events_total") {
		t.Fatalf("metrics body missing session events counter")
	}
}

func TestWebsocketTurns(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/conversation/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(wsTurn{Message: "I feel so anxious about my job these days"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var res engine.TurnResult
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatalf("read: %v", err)
	}
	if res.SessionID == "" || res.TurnCount != 1 {
		t.Fatalf("res = %+v", res)
	}

	// Same connection continues the same session.
	if err := conn.WriteJSON(wsTurn{Message: "It has been building for months now"}); err != nil {
		t.Fatalf("write 2: %v", err)
	}
	var res2 engine.TurnResult
	if err := conn.ReadJSON(&res2); err != nil {
		t.Fatalf("read 2: %v", err)
	}
	if res2.SessionID != res.SessionID {
		t.Fatalf("session changed across frames: %q vs %q", res2.SessionID, res.SessionID)
	}
	if res2.TurnCount != 2 {
		t.Fatalf("TurnCount = %d, want 2", res2.TurnCount)
	}
}
