package brain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/scripture"
)

func TestNewAdapterModes(t *testing.T) {
	if a, err := NewAdapter(Config{Mode: "off"}); err != nil || a != nil {
		t.Fatalf("off: adapter = %v, err = %v, want nil/nil", a, err)
	}
	if a, err := NewAdapter(Config{Mode: "mock"}); err != nil || a == nil {
		t.Fatalf("mock: adapter = %v, err = %v", a, err)
	}
	if _, err := NewAdapter(Config{Mode: "http"}); err == nil {
		t.Fatal("http without url: want error")
	}
	if a, err := NewAdapter(Config{Mode: "auto"}); err != nil || a != nil {
		t.Fatalf("auto without url: adapter = %v, err = %v, want nil/nil", a, err)
	}
	a, err := NewAdapter(Config{Mode: "auto", HTTPURL: "http://localhost:9"})
	if err != nil || a == nil {
		t.Fatalf("auto with url: adapter = %v, err = %v", a, err)
	}
	if _, ok := a.(*FallbackAdapter); !ok {
		t.Fatalf("auto with url: adapter type = %T, want *FallbackAdapter", a)
	}
	if _, err := NewAdapter(Config{Mode: "banana"}); err == nil {
		t.Fatal("unknown mode: want error")
	}
}

func TestMockAnalyzeUsesExtractor(t *testing.T) {
	a := NewMockAdapter()
	obs, err := a.Analyze(context.Background(), AnalyzeRequest{Message: "I feel anxious about my job these days"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if obs.Emotion != "anxiety" || obs.LifeArea != "work" {
		t.Fatalf("obs = %+v, want anxiety/work", obs)
	}
}

func TestMockComposeCitesVerse(t *testing.T) {
	a := NewMockAdapter()
	mem := memory.New(memory.Profile{})
	mem.Emotion = "anxiety"
	out, err := a.Compose(context.Background(), ComposeRequest{
		Phase:  memory.PhaseAnswering,
		Memory: mem,
		Citations: []scripture.Citation{{
			Reference: "Bhagavad Gita 2.47",
			Scripture: "Bhagavad Gita",
			Text:      "You have a right to perform your prescribed duties",
		}},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(out, "Bhagavad Gita 2.47") {
		t.Fatalf("Compose output missing citation: %s", out)
	}
}

func TestHTTPAdapterAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analyze" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"emotion": "grief", "emotion_confidence": 0.9})
	}))
	defer srv.Close()

	a := NewHTTPAdapter(srv.URL, time.Second)
	obs, err := a.Analyze(context.Background(), AnalyzeRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if obs.Emotion != "grief" || obs.Source != "brain" {
		t.Fatalf("obs = %+v, want grief from brain", obs)
	}
}

func TestHTTPAdapterRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "take heart"})
	}))
	defer srv.Close()

	a := NewHTTPAdapter(srv.URL, time.Second)
	out, err := a.Compose(context.Background(), ComposeRequest{Phase: memory.PhaseAnswering})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if out != "take heart" {
		t.Fatalf("Compose = %q", out)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
}

func TestHTTPAdapterDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	a := NewHTTPAdapter(srv.URL, time.Second)
	if _, err := a.Compose(context.Background(), ComposeRequest{}); err == nil {
		t.Fatal("want error on 400")
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
}

func TestFallbackServesBackup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	var fellBack string
	a := NewFallbackAdapter(NewHTTPAdapter(srv.URL, time.Second), NewMockAdapter(), func(op string) { fellBack = op })

	out, err := a.Compose(context.Background(), ComposeRequest{Phase: memory.PhaseListening})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if out == "" {
		t.Fatal("Compose empty from backup")
	}
	if fellBack != "compose" {
		t.Fatalf("fallback op = %q, want compose", fellBack)
	}
}
