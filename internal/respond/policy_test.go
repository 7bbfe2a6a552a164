package respond

import (
	"context"
	"strings"
	"testing"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/scripture"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
)

func newTestComposer() *Composer {
	return NewComposer(scripture.NewLibrary())
}

func TestProbeRotatesWithinPool(t *testing.T) {
	c := newTestComposer()
	mem := memory.New(memory.Profile{})
	mem.Phase = memory.PhaseClarification
	mem.LifeArea = "work"

	r1, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	r2, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if r1.Text == r2.Text {
		t.Fatalf("consecutive probes identical: %q", r1.Text)
	}
	if !strings.Contains(r1.Text, "work") {
		t.Fatalf("probe not area-specific: %q", r1.Text)
	}
}

func TestFirstProbeAcknowledgesEmotion(t *testing.T) {
	c := newTestComposer()
	mem := memory.New(memory.Profile{})
	mem.Phase = memory.PhaseClarification
	mem.Emotion = "sadness"

	r, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.HasPrefix(r.Text, acknowledgments["sadness"]) {
		t.Fatalf("first probe missing acknowledgment: %q", r.Text)
	}
}

func TestDisengagedProbeComesFromReengagementPool(t *testing.T) {
	c := newTestComposer()
	mem := memory.New(memory.Profile{})
	mem.Phase = memory.PhaseClarification
	mem.DisengagementCount = 1

	r, err := c.Compose(context.Background(), &mem, true)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if r.Text != reengagementProbes[0] {
		t.Fatalf("probe = %q, want first re-engagement probe", r.Text)
	}
	if !strings.HasSuffix(r.Text, "?") {
		t.Fatalf("re-engagement probe is not a question: %q", r.Text)
	}
}

func TestSynthesisReflectsSignals(t *testing.T) {
	c := newTestComposer()
	mem := memory.New(memory.Profile{})
	mem.Phase = memory.PhaseSynthesis
	mem.Merge(signal.Observation{
		Emotion: "stress", EmotionConfidence: 0.6,
		PrimaryConcern: "there is no peace in my life",
		LifeArea:       "work",
		Duration:       "for months",
		Needs:          []string{"peace"},
	}, 1)

	r, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	for _, want := range []string{"stress", "for months", "work", "peace", "Have I understood"} {
		if !strings.Contains(r.Text, want) {
			t.Fatalf("synthesis missing %q: %s", want, r.Text)
		}
	}
}

func TestGuidanceIncludesVerseAndStep(t *testing.T) {
	c := newTestComposer()
	mem := memory.New(memory.Profile{})
	mem.Phase = memory.PhaseAnswering
	mem.Merge(signal.Observation{Emotion: "anxiety", EmotionConfidence: 1.0, LifeArea: "work"}, 1)

	r, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(r.Citations) == 0 {
		t.Fatal("guidance has no citations")
	}
	if !strings.Contains(r.Text, r.Citations[0].Reference) {
		t.Fatalf("guidance does not quote its citation: %s", r.Text)
	}
	if !strings.Contains(r.Text, practicalSteps["anxiety"]) {
		t.Fatalf("guidance missing practical step: %s", r.Text)
	}
}

func TestConsecutiveGuidanceDiffers(t *testing.T) {
	c := newTestComposer()
	mem := memory.New(memory.Profile{})
	mem.Phase = memory.PhaseAnswering
	mem.Merge(signal.Observation{Emotion: "sadness", EmotionConfidence: 1.0}, 1)

	r1, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	mem.LastResponseFingerprint = Fingerprint(r1.Text)
	r2, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if r1.Text == r2.Text {
		t.Fatal("consecutive guidance responses identical")
	}
}

func TestClosurePhase(t *testing.T) {
	c := newTestComposer()
	mem := memory.New(memory.Profile{})
	mem.Phase = memory.PhaseClosure
	r, err := c.Compose(context.Background(), &mem, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if r.Text != ClosureMessage {
		t.Fatalf("closure = %q", r.Text)
	}
}

func TestBuildSearchQuery(t *testing.T) {
	mem := memory.New(memory.Profile{})
	mem.Merge(signal.Observation{
		Emotion: "anxiety", EmotionConfidence: 1.0,
		PrimaryConcern: "my deadlines keep slipping and sleep is gone",
		Needs:          []string{"peace"},
	}, 1)
	q := BuildSearchQuery(&mem)
	if q.Emotion != "anxiety" {
		t.Fatalf("Emotion = %q", q.Emotion)
	}
	if len(q.Concepts) == 0 {
		t.Fatal("Concepts empty")
	}
	found := false
	for _, kw := range q.Keywords {
		if kw == "peace" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Keywords = %v, want needs included", q.Keywords)
	}
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("hello")
	if len(a) != 16 {
		t.Fatalf("len = %d, want 16", len(a))
	}
	if a != Fingerprint("hello") {
		t.Fatal("fingerprint not deterministic")
	}
	if a == Fingerprint("hello ") {
		t.Fatal("fingerprint collision on different input")
	}
}
