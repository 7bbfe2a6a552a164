// Package memory holds the per-session conversation state: the phase, the
// signals accumulated across turns, and the bookkeeping the engine needs to
// avoid repeating itself.
package memory

import (
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
)

// Phase is the conversation stage. Transitions are decided by the engine;
// memory only records the current value.
type Phase string

const (
	PhaseListening     Phase = "listening"
	PhaseClarification Phase = "clarification"
	PhaseSynthesis     Phase = "synthesis"
	PhaseAnswering     Phase = "answering"
	PhaseClosure       Phase = "closure"
)

// Valid reports whether p is one of the defined phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseListening, PhaseClarification, PhaseSynthesis, PhaseAnswering, PhaseClosure:
		return true
	}
	return false
}

// Guidance reports whether p is a phase in which guidance is delivered.
func (p Phase) Guidance() bool {
	return p == PhaseSynthesis || p == PhaseAnswering
}

// EmotionRecord is one step of the emotional arc.
type EmotionRecord struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Turn       int     `json:"turn"`
}

// Profile is identity the caller may hand in at session creation; extraction
// can fill gaps but never overwrites provided values.
type Profile struct {
	Name       string `json:"name,omitempty"`
	AgeGroup   string `json:"age_group,omitempty"`
	Profession string `json:"profession,omitempty"`
	Language   string `json:"language,omitempty"`
}

// ConversationMemory accumulates what the companion has learned. Set-once
// fields keep the first substantive value; emotion may be superseded by a
// higher-confidence observation; list fields append with deduplication.
type ConversationMemory struct {
	Phase     Phase `json:"phase"`
	TurnCount int   `json:"turn_count"`

	Profile Profile `json:"profile,omitempty"`

	Emotion           string  `json:"emotion,omitempty"`
	EmotionConfidence float64 `json:"emotion_confidence,omitempty"`
	EmotionSource     string  `json:"emotion_source,omitempty"`
	PrimaryConcern    string  `json:"primary_concern,omitempty"`
	LifeArea          string  `json:"life_area,omitempty"`
	Trigger           string  `json:"trigger,omitempty"`
	Duration          string  `json:"duration,omitempty"`

	Fears  []string `json:"fears,omitempty"`
	Needs  []string `json:"needs,omitempty"`
	Quotes []string `json:"quotes,omitempty"`
	Topics []string `json:"topics,omitempty"`

	EmotionalArc []EmotionRecord `json:"emotional_arc,omitempty"`
	Concepts     []string        `json:"concepts,omitempty"`

	DisengagementCount      int    `json:"disengagement_count,omitempty"`
	ProbePending            bool   `json:"probe_pending,omitempty"`
	LastGuidanceTurn        int    `json:"last_guidance_turn,omitempty"`
	LastResponseFingerprint string `json:"last_response_fingerprint,omitempty"`
	ProbeRotation           int    `json:"probe_rotation,omitempty"`
	CloseRotation           int    `json:"close_rotation,omitempty"`

	LastIdempotencyKey string `json:"last_idempotency_key,omitempty"`
	CachedResponse     string `json:"cached_response,omitempty"`
}

// New returns memory for a fresh session, optionally seeded from a profile.
func New(p Profile) ConversationMemory {
	m := ConversationMemory{Phase: PhaseListening, Profile: p}
	if p.Profession != "" {
		m.Topics = appendUnique(m.Topics, "profession:"+p.Profession)
	}
	return m
}

// Merge folds one observation into memory. turn is the turn the observation
// came from, used for the emotional arc.
func (m *ConversationMemory) Merge(obs signal.Observation, turn int) {
	if obs.Minimal {
		return
	}
	if obs.Emotion != "" {
		supersede := m.Emotion == "" ||
			(obs.Emotion != m.Emotion && obs.EmotionConfidence > m.EmotionConfidence)
		if supersede {
			m.Emotion = obs.Emotion
			m.EmotionConfidence = obs.EmotionConfidence
			m.EmotionSource = obs.Source
			m.mergeConcepts(EmotionConceptsFor(obs.Emotion))
		}
		if n := len(m.EmotionalArc); n == 0 || m.EmotionalArc[n-1].Emotion != obs.Emotion {
			m.EmotionalArc = append(m.EmotionalArc, EmotionRecord{
				Emotion:    obs.Emotion,
				Confidence: obs.EmotionConfidence,
				Turn:       turn,
			})
		}
	}
	if m.PrimaryConcern == "" && obs.PrimaryConcern != "" {
		m.PrimaryConcern = obs.PrimaryConcern
	}
	if m.LifeArea == "" && obs.LifeArea != "" {
		m.LifeArea = obs.LifeArea
		m.mergeConcepts(LifeAreaConceptsFor(obs.LifeArea))
	}
	if m.Trigger == "" && obs.Trigger != "" {
		m.Trigger = obs.Trigger
	}
	if m.Duration == "" && obs.Duration != "" {
		m.Duration = obs.Duration
	}
	if m.Profile.Profession == "" && obs.Profession != "" {
		m.Profile.Profession = obs.Profession
	}
	for _, f := range obs.Fears {
		m.Fears = appendUnique(m.Fears, f)
	}
	for _, n := range obs.Needs {
		m.Needs = appendUnique(m.Needs, n)
	}
	for _, tp := range obs.Topics {
		m.Topics = appendUnique(m.Topics, tp)
	}
	if obs.Quote != "" {
		m.Quotes = appendUnique(m.Quotes, obs.Quote)
	}
}

func (m *ConversationMemory) mergeConcepts(concepts []string) {
	for _, c := range concepts {
		m.Concepts = appendUnique(m.Concepts, c)
	}
}

// SignalsSummary returns the collected signals in the shape the API exposes.
func (m *ConversationMemory) SignalsSummary() map[string]any {
	out := map[string]any{}
	if m.Emotion != "" {
		out["emotion"] = m.Emotion
	}
	if m.PrimaryConcern != "" {
		out["primary_concern"] = m.PrimaryConcern
	}
	if m.LifeArea != "" {
		out["life_area"] = m.LifeArea
	}
	if m.Trigger != "" {
		out["trigger"] = m.Trigger
	}
	if m.Duration != "" {
		out["duration"] = m.Duration
	}
	if len(m.Fears) > 0 {
		out["fears"] = m.Fears
	}
	if len(m.Needs) > 0 {
		out["needs"] = m.Needs
	}
	if len(m.Quotes) > 0 {
		out["quote_count"] = len(m.Quotes)
	}
	return out
}

// EmotionConceptsFor and LifeAreaConceptsFor expose the concept tables
// without forcing callers to import the signal package.
func EmotionConceptsFor(emotion string) []string { return signal.EmotionConcepts[emotion] }
func LifeAreaConceptsFor(area string) []string   { return signal.LifeAreaConcepts[area] }

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
