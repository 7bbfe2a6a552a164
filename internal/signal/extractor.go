// Package signal turns free-form user text into structured observations:
// emotion, life area, duration, fears, needs, and a representative quote.
// Extraction is keyword-driven and deterministic so the conversation engine
// behaves identically with or without an external analyzer.
package signal

import (
	"strings"
)

const (
	maxQuoteLen     = 150
	minQuoteLen     = 20
	minConcernChars = 20
)

// Observation is the structured output of one message analysis. Zero values
// mean "not observed"; the memory layer decides how observations accumulate
// across turns.
type Observation struct {
	Emotion           string   `json:"emotion,omitempty"`
	EmotionConfidence float64  `json:"emotion_confidence,omitempty"`
	Source            string   `json:"source,omitempty"`
	PrimaryConcern    string   `json:"primary_concern,omitempty"`
	LifeArea          string   `json:"life_area,omitempty"`
	Trigger           string   `json:"trigger,omitempty"`
	Duration          string   `json:"duration,omitempty"`
	Quote             string   `json:"quote,omitempty"`
	Fears             []string `json:"fears,omitempty"`
	Needs             []string `json:"needs,omitempty"`
	Profession        string   `json:"profession,omitempty"`
	Topics            []string `json:"topics,omitempty"`
	Minimal           bool     `json:"minimal,omitempty"`
}

// Extractor performs rule-based signal extraction.
type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

// Extract analyzes one user message. It never fails: a message with no
// recognizable signals yields an Observation with only Minimal set (or
// nothing at all).
func (e *Extractor) Extract(text string) Observation {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	obs := Observation{Source: "keyword"}

	if IsMinimal(trimmed) {
		obs.Minimal = true
		return obs
	}

	if label, conf, ok := matchFirst(lower, emotionRules); ok {
		obs.Emotion = label
		obs.EmotionConfidence = conf
	} else if label, conf, ok := matchFirst(lower, inferenceRules); ok {
		obs.Emotion = label
		obs.EmotionConfidence = conf
		obs.Source = "inferred"
	}

	if label, _, ok := matchFirst(lower, lifeAreaRules); ok {
		obs.LifeArea = label
		obs.Topics = append(obs.Topics, label)
	}
	if label, _, ok := matchFirst(lower, durationRules); ok {
		obs.Duration = label
	}
	if label, _, ok := matchFirst(lower, professionRules); ok {
		obs.Profession = label
	}

	obs.Fears = extractFears(lower, trimmed)
	obs.Needs = extractNeeds(lower)
	obs.Trigger = extractTrigger(lower, trimmed)

	if len(trimmed) >= minConcernChars {
		obs.PrimaryConcern = clip(trimmed, maxQuoteLen)
	}
	if len(trimmed) > minQuoteLen {
		obs.Quote = clip(trimmed, maxQuoteLen)
	}
	return obs
}

// HasSignals reports whether the observation carries anything worth merging.
func (o Observation) HasSignals() bool {
	return o.Emotion != "" || o.PrimaryConcern != "" || o.LifeArea != "" ||
		o.Trigger != "" || o.Duration != "" || o.Quote != "" ||
		len(o.Fears) > 0 || len(o.Needs) > 0 || o.Profession != ""
}

// IsMinimal reports whether text is a bare acknowledgment: every token,
// after stripping punctuation, belongs to the fixed acknowledgment set.
func IsMinimal(text string) bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:'\"")
		if f == "" {
			continue
		}
		if _, ok := minimalVocabulary[f]; !ok {
			return false
		}
	}
	return true
}

func matchFirst(lower string, rules []keywordRule) (string, float64, bool) {
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.label, r.confidence, true
		}
	}
	return "", 0, false
}

var fearMarkers = []string{"afraid of", "scared of", "afraid that", "scared that", "worried about", "fear of", "terrified of"}

func extractFears(lower, original string) []string {
	var fears []string
	for _, marker := range fearMarkers {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			continue
		}
		tail := original[idx+len(marker):]
		clause := firstClause(tail)
		if clause != "" {
			fears = appendUnique(fears, clause)
		}
	}
	return fears
}

func extractNeeds(lower string) []string {
	wanting := false
	for _, m := range wantingMarkers {
		if strings.Contains(lower, m) {
			wanting = true
			break
		}
	}
	if !wanting {
		return nil
	}
	var needs []string
	for _, r := range needRules {
		if strings.Contains(lower, r.keyword) {
			needs = appendUnique(needs, r.label)
		}
	}
	return needs
}

var triggerMarkers = []string{"because of", "because", "ever since", "after my", "after the", "due to"}

func extractTrigger(lower, original string) string {
	for _, marker := range triggerMarkers {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			continue
		}
		clause := firstClause(original[idx+len(marker):])
		if clause != "" {
			return clause
		}
	}
	return ""
}

// firstClause takes text up to the first sentence boundary, trimmed and
// clipped. Returns "" for fragments too short to mean anything.
func firstClause(s string) string {
	if i := strings.IndexAny(s, ".!?\n"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, ","); i > 30 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return ""
	}
	return clip(s, maxQuoteLen)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if i := strings.LastIndex(cut, " "); i > n/2 {
		cut = cut[:i]
	}
	return cut
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
