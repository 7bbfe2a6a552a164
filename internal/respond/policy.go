// Package respond composes the companion's replies deterministically from
// accumulated memory, with verse citations from the scripture retriever.
package respond

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/scripture"
)

// Result is one composed reply.
type Result struct {
	Text      string
	Citations []scripture.Citation
}

// Composer builds phase-appropriate responses. It mutates the memory's
// rotation counters so consecutive replies draw from different templates.
type Composer struct {
	retriever scripture.Retriever
}

func NewComposer(retriever scripture.Retriever) *Composer {
	return &Composer{retriever: retriever}
}

// Compose produces the reply for the session's current phase. disengaged
// marks that this turn was classified as a disengagement, which switches
// probing to the re-engagement pool.
func (c *Composer) Compose(ctx context.Context, mem *memory.ConversationMemory, disengaged bool) (Result, error) {
	switch mem.Phase {
	case memory.PhaseClosure:
		return Result{Text: ClosureMessage}, nil
	case memory.PhaseSynthesis:
		return Result{Text: c.synthesis(mem)}, nil
	case memory.PhaseAnswering:
		return c.guidance(ctx, mem)
	default:
		return Result{Text: c.probe(mem, disengaged)}, nil
	}
}

// probe returns a clarifying question, rotating within the most specific
// pool available so the same question is not asked twice in a row.
func (c *Composer) probe(mem *memory.ConversationMemory, disengaged bool) string {
	if disengaged {
		// DisengagementCount was just incremented, so it is >= 1 here.
		return reengagementProbes[(mem.DisengagementCount-1)%len(reengagementProbes)]
	}
	pool := genericProbes
	if qs, ok := probesByArea[mem.LifeArea]; ok {
		pool = qs
	} else if qs, ok := probesByEmotion[mem.Emotion]; ok {
		pool = qs
	}
	q := pool[mem.ProbeRotation%len(pool)]
	mem.ProbeRotation++

	if mem.ProbeRotation == 1 && mem.Emotion != "" {
		if ack, ok := acknowledgments[mem.Emotion]; ok {
			return ack + " " + q
		}
	}
	return q
}

// synthesis reflects the collected signals back for confirmation.
func (c *Composer) synthesis(mem *memory.ConversationMemory) string {
	var b strings.Builder
	b.WriteString("Let me make sure I understand. ")
	if mem.PrimaryConcern != "" {
		fmt.Fprintf(&b, "You came here with this on your mind: %q. ", mem.PrimaryConcern)
	}
	if mem.Emotion != "" {
		fmt.Fprintf(&b, "What I hear most is %s", mem.Emotion)
		if mem.Duration != "" {
			fmt.Fprintf(&b, ", and it has been with you %s", mem.Duration)
		}
		b.WriteString(". ")
	}
	if mem.LifeArea != "" {
		fmt.Fprintf(&b, "Much of it centers on your %s. ", mem.LifeArea)
	}
	if len(mem.Needs) > 0 {
		fmt.Fprintf(&b, "And what you are seeking is %s. ", strings.Join(mem.Needs, " and "))
	}
	b.WriteString("Have I understood you rightly?")
	return b.String()
}

// guidance assembles acknowledgment, teaching, verse, practical step and a
// rotating close. If the assembled text would repeat the previous guidance
// byte for byte, the close is advanced once more.
func (c *Composer) guidance(ctx context.Context, mem *memory.ConversationMemory) (Result, error) {
	citations, err := c.retriever.Search(ctx, BuildSearchQuery(mem))
	if err != nil {
		// Guidance still flows without a verse.
		citations = nil
	}

	text := c.assembleGuidance(mem, citations)
	if Fingerprint(text) == mem.LastResponseFingerprint {
		mem.CloseRotation++
		text = c.assembleGuidance(mem, citations)
	}
	mem.CloseRotation++
	return Result{Text: text, Citations: citations}, nil
}

func (c *Composer) assembleGuidance(mem *memory.ConversationMemory, citations []scripture.Citation) string {
	var parts []string

	if ack, ok := acknowledgments[mem.Emotion]; ok {
		parts = append(parts, ack)
	} else {
		parts = append(parts, defaultAcknowledgment)
	}

	insight := defaultInsight
	for _, concept := range mem.Concepts {
		if s, ok := conceptInsights[concept]; ok {
			insight = s
			break
		}
	}
	parts = append(parts, insight)

	if len(citations) > 0 {
		v := citations[0]
		parts = append(parts, fmt.Sprintf("As %s says: %q.", v.Reference, v.Text))
	}

	if step, ok := practicalSteps[mem.Emotion]; ok {
		parts = append(parts, step)
	} else {
		parts = append(parts, defaultStep)
	}

	parts = append(parts, closes[mem.CloseRotation%len(closes)])
	return strings.Join(parts, " ")
}

// BuildSearchQuery derives the retrieval query from memory: emotion and
// concepts first, the user's own salient words as tie-breakers.
func BuildSearchQuery(mem *memory.ConversationMemory) scripture.Query {
	var keywords []string
	keywords = append(keywords, mem.Needs...)
	for _, w := range strings.Fields(mem.PrimaryConcern) {
		w = strings.Trim(strings.ToLower(w), ".,!?;:'\"")
		if len(w) >= 5 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) > 8 {
		keywords = keywords[:8]
	}
	return scripture.Query{
		Emotion:  mem.Emotion,
		Concepts: mem.Concepts,
		Keywords: keywords,
		Limit:    2,
	}
}

// Fingerprint identifies a response for repetition checks.
func Fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}
