package engine

import "github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"

// Policy decides when the conversation leaves clarification and how phases
// move in general. It is pure: all inputs arrive as arguments.
type Policy struct {
	MinClarificationTurns int
	MaxClarificationTurns int
	MinQuotes             int
	StrictMinQuotes       int
	ReadinessThreshold    float64

	// Strict requires the weighted readiness score instead of the signal
	// checklist, and routes guidance through an explicit synthesis turn.
	// It is enabled when an external analyzer is available.
	Strict bool
}

// Readiness is the weighted completeness of the collected signals, in
// [0, 1]. Each contributing signal has a fixed weight; the primary concern
// weighs most because nothing useful can be said without it.
func (p Policy) Readiness(mem *memory.ConversationMemory) float64 {
	var score float64
	if len(mem.PrimaryConcern) > 30 {
		score += 0.2
	}
	if mem.Emotion != "" {
		score += 0.15
	}
	if mem.Trigger != "" {
		score += 0.15
	}
	if mem.Duration != "" {
		score += 0.1
	}
	if mem.LifeArea != "" {
		score += 0.1
	}
	if len(mem.Fears) > 0 {
		score += 0.1
	}
	if len(mem.Needs) > 0 {
		score += 0.1
	}
	if len(mem.Quotes) >= p.StrictMinQuotes {
		score += 0.1
	}
	if score > 1 {
		score = 1
	}
	return score
}

// Ready reports whether enough has been gathered to move toward guidance.
func (p Policy) Ready(mem *memory.ConversationMemory) bool {
	if mem.TurnCount < p.MinClarificationTurns {
		return false
	}
	if p.Strict {
		return p.Readiness(mem) >= p.ReadinessThreshold &&
			len(mem.Quotes) >= p.StrictMinQuotes
	}
	hasCore := mem.Emotion != "" && mem.PrimaryConcern != "" &&
		(mem.LifeArea != "" || len(mem.Needs) > 0)
	hasStory := mem.PrimaryConcern != "" && mem.LifeArea != "" &&
		len(mem.Quotes) >= p.MinQuotes
	return hasCore || hasStory
}

// Clamp returns the least-advanced legal phase for the memory's contents.
// A session claiming to give guidance with nothing collected has been
// corrupted or hand-edited; it restarts clarification rather than erroring.
func (p Policy) Clamp(current memory.Phase, mem *memory.ConversationMemory) memory.Phase {
	if !current.Valid() {
		return memory.PhaseListening
	}
	if current.Guidance() && mem.Emotion == "" && mem.PrimaryConcern == "" {
		return memory.PhaseClarification
	}
	return current
}

// Next computes the phase after this turn. disengaged marks a guidance-phase
// checkout; farewell marks an explicit goodbye; continues marks a message
// that carried new substance and keeps guidance open.
func (p Policy) Next(current memory.Phase, mem *memory.ConversationMemory, disengaged, farewell, continues bool) memory.Phase {
	current = p.Clamp(current, mem)
	switch current {
	case memory.PhaseListening:
		return memory.PhaseClarification
	case memory.PhaseClarification:
		if mem.TurnCount >= p.MaxClarificationTurns {
			return memory.PhaseAnswering
		}
		// A re-engagement question is outstanding: guidance resumes only
		// once the user answers it with something substantive.
		if mem.ProbePending {
			return memory.PhaseClarification
		}
		if p.Ready(mem) {
			if p.Strict {
				return memory.PhaseSynthesis
			}
			return memory.PhaseAnswering
		}
		return memory.PhaseClarification
	case memory.PhaseSynthesis:
		if disengaged {
			return memory.PhaseClarification
		}
		return memory.PhaseAnswering
	case memory.PhaseAnswering:
		if disengaged {
			return memory.PhaseClarification
		}
		if farewell {
			return memory.PhaseClosure
		}
		if continues {
			return memory.PhaseAnswering
		}
		return memory.PhaseClosure
	case memory.PhaseClosure:
		return memory.PhaseClosure
	}
	return current
}
