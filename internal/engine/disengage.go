package engine

import (
	"strings"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/memory"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/signal"
)

// Disengaged reports whether a message should be treated as the user
// checking out. It only fires while guidance is being delivered: short
// acknowledgments during listening or clarification are normal turn-taking.
func Disengaged(text string, phase memory.Phase, maxChars int) bool {
	if !phase.Guidance() {
		return false
	}
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 || len(trimmed) > maxChars {
		return false
	}
	return signal.IsMinimal(trimmed)
}
