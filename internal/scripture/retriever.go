// Package scripture retrieves verse citations matched to the emotional and
// conceptual signals of a conversation.
package scripture

import (
	"context"
	"sort"
	"strings"
)

// Citation is one retrieved verse with its relevance score.
type Citation struct {
	Reference string  `json:"reference"`
	Scripture string  `json:"scripture"`
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
}

// Query describes what to retrieve. Keywords come from the user's own words,
// concepts and emotion from accumulated memory.
type Query struct {
	Emotion  string
	Concepts []string
	Keywords []string
	Limit    int
}

// Retriever finds citations for a query. Implementations must be safe for
// concurrent use.
type Retriever interface {
	Search(ctx context.Context, q Query) ([]Citation, error)
	Close()
}

type verse struct {
	reference string
	scripture string
	text      string
	emotions  []string
	concepts  []string
}

// Library is the embedded retriever. It always succeeds, so the engine has a
// citation source even with no database configured.
type Library struct {
	verses []verse
}

func NewLibrary() *Library {
	return &Library{verses: builtinVerses}
}

// Search scores every verse against the query and returns the top matches.
// Emotion tags weigh most, then concept overlap, then keyword hits in the
// verse text.
func (l *Library) Search(_ context.Context, q Query) ([]Citation, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 2
	}
	var out []Citation
	for _, v := range l.verses {
		score := scoreVerse(v, q)
		if score <= 0 {
			continue
		}
		out = append(out, Citation{
			Reference: v.reference,
			Scripture: v.scripture,
			Text:      v.text,
			Score:     score,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *Library) Close() {}

func scoreVerse(v verse, q Query) float64 {
	var score float64
	for _, e := range v.emotions {
		if e == q.Emotion {
			score += 3
			break
		}
	}
	for _, c := range v.concepts {
		for _, want := range q.Concepts {
			if c == want {
				score += 1
			}
		}
	}
	lowerText := strings.ToLower(v.text)
	for _, kw := range q.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) >= 4 && strings.Contains(lowerText, kw) {
			score += 0.5
		}
	}
	return score
}
