package scripture

import (
	"context"
	"testing"
)

func TestLibrarySearchByEmotion(t *testing.T) {
	lib := NewLibrary()
	got, err := lib.Search(context.Background(), Query{
		Emotion:  "guilt",
		Concepts: []string{"prayaschitta", "forgiveness"},
		Limit:    1,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Reference != "Bhagavad Gita 9.30" {
		t.Fatalf("Reference = %q, want Bhagavad Gita 9.30", got[0].Reference)
	}
}

func TestLibrarySearchConceptOverlapBreaksTies(t *testing.T) {
	lib := NewLibrary()
	got, err := lib.Search(context.Background(), Query{
		Emotion:  "anxiety",
		Concepts: []string{"karma_yoga", "surrender"},
		Limit:    2,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Score < got[1].Score {
		t.Fatalf("results not ordered by score: %v then %v", got[0].Score, got[1].Score)
	}
	if got[0].Reference != "Bhagavad Gita 2.47" {
		t.Fatalf("top = %q, want Bhagavad Gita 2.47", got[0].Reference)
	}
}

func TestLibrarySearchNoMatch(t *testing.T) {
	lib := NewLibrary()
	got, err := lib.Search(context.Background(), Query{Emotion: "serenity"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0 for unknown emotion", len(got))
	}
}

func TestLibrarySearchDefaultLimit(t *testing.T) {
	lib := NewLibrary()
	got, err := lib.Search(context.Background(), Query{Emotion: "anxiety"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) > 2 {
		t.Fatalf("len = %d, want at most default limit 2", len(got))
	}
}
