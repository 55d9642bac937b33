package search

import (
	"testing"

	"vykaz/pkg/vykaz/models"
)

func TestMaxEdits(t *testing.T) {
	tests := []struct {
		clauseLen int
		expected  int
	}{
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{10, 4},
	}

	for _, tt := range tests {
		if got := maxEdits(tt.clauseLen); got != tt.expected {
			t.Errorf("maxEdits(%d) = %d, expected %d", tt.clauseLen, got, tt.expected)
		}
	}
}

func TestMatchFuzzyExact(t *testing.T) {
	score, span, ok := matchFuzzy([]rune("beton"), []rune("beton zakladu"))
	if !ok {
		t.Fatal("Expected a match")
	}
	if score != 0 {
		t.Errorf("Expected score 0 for an exact match, got %f", score)
	}
	if span.Start != 0 || span.End != 5 {
		t.Errorf("Expected span [0,5), got [%d,%d)", span.Start, span.End)
	}
}

func TestMatchFuzzyMidText(t *testing.T) {
	score, span, ok := matchFuzzy([]rune("beton"), []rune("zdivo z betonu"))
	if !ok {
		t.Fatal("Expected a match")
	}
	if score != 0 {
		t.Errorf("Expected score 0, got %f", score)
	}
	if span.Start != 8 || span.End != 13 {
		t.Errorf("Expected span [8,13), got [%d,%d)", span.Start, span.End)
	}
}

func TestMatchFuzzyTypo(t *testing.T) {
	// One substitution inside the edit budget; the shortest minimal window
	// wins, dropping the unmatched trailing character.
	score, span, ok := matchFuzzy([]rune("betom"), []rune("beton zakladu"))
	if !ok {
		t.Fatal("Expected a match")
	}
	if score != 0.2 {
		t.Errorf("Expected score 0.2, got %f", score)
	}
	if span.Start != 0 || span.End != 4 {
		t.Errorf("Expected span [0,4), got [%d,%d)", span.Start, span.End)
	}
}

func TestMatchFuzzyOverBudget(t *testing.T) {
	if _, _, ok := matchFuzzy([]rune("xyz"), []rune("beton")); ok {
		t.Error("Expected no match for a disjoint clause")
	}
	if _, _, ok := matchFuzzy([]rune("ab"), []rune("cd")); ok {
		t.Error("Expected no match when every character differs")
	}
}

func TestMatchFuzzyShortWindow(t *testing.T) {
	// The only alignment window is a single character, below the fragment
	// minimum.
	if _, _, ok := matchFuzzy([]rune("ab"), []rune("b")); ok {
		t.Error("Expected no match on a one-character text")
	}
}

func TestMatchFuzzyEmpty(t *testing.T) {
	if _, _, ok := matchFuzzy([]rune("beton"), nil); ok {
		t.Error("Expected no match on empty text")
	}
	if _, _, ok := matchFuzzy(nil, []rune("beton")); ok {
		t.Error("Expected no match for an empty clause")
	}
}

func TestExactSpans(t *testing.T) {
	spans := exactSpans([]rune("be"), []rune("beton a beton"))
	expected := []models.Span{{Start: 0, End: 2}, {Start: 8, End: 10}}
	if len(spans) != len(expected) {
		t.Fatalf("Expected %d spans, got %d", len(expected), len(spans))
	}
	for i, sp := range expected {
		if spans[i] != sp {
			t.Errorf("Span %d = %v, expected %v", i, spans[i], sp)
		}
	}
}

func TestExactSpansNonOverlapping(t *testing.T) {
	spans := exactSpans([]rune("aa"), []rune("aaaa"))
	expected := []models.Span{{Start: 0, End: 2}, {Start: 2, End: 4}}
	if len(spans) != 2 || spans[0] != expected[0] || spans[1] != expected[1] {
		t.Errorf("Expected %v, got %v", expected, spans)
	}
}

func TestExactSpansMisses(t *testing.T) {
	if spans := exactSpans([]rune("xx"), []rune("beton")); spans != nil {
		t.Errorf("Expected no spans, got %v", spans)
	}
	if spans := exactSpans(nil, []rune("beton")); spans != nil {
		t.Errorf("Expected no spans for empty clause, got %v", spans)
	}
}

func TestContainsRunes(t *testing.T) {
	if !containsRunes([]rune("zaklad"), []rune("beton zakladu")) {
		t.Error("Expected containment")
	}
	if containsRunes([]rune("ocel"), []rune("beton zakladu")) {
		t.Error("Expected no containment")
	}
}
