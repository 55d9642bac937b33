package search

import (
	"testing"
)

func TestParseQueryKinds(t *testing.T) {
	clauses := parseQuery(`beton "cihla plna" +mj25 -ocel !trubky 'vykop`)

	expected := []struct {
		kind clauseKind
		text string
	}{
		{clauseFuzzy, "beton"},
		{clauseExact, "cihla plna"},
		{clauseExact, "mj25"},
		{clauseExclude, "ocel"},
		{clauseExclude, "trubky"},
		{clauseExact, "vykop"},
	}

	if len(clauses) != len(expected) {
		t.Fatalf("Expected %d clauses, got %d: %v", len(expected), len(clauses), clauses)
	}
	for i, e := range expected {
		if clauses[i].kind != e.kind {
			t.Errorf("Clause %d kind = %d, expected %d", i, clauses[i].kind, e.kind)
		}
		if string(clauses[i].text) != e.text {
			t.Errorf("Clause %d text = %q, expected %q", i, string(clauses[i].text), e.text)
		}
	}
}

func TestParseQueryFoldsDiacritics(t *testing.T) {
	clauses := parseQuery("Výkopy")
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if string(clauses[0].text) != "vykopy" {
		t.Errorf("Expected folded 'vykopy', got %q", string(clauses[0].text))
	}
	if clauses[0].kind != clauseFuzzy {
		t.Errorf("Expected fuzzy clause, got %d", clauses[0].kind)
	}
}

func TestParseQueryUnterminatedQuote(t *testing.T) {
	clauses := parseQuery(`"beton`)
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].kind != clauseExact || string(clauses[0].text) != "beton" {
		t.Errorf("Expected exact 'beton', got kind %d text %q", clauses[0].kind, string(clauses[0].text))
	}
}

func TestParseQueryDropsNoise(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", 0},
		{"   ", 0},
		{"a", 0},
		{"a beton", 1},
		{`""`, 0},
		{"+", 0},
		{"-x", 0},
		{"- beton", 1},
	}

	for _, tt := range tests {
		clauses := parseQuery(tt.query)
		if len(clauses) != tt.expected {
			t.Errorf("parseQuery(%q) yielded %d clauses, expected %d", tt.query, len(clauses), tt.expected)
		}
	}
}
