package search

import (
	"strings"
	"unicode"

	"vykaz/pkg/vykaz/models"
)

type clauseKind int

const (
	clauseFuzzy clauseKind = iota
	clauseExact
	clauseExclude
)

// clause is one parsed query term, diacritic-folded.
type clause struct {
	kind clauseKind
	text []rune
}

// parseQuery splits a query into clauses. "quoted phrases" and terms
// prefixed with + or ' demand an exact substring; - or ! excludes items
// containing the term; everything else matches fuzzily. All positive
// clauses must match (AND). Clauses shorter than minFragmentLen are
// dropped as noise.
func parseQuery(q string) []clause {
	runes := []rune(q)
	var clauses []clause
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		if runes[i] == '"' {
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			clauses = addClause(clauses, clauseExact, string(runes[i+1:j]))
			if j < len(runes) {
				j++
			}
			i = j
			continue
		}
		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) {
			j++
		}
		tok := string(runes[i:j])
		i = j
		kind := clauseFuzzy
		switch {
		case strings.HasPrefix(tok, "-"), strings.HasPrefix(tok, "!"):
			kind = clauseExclude
			tok = tok[1:]
		case strings.HasPrefix(tok, "+"), strings.HasPrefix(tok, "'"):
			kind = clauseExact
			tok = tok[1:]
		}
		clauses = addClause(clauses, kind, tok)
	}
	return clauses
}

func addClause(clauses []clause, kind clauseKind, text string) []clause {
	folded := []rune(models.FoldText(strings.TrimSpace(text)))
	if len(folded) < minFragmentLen {
		return clauses
	}
	return append(clauses, clause{kind: kind, text: folded})
}
