package domain

import "regexp"

// identifierPattern matches identifier-shaped runs: a letter or underscore
// followed by letters, digits or underscores.
var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// identifierSet extracts the de-duplicated identifier vocabulary of a text.
func identifierSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, ident := range identifierPattern.FindAllString(text, -1) {
		set[ident] = struct{}{}
	}

	return set
}

// LexicalSimilarity computes the Jaccard overlap of the identifier
// vocabularies of two texts, as a percentage rounded to two decimals. It is
// symmetric, ignores order, frequency and position, and returns 0.0 when
// either text has no identifier-shaped tokens.
//
// This deliberately over-approximates: it catches surface copying cheaply
// and leaves structure to the structural comparator.
func LexicalSimilarity(textA, textB string) float64 {
	setA := identifierSet(textA)
	setB := identifierSet(textB)

	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0

	for ident := range setA {
		if _, ok := setB[ident]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection

	return round2(float64(intersection) / float64(union) * 100)
}
