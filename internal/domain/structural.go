package domain

import (
	"math"

	m "prism.dev/pkg/prism/internal/model"
)

// round2 rounds to two decimal places, the precision of every
// percentage-valued output of the engine.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StructuralSimilarity aligns two category-normalized token sequences with a
// greedy one-to-one multiset match: each token of A claims, in encounter
// order, the first not-yet-claimed token of B with the same value. The score
// is matches / max(len(A), len(B)) as a percentage rounded to two decimals.
//
// The max-length denominator penalizes padded rewrites harder than an
// average would. First-fit in encounter order is a deliberate, documented
// approximation of sequence similarity; it must not be replaced with an
// edit-distance computation.
//
// Returns 0.0 when either sequence is empty.
func StructuralSimilarity(tokensA, tokensB []m.Token) float64 {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	used := make([]bool, len(tokensB))
	matches := 0

	for _, tok := range tokensA {
		for i, other := range tokensB {
			if !used[i] && tok == other {
				used[i] = true
				matches++

				break
			}
		}
	}

	longest := len(tokensA)
	if len(tokensB) > longest {
		longest = len(tokensB)
	}

	return round2(float64(matches) / float64(longest) * 100)
}
