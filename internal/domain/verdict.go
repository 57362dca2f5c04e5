package domain

import m "prism.dev/pkg/prism/internal/model"

// Verdict cascade thresholds.
const (
	directCopyMin     = 80.0
	aiVerdictMin      = 0.7
	aiModerateMin     = 0.4
	likelyOriginalMax = 35.0
)

// Classify maps the pair's numbers to one of the four fixed verdicts. The
// rules form a priority cascade, first match wins:
//
//	1. lexical > 80 and structural > 80  -> Direct Copy
//	2. aiScore >= 0.7                    -> AI-Assisted Plagiarism
//	3. lexical < 35 and structural < 35  -> Likely Original
//	4. otherwise                         -> Moderate Similarity
//
// Total over its input domain; every triple maps to exactly one verdict.
func Classify(lexical, structural, aiScore float64) m.Verdict {
	if lexical > directCopyMin && structural > directCopyMin {
		return m.VerdictDirectCopy
	}

	if aiScore >= aiVerdictMin {
		return m.VerdictAIAssisted
	}

	if lexical < likelyOriginalMax && structural < likelyOriginalMax {
		return m.VerdictLikelyOriginal
	}

	return m.VerdictModerate
}
