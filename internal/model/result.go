package model

// Verdict is the categorical outcome for one document pair.
type Verdict string

const (
	// VerdictDirectCopy indicates both comparators report very high overlap.
	VerdictDirectCopy Verdict = "Direct Copy"
	// VerdictAIAssisted indicates the heuristic AI-assistance score crossed
	// its alert threshold.
	VerdictAIAssisted Verdict = "AI-Assisted Plagiarism"
	// VerdictLikelyOriginal indicates both comparators report low overlap.
	VerdictLikelyOriginal Verdict = "Likely Original"
	// VerdictModerate covers everything between original and copied.
	VerdictModerate Verdict = "Moderate Similarity"
)

// PairResult is the flat, serializable outcome for one unordered document
// pair. NameA sorts lexicographically before NameB so that (A,B) and (B,A)
// denote the same entity. Percentages lie in [0,100], AIScore in [0,1].
type PairResult struct {
	NameA       string   `json:"file_a" yaml:"file_a"`
	NameB       string   `json:"file_b" yaml:"file_b"`
	Lexical     float64  `json:"lexical" yaml:"lexical"`
	Structural  float64  `json:"structural" yaml:"structural"`
	AIScore     float64  `json:"ai_score" yaml:"ai_score"`
	Verdict     Verdict  `json:"verdict" yaml:"verdict"`
	Explanation []string `json:"explanation" yaml:"explanation"`
}
