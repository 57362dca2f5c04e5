package domain

import "fmt"

// Explanation band edges. The structural/lexical bands and the closing
// AI-score bands reuse the scorer and classifier thresholds so the rendered
// rationale can never disagree with the verdict.
const (
	structuralHighMin     = 80.0
	structuralModerateMin = 60.0
	lexicalHighMin        = 80.0
	lexicalModerateMin    = 40.0
)

// Explain renders the pair's numbers into an ordered list of rationale
// lines. It performs no computation beyond formatting and always returns a
// non-empty sequence.
func Explain(nameA, nameB string, lexical, structural, aiScore, idDiv, fmtCons, logic float64) []string {
	lines := make([]string, 0, 9)

	lines = append(lines, fmt.Sprintf("Comparison between %q and %q.", nameA, nameB))

	switch {
	case structural >= structuralHighMin:
		lines = append(lines, fmt.Sprintf("Very high structural similarity (%.2f%%) indicates reused program logic.", structural))
	case structural >= structuralModerateMin:
		lines = append(lines, fmt.Sprintf("Moderate structural similarity (%.2f%%) suggests similar control flow.", structural))
	default:
		lines = append(lines, fmt.Sprintf("Low structural similarity (%.2f%%) indicates different program structures.", structural))
	}

	switch {
	case lexical >= lexicalHighMin:
		lines = append(lines, fmt.Sprintf("High lexical similarity (%.2f%%) suggests direct copying.", lexical))
	case lexical >= lexicalModerateMin:
		lines = append(lines, fmt.Sprintf("Moderate lexical similarity (%.2f%%) suggests partial reuse of identifiers.", lexical))
	default:
		lines = append(lines, fmt.Sprintf("Low lexical similarity (%.2f%%) suggests renaming or rewriting of identifiers.", lexical))
	}

	lines = append(lines, "AI-assisted pattern analysis:")

	if structural > paraphraseStructuralMin && lexical < paraphraseLexicalMax {
		lines = append(lines, "- High structural but low lexical similarity is a common AI paraphrasing pattern.")
	}

	if idDiv < diversityMax {
		lines = append(lines, fmt.Sprintf("- Low identifier diversity (%.2f) indicates generic naming behavior.", idDiv))
	} else {
		lines = append(lines, fmt.Sprintf("- Identifier diversity (%.2f) appears human-like.", idDiv))
	}

	if fmtCons > uniformityMin {
		lines = append(lines, fmt.Sprintf("- High formatting consistency (%.2f) suggests automated code styling.", fmtCons))
	} else {
		lines = append(lines, fmt.Sprintf("- Formatting consistency (%.2f) appears natural.", fmtCons))
	}

	if logic > densityMin {
		lines = append(lines, fmt.Sprintf("- High logic density (%.2f) indicates compact, machine-style logic generation.", logic))
	} else {
		lines = append(lines, fmt.Sprintf("- Logic density (%.2f) is within normal human range.", logic))
	}

	switch {
	case aiScore >= aiVerdictMin:
		lines = append(lines, fmt.Sprintf("Overall AI-assistance score is high (%.2f), indicating AI-assisted plagiarism.", aiScore))
	case aiScore >= aiModerateMin:
		lines = append(lines, fmt.Sprintf("Overall AI-assistance score is moderate (%.2f), suggesting possible AI assistance.", aiScore))
	default:
		lines = append(lines, fmt.Sprintf("Overall AI-assistance score is low (%.2f), indicating likely human-written work.", aiScore))
	}

	return lines
}
