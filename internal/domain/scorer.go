package domain

// Fixed thresholds and weights of the AI-assistance rule stack. They are the
// contract the classifier, the explanation generator and the tests share;
// the explanation text references the same constants so it can never
// contradict a verdict.
const (
	paraphraseStructuralMin = 70.0
	paraphraseLexicalMax    = 40.0
	paraphraseBonus         = 0.4

	diversityMax   = 0.35
	diversityBonus = 0.2

	uniformityMin   = 0.85
	uniformityBonus = 0.2

	densityMin   = 0.15
	densityBonus = 0.2
)

// AIAssistanceScore fuses the two similarity scores and the three behavioral
// signals of one document into a score in [0,1] through an additive, capped
// rule stack:
//
//	+0.4 structural > 70 and lexical < 40 (paraphrase signature)
//	+0.2 identifier diversity < 0.35      (generic naming)
//	+0.2 formatting consistency > 0.85    (uniform formatting)
//	+0.2 logic density > 0.15             (dense control flow)
//
// The sum is capped at 1.0, which is also the exact maximum. This is a
// hand-tuned rule system, not a learned model; the thresholds and weights
// are load-bearing and must not be adjusted independently of the classifier.
func AIAssistanceScore(lexical, structural, idDiv, fmtCons, logic float64) float64 {
	score := 0.0

	if structural > paraphraseStructuralMin && lexical < paraphraseLexicalMax {
		score += paraphraseBonus
	}

	if idDiv < diversityMax {
		score += diversityBonus
	}

	if fmtCons > uniformityMin {
		score += uniformityBonus
	}

	if logic > densityMin {
		score += densityBonus
	}

	if score > 1.0 {
		return 1.0
	}

	return score
}
