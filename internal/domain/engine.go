package domain

import m "prism.dev/pkg/prism/internal/model"

// comparableText returns the text a document contributes to the lexical
// comparator: source code is cleaned first so comment vocabulary does not
// inflate the overlap, prose is compared as-is.
func comparableText(doc m.Document) string {
	if doc.Kind.SourceCode() {
		return Clean(doc.Content)
	}

	return doc.Content
}

// ComparePair evaluates one unordered document pair. It is a pure function
// of the two documents: no I/O, no shared state, safe to call from any
// number of goroutines.
//
// The pair is canonicalized so the lexicographically smaller name comes
// first; the behavioral signals are those of the first document. When either
// document's kind is not structurally comparable the structural score is
// fixed at 0.0 and the signals take the neutral default, signaling
// "unknown" rather than "no similarity".
func ComparePair(a, b m.Document) m.PairResult {
	if b.Name < a.Name {
		a, b = b, a
	}

	lexical := LexicalSimilarity(comparableText(a), comparableText(b))

	structural := 0.0
	idDiv, fmtCons, logic := NeutralSignal, NeutralSignal, NeutralSignal

	if a.Kind.StructurallyComparable() && b.Kind.StructurallyComparable() {
		structural = StructuralSimilarity(
			TokenizeStructural(a.Content),
			TokenizeStructural(b.Content),
		)
		idDiv = IdentifierDiversity(a.Content)
		fmtCons = FormattingConsistency(a.Content)
		logic = LogicDensity(a.Content)
	}

	aiScore := AIAssistanceScore(lexical, structural, idDiv, fmtCons, logic)
	verdict := Classify(lexical, structural, aiScore)
	explanation := Explain(a.Name, b.Name, lexical, structural, aiScore, idDiv, fmtCons, logic)

	return m.PairResult{
		NameA:       a.Name,
		NameB:       b.Name,
		Lexical:     lexical,
		Structural:  structural,
		AIScore:     aiScore,
		Verdict:     verdict,
		Explanation: explanation,
	}
}
