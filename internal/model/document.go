// Package model defines the data structures for similarity analysis.
package model

// Path represents a file system path.
type Path string

// Kind identifies the content family a document belongs to. Source kinds
// share the lexical comparator; only structurally comparable kinds feed the
// structural comparator and the behavioral signal extractor.
type Kind string

const (
	// KindGo represents Go source files.
	KindGo Kind = "go"
	// KindPython represents Python source files.
	KindPython Kind = "python"
	// KindJava represents Java source files.
	KindJava Kind = "java"
	// KindC represents C source files.
	KindC Kind = "c"
	// KindCPP represents C++ source files.
	KindCPP Kind = "cpp"
	// KindJavaScript represents JavaScript source files.
	KindJavaScript Kind = "javascript"
	// KindTypeScript represents TypeScript source files.
	KindTypeScript Kind = "typescript"
	// KindCSharp represents C# source files.
	KindCSharp Kind = "csharp"
	// KindText represents plain-text files.
	KindText Kind = "text"
	// KindDocument represents page- or paragraph-oriented document formats
	// (PDF, DOCX) after text extraction.
	KindDocument Kind = "document"
)

// SourceCode reports whether the kind carries program source rather than
// prose. Comment stripping applies only to source kinds.
func (k Kind) SourceCode() bool {
	switch k {
	case KindGo, KindPython, KindJava, KindC, KindCPP, KindJavaScript, KindTypeScript, KindCSharp:
		return true
	}

	return false
}

// StructurallyComparable reports whether the engine knows the kind's grammar
// well enough to tokenize and parse it. Only Go qualifies: the engine lexes
// with go/scanner and parses with go/parser.
func (k Kind) StructurallyComparable() bool {
	return k == KindGo
}

// Document is one submitted work. It is immutable after creation and never
// mutated by the engine; Name must be unique within a batch (a caller-owned
// precondition).
type Document struct {
	Name    string
	Content string
	Kind    Kind
}

// DocumentInfo summarizes a discovered document for listing purposes.
type DocumentInfo struct {
	Name       string
	Path       Path
	Kind       Kind
	Structural bool
	Tokens     int
}
