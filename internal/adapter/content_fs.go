// Package adapter contains filesystem, extraction and report adapters for
// the PRISM CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "prism.dev/pkg/prism/internal/model"
)

// ContentFSAdapter abstracts the filesystem and format-extraction operations
// the workflow relies on when collecting submissions. It hides direct os
// access so the batch logic can be tested without touching the disk.
type ContentFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// DetectKind maps a file path to its content kind. The second return
	// value is false for unsupported extensions.
	DetectKind(path m.Path) (m.Kind, bool)

	// Load reads a file and extracts its text content into a Document.
	// Page-oriented formats concatenate per-page text in document order;
	// paragraph-oriented formats emit one paragraph per line.
	Load(path m.Path) (m.Document, error)

	// FileInfo returns metadata for a path so the workflow can distinguish
	// files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the workflow.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

var kindByExtension = map[string]m.Kind{
	".go":   m.KindGo,
	".py":   m.KindPython,
	".java": m.KindJava,
	".c":    m.KindC,
	".h":    m.KindC,
	".cpp":  m.KindCPP,
	".cc":   m.KindCPP,
	".hpp":  m.KindCPP,
	".js":   m.KindJavaScript,
	".ts":   m.KindTypeScript,
	".cs":   m.KindCSharp,
	".txt":  m.KindText,
	".md":   m.KindText,
	".pdf":  m.KindDocument,
	".docx": m.KindDocument,
}

// LocalContentFSAdapter is the concrete ContentFSAdapter backed by the local
// filesystem.
type LocalContentFSAdapter struct{}

// NewLocalContentFSAdapter constructs a LocalContentFSAdapter ready to be
// wired into the workflow.
func NewLocalContentFSAdapter() *LocalContentFSAdapter {
	return &LocalContentFSAdapter{}
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalContentFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// DetectKind maps the file extension to a content kind.
func (a *LocalContentFSAdapter) DetectKind(path m.Path) (m.Kind, bool) {
	kind, ok := kindByExtension[strings.ToLower(filepath.Ext(string(path)))]
	return kind, ok
}

// Load reads the file at path and extracts its text according to the
// detected kind. Plain text and source files decode as UTF-8 with invalid
// sequences dropped rather than rejected.
func (a *LocalContentFSAdapter) Load(path m.Path) (m.Document, error) {
	kind, ok := a.DetectKind(path)
	if !ok {
		return m.Document{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(string(path)))
	}

	var (
		content string
		err     error
	)

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".pdf":
		content, err = extractPDF(string(path))
	case ".docx":
		var raw []byte

		raw, err = os.ReadFile(string(path))
		if err == nil {
			content, err = extractDOCX(raw)
		}
	default:
		var raw []byte

		raw, err = os.ReadFile(string(path))
		if err == nil {
			content = strings.ToValidUTF8(string(raw), "")
		}
	}

	if err != nil {
		return m.Document{}, fmt.Errorf("load %s: %w", path, err)
	}

	return m.Document{
		Name:    filepath.Base(string(path)),
		Content: content,
		Kind:    kind,
	}, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalContentFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
