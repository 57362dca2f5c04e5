package adapter

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "prism.dev/pkg/prism/internal/model"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		path string
		kind m.Kind
		ok   bool
	}{
		{"main.go", m.KindGo, true},
		{"script.py", m.KindPython, true},
		{"App.JAVA", m.KindJava, true},
		{"lib.c", m.KindC, true},
		{"lib.hpp", m.KindCPP, true},
		{"app.ts", m.KindTypeScript, true},
		{"Program.cs", m.KindCSharp, true},
		{"notes.txt", m.KindText, true},
		{"README.md", m.KindText, true},
		{"paper.pdf", m.KindDocument, true},
		{"essay.docx", m.KindDocument, true},
		{"archive.tar", m.Kind(""), false},
		{"Makefile", m.Kind(""), false},
	}

	adapter := NewLocalContentFSAdapter()

	for _, tc := range cases {
		kind, ok := adapter.DetectKind(m.Path(tc.path))
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.kind, kind, tc.path)
	}
}

func TestLoad_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	require.NoError(t, os.WriteFile(path, []byte("an essay\n"), 0o600))

	doc, err := NewLocalContentFSAdapter().Load(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, "essay.txt", doc.Name)
	assert.Equal(t, m.KindText, doc.Kind)
	assert.Equal(t, "an essay\n", doc.Content)
}

func TestLoad_DropsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	require.NoError(t, os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, '!'}, 0o600))

	doc, err := NewLocalContentFSAdapter().Load(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "ok!", doc.Content)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := NewLocalContentFSAdapter().Load("archive.tar")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLocalContentFSAdapter().Load(m.Path(filepath.Join(t.TempDir(), "gone.txt")))
	assert.Error(t, err)
}

func writeDOCX(t *testing.T, dir string, paragraphs []string) string {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}

	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, "essay.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	return path
}

func TestLoad_DOCXParagraphsPerLine(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), []string{"first paragraph", "second paragraph"})

	doc, err := NewLocalContentFSAdapter().Load(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, m.KindDocument, doc.Kind)
	assert.Equal(t, "first paragraph\nsecond paragraph", doc.Content)
}

func TestLoad_DOCXWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	_, err = NewLocalContentFSAdapter().Load(m.Path(path))
	assert.ErrorContains(t, err, "word/document.xml not found")
}

func TestWalk_NonRecursiveSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("x"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep.txt"), []byte("x"), 0o600))

	var seen []string

	err := NewLocalContentFSAdapter().Walk(m.Path(dir), false, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)

		if !info.IsDir() {
			seen = append(seen, filepath.Base(path))
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"top.txt"}, seen)
}

func TestWalk_RecursiveVisitsEverything(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("x"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep.txt"), []byte("x"), 0o600))

	var seen []string

	err := NewLocalContentFSAdapter().Walk(m.Path(dir), true, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)

		if !info.IsDir() {
			seen = append(seen, filepath.Base(path))
		}

		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"top.txt", "deep.txt"}, seen)
}
