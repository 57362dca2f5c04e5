package adapter

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the visible text out of a PDF, concatenating per-page
// text in document order. Pages that fail to render are skipped; a PDF with
// no extractable text at all is an error.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	defer func() { _ = f.Close() }()

	var b strings.Builder

	total := r.NumPage()
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}

		b.WriteString(content)
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}

	return b.String(), nil
}

// extractDOCX pulls paragraph text out of a DOCX archive, one paragraph per
// line, in document order. DOCX is a zip with the body in word/document.xml;
// only <w:t> runs carry visible text.
func extractDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var xmlData []byte

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}

		rc, openErr := f.Open()
		if openErr != nil {
			return "", fmt.Errorf("open document.xml: %w", openErr)
		}

		xmlData, err = io.ReadAll(rc)

		_ = rc.Close()

		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}

		break
	}

	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))

	var b strings.Builder

	inText := false

	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}

		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}

			if t.Name.Local == "p" && b.Len() > 0 {
				b.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.WriteString(string(t))
			}
		}
	}

	return b.String(), nil
}
