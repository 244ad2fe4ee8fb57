package template

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	ledongpdf "github.com/ledongthuc/pdf"
)

// ExtractText pulls plain text lines from a stored template document.
// PDF and docx are the two supported formats.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDFText(path)
	case ".docx":
		return extractDocxText(path)
	default:
		return "", fmt.Errorf("template.ExtractText: unsupported extension %q", filepath.Ext(path))
	}
}

// extractPDFText reads text row by row so the label heuristics see the
// same line structure a human would.
func extractPDFText(path string) (text string, err error) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("template.extractPDFText: %v", r)
		}
	}()

	f, r, err := ledongpdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("template.extractPDFText open: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for pageNo := 1; pageNo <= r.NumPage(); pageNo++ {
		page := r.Page(pageNo)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("template.extractPDFText page %d: %w", pageNo, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

var (
	docxParaEnd = regexp.MustCompile(`</w:p>`)
	docxTags    = regexp.MustCompile(`<[^>]+>`)
)

// extractDocxText reads word/document.xml out of the docx archive and
// strips the markup, keeping paragraph boundaries as newlines.
func extractDocxText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("template.extractDocxText open: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("template.extractDocxText entry: %w", err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("template.extractDocxText read: %w", err)
		}

		text := docxParaEnd.ReplaceAllString(string(raw), "\n")
		text = docxTags.ReplaceAllString(text, "")
		return text, nil
	}
	return "", fmt.Errorf("template.extractDocxText: word/document.xml not found")
}
