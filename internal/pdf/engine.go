package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"metalflow/internal/domain"
)

// Options selects the rendering strategy. A non-empty TemplatePath
// switches the engine to overlay mode; Config carries the extracted
// template fields used to fill company and bank details.
type Options struct {
	TemplatePath string
	Config       map[string]string
}

// Engine renders invoices as PDF byte streams.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Filename derives a download filename from the invoice number,
// replacing non-alphanumeric runs with underscores.
func Filename(invoiceNumber string) string {
	base := strings.Trim(nonAlphanumeric.ReplaceAllString(invoiceNumber, "_"), "_")
	if base == "" {
		base = "invoice"
	}
	return base + ".pdf"
}

// Generate renders the invoice and returns the PDF bytes plus a
// suggested filename. Overlay mode is used only when the template is
// a PDF file that actually exists; a missing or non-PDF template
// (docx is a valid upload) falls back to the scratch layout. The
// underlying library panics on malformed template files, so
// generation failures are recovered and reported as errors.
func (e *Engine) Generate(data *InvoiceData, opts Options) (out []byte, filename string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", domain.ErrGenerationFailed, r)
		}
	}()

	doc := gofpdf.New("P", "pt", "A4", "")

	templatePath := opts.TemplatePath
	if templatePath != "" && !strings.EqualFold(filepath.Ext(templatePath), ".pdf") {
		templatePath = ""
	}
	if templatePath != "" {
		if _, statErr := os.Stat(templatePath); statErr != nil {
			templatePath = ""
		}
	}

	if templatePath != "" {
		drawOverlay(doc, data, opts.Config, templatePath)
	} else {
		drawScratch(doc, data, opts.Config)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return buf.Bytes(), Filename(data.InvoiceNumber), nil
}
