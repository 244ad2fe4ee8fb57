package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() *InvoiceData {
	return &InvoiceData{
		InvoiceNumber:  "INV-2024/0042",
		IssueDate:      "2024-03-01",
		DueDate:        "2024-04-01",
		PaymentTerms:   "30 days net",
		DeliveryTerms:  "CIF Rotterdam",
		ClientName:     "Acme Alloys BV",
		ClientAddress1: "Havenstraat 12",
		ClientAddress2: "3011 Rotterdam",
		BankName:       "First Commercial Bank",
		IBAN:           "NL91ABNA0417164300",
		BIC:            "ABNANL2A",
		Items: []LineItem{
			{No: 1, Reference: "CU-CATH-A", CommercialName: "Copper Cathodes Grade A", Packaging: "Pallet", QuantityLB: 44092.45, PricePerLB: 3.85},
			{No: 2, Reference: "AL-INGOT", CommercialName: "Aluminium Ingots 99.7", Packaging: "Bundle", QuantityLB: 22046.2, PricePerLB: 1.02},
		},
	}
}

func TestGenerateScratchMode(t *testing.T) {
	engine := NewEngine()

	out, filename, err := engine.Generate(sampleInvoice(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "INV_2024_0042.pdf", filename)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateFallsBackWhenTemplateMissing(t *testing.T) {
	engine := NewEngine()

	out, _, err := engine.Generate(sampleInvoice(), Options{
		TemplatePath: "/nonexistent/template.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateFallsBackWhenTemplateIsNotPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.docx")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04 not a pdf"), 0o644))
	engine := NewEngine()

	out, filename, err := engine.Generate(sampleInvoice(), Options{TemplatePath: path})
	require.NoError(t, err)
	assert.Equal(t, "INV_2024_0042.pdf", filename)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateItemsWithoutNumbers(t *testing.T) {
	data := sampleInvoice()
	for i := range data.Items {
		data.Items[i].No = 0
	}
	engine := NewEngine()

	out, _, err := engine.Generate(data, Options{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateManyItemsPaginates(t *testing.T) {
	data := sampleInvoice()
	for i := 3; i <= 60; i++ {
		data.Items = append(data.Items, LineItem{
			No: i, Reference: "REF", CommercialName: "Filler Row",
			QuantityLB: 100, PricePerLB: 1,
		})
	}
	engine := NewEngine()

	out, _, err := engine.Generate(data, Options{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "INV_2024_0042.pdf", Filename("INV-2024/0042"))
	assert.Equal(t, "invoice.pdf", Filename("///"))
	assert.Equal(t, "A1.pdf", Filename("A1"))
}

func TestScalerProportionalPositions(t *testing.T) {
	// A template twice the reference size doubles every coordinate.
	s := newScaler(refPageWidth*2, refPageHeight*2)
	assert.InDelta(t, 120.0, s.x(60), 0.0001)
	assert.InDelta(t, 640.0, s.y(320), 0.0001)

	// Letter-size pages scale each axis independently.
	letter := newScaler(612, 792)
	assert.InDelta(t, 60*612.0/595.0, letter.x(60), 0.0001)
	assert.InDelta(t, 320*792.0/842.0, letter.y(320), 0.0001)
}
