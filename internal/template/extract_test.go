package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleTemplateText = `
INVOICE

Nordic Metals Trading ApS
Havnegade 21, 2nd floor
Copenhagen K, Denmark
Tel: +45 33 12 45 67
Email: accounts@nordicmetals.example
VAT: DK12345678
Bank: Danske Bank A/S
IBAN: DK5000400440116243
BIC: DABADKKK
`

func TestExtract(t *testing.T) {
	cfg := Extract(sampleTemplateText)

	assert.Equal(t, "Nordic Metals Trading ApS", cfg["company_name"])
	assert.Equal(t, "Havnegade 21, 2nd floor", cfg["company_address1"])
	assert.Equal(t, "Copenhagen K, Denmark", cfg["company_address2"])
	assert.Equal(t, "+45 33 12 45 67", cfg["company_tel"])
	assert.Equal(t, "accounts@nordicmetals.example", cfg["company_email"])
	assert.Equal(t, "DK12345678", cfg["company_vat"])
	assert.Equal(t, "Danske Bank A/S", cfg["bank_name"])
	assert.Equal(t, "DK5000400440116243", cfg["iban"])
	assert.Equal(t, "DABADKKK", cfg["bic"])
}

func TestExtractSkipsHeadersAndNumbers(t *testing.T) {
	cfg := Extract("TERMS AND CONDITIONS\n123 not a name\nab\nReal Company GmbH\n")

	assert.Equal(t, "Real Company GmbH", cfg["company_name"])
	assert.NotContains(t, cfg, "company_address1")
}

func TestExtractPhoneAndSwiftAliases(t *testing.T) {
	cfg := Extract("Phone +1 555 0100\nSwift CHASUS33\n")

	assert.Equal(t, "+1 555 0100", cfg["company_tel"])
	assert.Equal(t, "CHASUS33", cfg["bic"])
}

func TestExtractIdempotent(t *testing.T) {
	first := Extract(sampleTemplateText)
	second := Extract(sampleTemplateText)

	assert.Equal(t, first, second)
}

func TestExtractEmptyText(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("\n\n  \n"))
}
