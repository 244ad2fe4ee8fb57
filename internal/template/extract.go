package template

import (
	"strings"
	"unicode"
)

// TemplateConfig is the flat field mapping extracted from an uploaded
// template document. Unmatched fields are simply absent.
type TemplateConfig map[string]string

// labelPrefixes maps a recognized line prefix to the config field the
// remainder of the line is stored under. Longer prefixes are checked
// first so "phone" wins over "tel" style overlaps.
var labelPrefixes = []struct {
	prefix string
	field  string
}{
	{"phone", "company_tel"},
	{"tel", "company_tel"},
	{"email", "company_email"},
	{"vat", "company_vat"},
	{"iban", "iban"},
	{"swift", "bic"},
	{"bic", "bic"},
	{"bank", "bank_name"},
}

var companyFields = [3]string{"company_name", "company_address1", "company_address2"}

// Extract derives a best-effort TemplateConfig from raw template text.
// It is a single-pass heuristic over trimmed lines: labelled lines fill
// their field, and the first three substantial unlabelled lines become
// the company name and address. Pure function of its input.
func Extract(text string) TemplateConfig {
	cfg := TemplateConfig{}
	companyIdx := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if field, rest, ok := matchLabel(line); ok {
			if _, seen := cfg[field]; !seen && rest != "" {
				cfg[field] = rest
			}
			continue
		}

		if companyIdx < len(companyFields) && isCompanyLine(line) {
			cfg[companyFields[companyIdx]] = line
			companyIdx++
		}
	}
	return cfg
}

func matchLabel(line string) (field, rest string, ok bool) {
	lower := strings.ToLower(line)
	for _, lp := range labelPrefixes {
		if !strings.HasPrefix(lower, lp.prefix) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimLeft(line[len(lp.prefix):], " \t:.-"))
		return lp.field, rest, true
	}
	return "", "", false
}

// isCompanyLine accepts lines long enough to be a name or address that
// do not look like labels, numbers or shouting headers.
func isCompanyLine(line string) bool {
	if len(line) <= 3 {
		return false
	}
	if _, _, ok := matchLabel(line); ok {
		return false
	}
	if unicode.IsDigit(rune(line[0])) {
		return false
	}
	if isAllUpper(line) {
		return false
	}
	return true
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
