package stockcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"metalflow/internal/domain"
)

// Column headers recognized in stock files, matched case-insensitively.
// Only article is mandatory.
var recognizedColumns = map[string]struct{}{
	"whs": {}, "location": {}, "article": {}, "description": {},
	"stock": {}, "unit": {}, "weight_lb": {}, "lot": {},
}

// Parse reads warehouse rows from CSV or semicolon-delimited text.
// The delimiter is auto-detected from the header line. Rows fail soft:
// short rows and rows without an article are skipped, an unparsable
// stock becomes 0 and an unparsable weight becomes absent.
func Parse(raw []byte) ([]domain.WarehouseStock, error) {
	headerLine, err := firstLine(raw)
	if err != nil {
		return nil, err
	}

	delimiter := ','
	if strings.ContainsRune(headerLine, ';') {
		delimiter = ';'
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("stockcsv.Parse header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := recognizedColumns[key]; ok {
			cols[key] = i
		}
	}
	if _, ok := cols["article"]; !ok {
		return nil, domain.ErrMissingArticleColumn
	}

	var rows []domain.WarehouseStock
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stockcsv.Parse row: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		article := field(record, cols, "article")
		if article == "" {
			continue
		}

		row := domain.WarehouseStock{
			WHS:         field(record, cols, "whs"),
			Location:    field(record, cols, "location"),
			Article:     article,
			Description: field(record, cols, "description"),
			Unit:        field(record, cols, "unit"),
			Lot:         field(record, cols, "lot"),
		}
		if v, err := strconv.ParseInt(field(record, cols, "stock"), 10, 64); err == nil {
			row.Stock = v
		}
		if w, err := decimal.NewFromString(field(record, cols, "weight_lb")); err == nil {
			row.WeightLB = &w
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func firstLine(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", domain.ErrEmptyStockFile
	}
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		return string(trimmed[:i]), nil
	}
	return string(trimmed), nil
}
