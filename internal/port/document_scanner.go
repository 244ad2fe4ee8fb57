package port

import "context"

// ScanInput carries an uploaded order document for extraction.
type ScanInput struct {
	FileBytes   []byte
	ContentType string
}

// ScannedItem is one extracted order line.
type ScannedItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

// ScanResult is the structured order extracted from a document.
type ScanResult struct {
	OrderNumber string        `json:"order_number"`
	OrderDate   string        `json:"order_date"`
	PartyName   string        `json:"party_name"`
	Currency    string        `json:"currency"`
	Notes       string        `json:"notes"`
	Items       []ScannedItem `json:"items"`
}

// DocumentScanner abstracts the external document-understanding service.
type DocumentScanner interface {
	Scan(ctx context.Context, input ScanInput) (*ScanResult, error)
}
