package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalflow/internal/config"
	"metalflow/internal/domain"
	"metalflow/internal/port"
)

func scannerResponse(content string) string {
	body := map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]interface{}{"content": content},
				"finish_reason": "stop",
			},
		},
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

const extractedJSON = `{
  "order_number": "PO-7781",
  "order_date": "2024-05-02",
  "party_name": "Acme Alloys BV",
  "currency": "USD",
  "notes": "",
  "items": [
    {"name": "Copper Cathodes Grade A", "quantity": 20, "unit": "tons", "unit_price": 8400}
  ]
}`

func newTestScanner(t *testing.T, handler http.HandlerFunc) *Scanner {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewScannerWithEndpoint(&config.ScannerConfig{APIKey: "test-key", Model: "gpt-4o"}, srv.URL)
}

func TestScanParsesExtraction(t *testing.T) {
	var authHeader string
	s := newTestScanner(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scannerResponse(extractedJSON)))
	})

	result, err := s.Scan(context.Background(), port.ScanInput{
		FileBytes:   []byte("%PDF-1.4 fake"),
		ContentType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "PO-7781", result.OrderNumber)
	assert.Equal(t, "Acme Alloys BV", result.PartyName)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Copper Cathodes Grade A", result.Items[0].Name)
	assert.Equal(t, 20.0, result.Items[0].Quantity)
}

func TestScanStripsCodeFences(t *testing.T) {
	s := newTestScanner(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scannerResponse("```json\n" + extractedJSON + "\n```")))
	})

	result, err := s.Scan(context.Background(), port.ScanInput{
		FileBytes:   []byte{0xFF, 0xD8, 0xFF},
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-7781", result.OrderNumber)
}

func TestScanMissingAPIKey(t *testing.T) {
	s := NewScanner(&config.ScannerConfig{})

	_, err := s.Scan(context.Background(), port.ScanInput{
		FileBytes:   []byte("x"),
		ContentType: "application/pdf",
	})
	assert.ErrorIs(t, err, domain.ErrScannerUnconfigured)
}

func TestScanUnsupportedContentType(t *testing.T) {
	s := newTestScanner(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the API")
	})

	_, err := s.Scan(context.Background(), port.ScanInput{
		FileBytes:   []byte("hello"),
		ContentType: "text/plain",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestScanAPIErrorStatus(t *testing.T) {
	s := newTestScanner(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	})

	_, err := s.Scan(context.Background(), port.ScanInput{
		FileBytes:   []byte("%PDF"),
		ContentType: "application/pdf",
	})
	assert.ErrorIs(t, err, domain.ErrScanFailed)
}

func TestScanMalformedExtraction(t *testing.T) {
	s := newTestScanner(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scannerResponse("definitely not json")))
	})

	_, err := s.Scan(context.Background(), port.ScanInput{
		FileBytes:   []byte("%PDF"),
		ContentType: "application/pdf",
	})
	assert.ErrorIs(t, err, domain.ErrScanFailed)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
