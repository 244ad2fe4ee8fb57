package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"metalflow/internal/domain"
	"metalflow/internal/pdf"
	"metalflow/internal/port"
	"metalflow/internal/service"
)

type stubInvoiceService struct {
	pdfOut      []byte
	pdfFilename string
	pdfErr      error
}

func (s *stubInvoiceService) Create(_ context.Context, _ uuid.UUID, _ service.CreateInvoiceInput) (*domain.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceService) GetByID(_ context.Context, _ uuid.UUID) (*domain.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceService) List(_ context.Context, _ port.ListFilter) ([]domain.Invoice, int, error) {
	return nil, 0, nil
}
func (s *stubInvoiceService) Update(_ context.Context, _ uuid.UUID, _ service.UpdateInvoiceInput) (*domain.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceService) UpdateStatus(_ context.Context, _ uuid.UUID, _ domain.InvoiceStatus, _ uuid.UUID, _ string) (*domain.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceService) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (s *stubInvoiceService) GeneratePDF(_ context.Context, _ *pdf.InvoiceData, _ bool) ([]byte, string, error) {
	return s.pdfOut, s.pdfFilename, s.pdfErr
}
func (s *stubInvoiceService) GenerateInvoicePDF(_ context.Context, _ uuid.UUID, _ bool) ([]byte, string, error) {
	return s.pdfOut, s.pdfFilename, s.pdfErr
}

func newInvoiceRouter(svc service.InvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewInvoiceHandler(svc)
	r.POST("/invoices/generate-pdf", h.GenerateAdHocPDF)
	r.POST("/invoices/:id/pdf", h.GeneratePDF)
	return r
}

func TestGeneratePDF_ReturnsAttachment(t *testing.T) {
	r := newInvoiceRouter(&stubInvoiceService{
		pdfOut:      []byte("%PDF-1.4 fake"),
		pdfFilename: "INV_2026_001.pdf",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/"+uuid.NewString()+"/pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="INV_2026_001.pdf"`)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestGeneratePDF_BadID(t *testing.T) {
	r := newInvoiceRouter(&stubInvoiceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/not-a-uuid/pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePDF_UnknownInvoiceIs404(t *testing.T) {
	r := newInvoiceRouter(&stubInvoiceService{pdfErr: domain.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/"+uuid.NewString()+"/pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateAdHocPDF_ValidatesBody(t *testing.T) {
	r := newInvoiceRouter(&stubInvoiceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/generate-pdf", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// invoice_number is required.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateAdHocPDF_Renders(t *testing.T) {
	r := newInvoiceRouter(&stubInvoiceService{
		pdfOut:      []byte("%PDF-1.4 fake"),
		pdfFilename: "invoice.pdf",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/generate-pdf",
		strings.NewReader(`{"invoice_number":"INV-1","use_template":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}
