package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/pdf"
	"metalflow/internal/port"
	"metalflow/internal/service"
)

// InvoiceHandler handles invoice CRUD, status, and PDF endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// statusUpdateRequest is the body for all PATCH status endpoints.
type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// Create handles POST /api/v1/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// Get handles GET /api/v1/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// List handles GET /api/v1/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	page, limit, offset, search, status := pageParams(c)

	invoices, total, err := h.invoiceService.List(c.Request.Context(), port.ListFilter{
		Offset: offset,
		Limit:  limit,
		Search: search,
		Status: status,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, total, page, limit)
}

// Update handles PUT /api/v1/invoices/:id.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	var input service.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// UpdateStatus handles PATCH /api/v1/invoices/:id/status.
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, domain.InvoiceStatus(req.Status), userID, req.Note)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Delete handles DELETE /api/v1/invoices/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice deleted"})
}

// GeneratePDF handles POST /api/v1/invoices/:id/pdf. The stored invoice
// is rendered; pass use_template=false to force the scratch layout.
func (h *InvoiceHandler) GeneratePDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	useTemplate := c.DefaultQuery("use_template", "true") != "false"

	out, filename, err := h.invoiceService.GenerateInvoicePDF(c.Request.Context(), id, useTemplate)
	if err != nil {
		HandleError(c, err)
		return
	}

	writePDF(c, out, filename)
}

type generatePDFRequest struct {
	pdf.InvoiceData
	UseTemplate *bool `json:"use_template"`
}

// GenerateAdHocPDF handles POST /api/v1/invoices/generate-pdf. The
// invoice data comes from the request body and is never persisted.
func (h *InvoiceHandler) GenerateAdHocPDF(c *gin.Context) {
	var req generatePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	useTemplate := req.UseTemplate == nil || *req.UseTemplate

	out, filename, err := h.invoiceService.GeneratePDF(c.Request.Context(), &req.InvoiceData, useTemplate)
	if err != nil {
		HandleError(c, err)
		return
	}

	writePDF(c, out, filename)
}

func writePDF(c *gin.Context, out []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", out)
}
