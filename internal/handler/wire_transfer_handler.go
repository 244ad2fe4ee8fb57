package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"metalflow/internal/port"
	"metalflow/internal/service"
)

// WireTransferHandler handles wire transfer endpoints. Transfers start
// pending and are decided once by an admin.
type WireTransferHandler struct {
	transferService service.WireTransferService
}

func NewWireTransferHandler(transferService service.WireTransferService) *WireTransferHandler {
	return &WireTransferHandler{transferService: transferService}
}

// Create handles POST /api/v1/wire-transfers.
func (h *WireTransferHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateWireTransferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	transfer, err := h.transferService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, transfer)
}

// Get handles GET /api/v1/wire-transfers/:id.
func (h *WireTransferHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid wire transfer id")
		return
	}

	transfer, err := h.transferService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, transfer)
}

// List handles GET /api/v1/wire-transfers.
func (h *WireTransferHandler) List(c *gin.Context) {
	page, limit, offset, search, status := pageParams(c)

	transfers, total, err := h.transferService.List(c.Request.Context(), port.ListFilter{
		Offset: offset,
		Limit:  limit,
		Search: search,
		Status: status,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, transfers, total, page, limit)
}

// ListByInvoice handles GET /api/v1/invoices/:id/wire-transfers.
func (h *WireTransferHandler) ListByInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	transfers, err := h.transferService.ListByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, transfers)
}

// Decide handles POST /api/v1/wire-transfers/:id/decide.
func (h *WireTransferHandler) Decide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid wire transfer id")
		return
	}

	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.DecideWireTransferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	transfer, err := h.transferService.Decide(c.Request.Context(), id, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, transfer)
}

// Delete handles DELETE /api/v1/wire-transfers/:id.
func (h *WireTransferHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid wire transfer id")
		return
	}

	if err := h.transferService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "wire transfer deleted"})
}
