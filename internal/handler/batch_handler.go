package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/port"
	"metalflow/internal/service"
)

// BatchHandler handles production batch CRUD and status endpoints.
type BatchHandler struct {
	batchService service.ProductionBatchService
}

func NewBatchHandler(batchService service.ProductionBatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// Create handles POST /api/v1/batches.
func (h *BatchHandler) Create(c *gin.Context) {
	var input service.CreateBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	batch, err := h.batchService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, batch)
}

// Get handles GET /api/v1/batches/:id.
func (h *BatchHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid batch id")
		return
	}

	batch, err := h.batchService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, batch)
}

// List handles GET /api/v1/batches.
func (h *BatchHandler) List(c *gin.Context) {
	page, limit, offset, search, status := pageParams(c)

	batches, total, err := h.batchService.List(c.Request.Context(), port.ListFilter{
		Offset: offset,
		Limit:  limit,
		Search: search,
		Status: status,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, batches, total, page, limit)
}

// Update handles PUT /api/v1/batches/:id.
func (h *BatchHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid batch id")
		return
	}

	var input service.UpdateBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	batch, err := h.batchService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, batch)
}

// UpdateStatus handles PATCH /api/v1/batches/:id/status.
func (h *BatchHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid batch id")
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

	batch, err := h.batchService.UpdateStatus(c.Request.Context(), id, domain.BatchStatus(req.Status), userID, req.Note)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, batch)
}

// Delete handles DELETE /api/v1/batches/:id.
func (h *BatchHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid batch id")
		return
	}

	if err := h.batchService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "production batch deleted"})
}
