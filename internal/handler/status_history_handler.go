package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"metalflow/internal/port"
	"metalflow/internal/service"
)

// StatusHistoryHandler handles the append-only status ledger endpoints.
type StatusHistoryHandler struct {
	historyService service.StatusHistoryService
}

func NewStatusHistoryHandler(historyService service.StatusHistoryService) *StatusHistoryHandler {
	return &StatusHistoryHandler{historyService: historyService}
}

// ListByEntity handles GET /api/v1/status-history/:entityType/:id.
func (h *StatusHistoryHandler) ListByEntity(c *gin.Context) {
	entityType := c.Param("entityType")

	entityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid entity id")
		return
	}

	page, limit, offset, _, _ := pageParams(c)

	entries, total, err := h.historyService.ListByEntity(c.Request.Context(), entityType, entityID, port.ListFilter{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, total, page, limit)
}
