package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/port"
	"metalflow/internal/service"
)

// ShipmentHandler handles shipment CRUD and status endpoints.
type ShipmentHandler struct {
	shipmentService service.ShipmentService
}

func NewShipmentHandler(shipmentService service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

// Create handles POST /api/v1/shipments.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var input service.CreateShipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	shipment, err := h.shipmentService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, shipment)
}

// Get handles GET /api/v1/shipments/:id.
func (h *ShipmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid shipment id")
		return
	}

	shipment, err := h.shipmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, shipment)
}

// List handles GET /api/v1/shipments.
func (h *ShipmentHandler) List(c *gin.Context) {
	page, limit, offset, search, status := pageParams(c)

	shipments, total, err := h.shipmentService.List(c.Request.Context(), port.ListFilter{
		Offset: offset,
		Limit:  limit,
		Search: search,
		Status: status,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, shipments, total, page, limit)
}

// Update handles PUT /api/v1/shipments/:id.
func (h *ShipmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid shipment id")
		return
	}

	var input service.UpdateShipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	shipment, err := h.shipmentService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, shipment)
}

// UpdateStatus handles PATCH /api/v1/shipments/:id/status.
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid shipment id")
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

	shipment, err := h.shipmentService.UpdateStatus(c.Request.Context(), id, domain.ShipmentStatus(req.Status), userID, req.Note)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, shipment)
}

// Delete handles DELETE /api/v1/shipments/:id.
func (h *ShipmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid shipment id")
		return
	}

	if err := h.shipmentService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "shipment deleted"})
}
