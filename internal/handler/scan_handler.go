package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"metalflow/internal/service"
)

// ScanHandler handles order document scanning.
type ScanHandler struct {
	scanService service.OrderScanService
}

func NewScanHandler(scanService service.OrderScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// Scan handles POST /api/v1/orders/scan. The uploaded document is
// archived, extracted, and matched against known parties and products.
func (h *ScanHandler) Scan(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing file field")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not read uploaded file")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not read uploaded file")
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	result, err := h.scanService.Scan(c.Request.Context(), content, contentType, ext)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
