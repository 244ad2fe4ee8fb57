package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"metalflow/internal/port"
	"metalflow/internal/service"
)

// StockHandler handles warehouse stock snapshot endpoints.
type StockHandler struct {
	stockService service.StockService
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Import handles POST /api/v1/stock/import. The uploaded CSV replaces
// the entire warehouse snapshot in one transaction.
func (h *StockHandler) Import(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

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

	raw, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not read uploaded file")
		return
	}

	source := c.PostForm("source")

	result, err := h.stockService.Import(c.Request.Context(), raw, fileHeader.Filename, source, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// List handles GET /api/v1/stock.
func (h *StockHandler) List(c *gin.Context) {
	page, limit, offset, search, _ := pageParams(c)

	rows, total, err := h.stockService.List(c.Request.Context(), port.ListFilter{
		Offset: offset,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rows, total, page, limit)
}

// ListUploads handles GET /api/v1/stock/uploads.
func (h *StockHandler) ListUploads(c *gin.Context) {
	page, limit, offset, _, _ := pageParams(c)

	uploads, total, err := h.stockService.ListUploads(c.Request.Context(), port.ListFilter{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, uploads, total, page, limit)
}
