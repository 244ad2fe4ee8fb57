package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"metalflow/internal/service"
)

// ReportHandler handles spreadsheet exports.
type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// InvoiceRegister handles GET /api/v1/reports/invoices. Returns the
// full invoice register as an xlsx workbook.
func (h *ReportHandler) InvoiceRegister(c *gin.Context) {
	out, err := h.reportService.InvoiceRegisterXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("invoice_register_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
}
