package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"metalflow/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", errors.New("x"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"inactive user", domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},
		{"duplicate invoice number", domain.ErrDuplicateInvoiceNo, http.StatusConflict, "DUPLICATE_INVOICE_NUMBER"},
		{"duplicate sku", domain.ErrDuplicateSKU, http.StatusConflict, "DUPLICATE_SKU"},
		{"duplicate lot", domain.ErrDuplicateLotNumber, http.StatusConflict, "DUPLICATE_LOT_NUMBER"},
		{"already decided", domain.ErrInvalidTransition, http.StatusConflict, "NOT_PENDING"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"bad filename", domain.ErrInvalidFilename, http.StatusBadRequest, "INVALID_FILENAME"},
		{"missing article column", domain.ErrMissingArticleColumn, http.StatusBadRequest, "MISSING_ARTICLE_COLUMN"},
		{"empty stock file", domain.ErrEmptyStockFile, http.StatusBadRequest, "EMPTY_STOCK_FILE"},
		{"no template", domain.ErrNoTemplate, http.StatusNotFound, "NO_TEMPLATE"},
		{"scanner unconfigured", domain.ErrScannerUnconfigured, http.StatusNotImplemented, "SCANNER_UNCONFIGURED"},
		{"generation failed", domain.ErrGenerationFailed, http.StatusInternalServerError, "GENERATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestMapDomainError_GenerationFailureCarriesCause(t *testing.T) {
	wrapped := fmt.Errorf("%w: Failed to read pdf: unexpected EOF", domain.ErrGenerationFailed)
	status, code, msg := MapDomainError(wrapped)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "GENERATION_FAILED", code)
	assert.Contains(t, msg, "unexpected EOF")
}

func TestMapDomainError_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("customerRepo.GetByID"), domain.ErrNotFound)
	status, code, _ := MapDomainError(wrapped)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", code)
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return c
	}

	page, limit, offset, search, status := pageParams(newCtx("page=3&limit=25&search=copper&status=sent"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
	assert.Equal(t, "copper", search)
	assert.Equal(t, "sent", status)

	page, limit, offset, _, _ = pageParams(newCtx(""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	_, limit, _, _, _ = pageParams(newCtx("limit=5000"))
	assert.Equal(t, 20, limit)

	page, _, offset, _, _ = pageParams(newCtx("page=-2"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, offset)
}
