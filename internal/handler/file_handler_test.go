package handler

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalflow/internal/domain"
	"metalflow/internal/service"
)

type stubFileService struct {
	openErr error
	body    string
}

func (s *stubFileService) Upload(_ context.Context, _ string, _ multipart.File, _ *multipart.FileHeader) (*service.FileUploadResult, error) {
	return nil, nil
}

func (s *stubFileService) Open(_ context.Context, entity, filename string) (io.ReadCloser, string, error) {
	if s.openErr != nil {
		return nil, "", s.openErr
	}
	return io.NopCloser(strings.NewReader(s.body)), "application/pdf", nil
}

func (s *stubFileService) Delete(_ context.Context, _, _ string) error {
	return nil
}

func newFileRouter(svc service.FileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFileHandler(svc)
	r.GET("/files/:entity/:filename", h.Download)
	return r
}

func TestFileDownload_InvalidFilenameIs400(t *testing.T) {
	r := newFileRouter(&stubFileService{openErr: domain.ErrInvalidFilename})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/files/invoices/doc%2f..%2fsecret.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_FILENAME", resp.Error.Code)
}

func TestFileDownload_StreamsWithContentType(t *testing.T) {
	r := newFileRouter(&stubFileService{body: "%PDF-1.4 fake"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/files/invoices/doc.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func TestFileDownload_MissingFileIs404(t *testing.T) {
	r := newFileRouter(&stubFileService{openErr: domain.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/files/invoices/gone.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
