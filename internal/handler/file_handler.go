package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"metalflow/internal/service"
)

// FileHandler handles attachment upload and retrieval.
type FileHandler struct {
	fileService service.FileService
}

func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload handles POST /api/v1/files/:entity.
func (h *FileHandler) Upload(c *gin.Context) {
	entity := c.Param("entity")

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

	result, err := h.fileService.Upload(c.Request.Context(), entity, f, fileHeader)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Download handles GET /api/v1/files/:entity/:filename.
func (h *FileHandler) Download(c *gin.Context) {
	entity := c.Param("entity")
	filename := c.Param("filename")

	rc, contentType, err := h.fileService.Open(c.Request.Context(), entity, filename)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

// Delete handles DELETE /api/v1/files/:entity/:filename.
func (h *FileHandler) Delete(c *gin.Context) {
	entity := c.Param("entity")
	filename := c.Param("filename")

	if err := h.fileService.Delete(c.Request.Context(), entity, filename); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "file deleted"})
}
