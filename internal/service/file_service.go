package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"metalflow/internal/config"
	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// safeFilename is the allowlist for retrieval paths. Anything outside
// it is rejected before touching storage.
var safeFilename = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// FileUploadResult describes a stored upload.
type FileUploadResult struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Entity       string `json:"entity"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

// FileService handles validated uploads and allowlisted retrieval.
// Files are stored under per-entity subdirectories with random names.
type FileService interface {
	Upload(ctx context.Context, entity string, file multipart.File, header *multipart.FileHeader) (*FileUploadResult, error)
	Open(ctx context.Context, entity, filename string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, entity, filename string) error
}

type fileService struct {
	storage port.ObjectStorage
	cfg     *config.UploadsConfig
}

// NewFileService creates a new FileService implementation.
func NewFileService(storage port.ObjectStorage, cfg *config.UploadsConfig) FileService {
	return &fileService{storage: storage, cfg: cfg}
}

func (s *fileService) Upload(ctx context.Context, entity string, file multipart.File, header *multipart.FileHeader) (*FileUploadResult, error) {
	if !safeFilename.MatchString(entity) {
		return nil, domain.ErrInvalidFilename
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte check for binary formats. CSV is plain text and has
	// no reliable signature, so it skips the sniff.
	if fileType != domain.FileTypeCSV {
		buf := make([]byte, 512)
		n, err := file.Read(buf)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading file header: %w", err)
		}
		if !domain.SniffedContentTypes[http.DetectContentType(buf[:n])] {
			return nil, domain.ErrUnsupportedFileType
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seeking file: %w", err)
		}
	}

	contentType := domain.ContentTypes[fileType]
	stored := uuid.New().String() + "." + ext
	key := entity + "/" + stored

	log.Printf("fileService.Upload: storing %s (%s, %d bytes) as %s",
		header.Filename, contentType, header.Size, key)

	if err := s.storage.Save(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	return &FileUploadResult{
		Filename:     stored,
		OriginalName: header.Filename,
		Entity:       entity,
		Size:         header.Size,
		ContentType:  contentType,
	}, nil
}

func (s *fileService) Open(ctx context.Context, entity, filename string) (io.ReadCloser, string, error) {
	if !safeFilename.MatchString(entity) || !safeFilename.MatchString(filename) {
		return nil, "", domain.ErrInvalidFilename
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, "", domain.ErrUnsupportedFileType
	}

	rc, err := s.storage.Open(ctx, entity+"/"+filename)
	if err != nil {
		return nil, "", domain.ErrNotFound
	}
	return rc, domain.ContentTypes[fileType], nil
}

func (s *fileService) Delete(ctx context.Context, entity, filename string) error {
	if !safeFilename.MatchString(entity) || !safeFilename.MatchString(filename) {
		return domain.ErrInvalidFilename
	}
	return s.storage.Delete(ctx, entity+"/"+filename)
}
