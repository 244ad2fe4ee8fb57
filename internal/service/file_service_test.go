package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"metalflow/internal/config"
	"metalflow/internal/domain"
	"metalflow/mocks"
)

func newFileService(storage *mocks.MockObjectStorage) FileService {
	return NewFileService(storage, &config.UploadsConfig{Dir: "uploads", MaxFileSizeMB: 10})
}

func TestFileOpen_RejectsTraversalFilename(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := newFileService(storage)

	_, _, err := svc.Open(context.Background(), "invoices", "../../etc/passwd")
	require.ErrorIs(t, err, domain.ErrInvalidFilename)
	storage.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestFileOpen_RejectsBadEntity(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := newFileService(storage)

	_, _, err := svc.Open(context.Background(), "invoices/..", "doc.pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidFilename)
}

func TestFileOpen_RejectsDisallowedExtension(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := newFileService(storage)

	_, _, err := svc.Open(context.Background(), "invoices", "shell.sh")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestFileOpen_StorageMissMapsToNotFound(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := newFileService(storage)

	storage.On("Open", mock.Anything, "invoices/doc.pdf").Return(nil, io.ErrUnexpectedEOF)

	_, _, err := svc.Open(context.Background(), "invoices", "doc.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileOpen_ReturnsContentType(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := newFileService(storage)

	storage.On("Open", mock.Anything, "invoices/doc.csv").
		Return(io.NopCloser(strings.NewReader("a,b\n")), nil)

	rc, contentType, err := svc.Open(context.Background(), "invoices", "doc.csv")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "text/csv", contentType)
}

func TestFileDelete_ValidatesBothParts(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := newFileService(storage)

	err := svc.Delete(context.Background(), "invoices", `..\doc.pdf`)
	assert.ErrorIs(t, err, domain.ErrInvalidFilename)
}
