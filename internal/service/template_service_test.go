package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalflow/internal/domain"
	"metalflow/internal/template"
)

func TestTemplateUpload_RejectsNonTemplateTypes(t *testing.T) {
	svc := NewTemplateService(template.NewStore(t.TempDir()))

	_, err := svc.Upload(context.Background(), "csv", []byte("a,b\n"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	_, err = svc.Upload(context.Background(), "png", []byte{0x89, 0x50})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestTemplateUpload_UnreadableContentStillStored(t *testing.T) {
	svc := NewTemplateService(template.NewStore(t.TempDir()))

	// Not a valid PDF, so text extraction fails and the config stays empty.
	info, err := svc.Upload(context.Background(), "pdf", []byte("not a pdf"))
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Empty(t, info.Config)
}

func TestTemplateGet_NoTemplate(t *testing.T) {
	svc := NewTemplateService(template.NewStore(t.TempDir()))

	info, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, info.Exists)
}

func TestTemplateDelete_NoTemplate(t *testing.T) {
	svc := NewTemplateService(template.NewStore(t.TempDir()))

	err := svc.Delete(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoTemplate)
}

func TestTemplateLifecycle(t *testing.T) {
	svc := NewTemplateService(template.NewStore(t.TempDir()))

	_, err := svc.Upload(context.Background(), "pdf", []byte("placeholder"))
	require.NoError(t, err)

	info, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, info.Exists)

	require.NoError(t, svc.Delete(context.Background()))

	info, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, info.Exists)
}
