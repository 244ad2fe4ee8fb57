package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveReplacesPrevious(t *testing.T) {
	store := NewStore(t.TempDir())

	first, err := store.Save("pdf", []byte("%PDF-1.4 old"))
	require.NoError(t, err)

	second, err := store.Save("docx", []byte("new"))
	require.NoError(t, err)

	_, statErr := os.Stat(first)
	assert.True(t, os.IsNotExist(statErr), "previous template should be removed")

	path, ok := store.TemplatePath()
	require.True(t, ok)
	assert.Equal(t, second, path)
	assert.Equal(t, ".docx", filepath.Ext(path))
}

func TestStoreConfigRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	cfg := TemplateConfig{"company_name": "Nordic Metals Trading ApS", "iban": "DK5000400440116243"}
	require.NoError(t, store.SaveConfig(cfg))

	loaded, err := store.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestStoreLoadConfigMissingIsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())

	cfg, err := store.LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Save("pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, store.SaveConfig(TemplateConfig{"bic": "DABADKKK"}))

	require.NoError(t, store.Delete())

	_, ok := store.TemplatePath()
	assert.False(t, ok)
	cfg, err := store.LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg)
}
