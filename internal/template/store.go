package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	baseName       = "template"
	configFileName = "template_config.json"
)

// Store keeps the single active invoice template on disk together with
// its extracted config sidecar. Uploading a new template removes the
// previous file; deleting removes both files.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the uploaded template, replacing any previous one, and
// returns the stored path.
func (s *Store) Save(ext string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("template.Store.Save mkdir: %w", err)
	}
	if err := s.removeTemplateFiles(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, baseName+"."+strings.TrimPrefix(strings.ToLower(ext), "."))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("template.Store.Save write: %w", err)
	}
	return path, nil
}

// TemplatePath reports the stored template file, if one exists.
func (s *Store) TemplatePath() (string, bool) {
	matches, err := filepath.Glob(filepath.Join(s.dir, baseName+".*"))
	if err != nil {
		return "", false
	}
	for _, m := range matches {
		if filepath.Base(m) != configFileName {
			return m, true
		}
	}
	return "", false
}

// SaveConfig persists the extracted field mapping next to the template.
func (s *Store) SaveConfig(cfg TemplateConfig) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("template.Store.SaveConfig mkdir: %w", err)
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("template.Store.SaveConfig marshal: %w", err)
	}
	if err := os.WriteFile(s.configPath(), raw, 0o644); err != nil {
		return fmt.Errorf("template.Store.SaveConfig write: %w", err)
	}
	return nil
}

// LoadConfig reads the sidecar config. A missing sidecar is not an
// error; it returns an empty mapping.
func (s *Store) LoadConfig() (TemplateConfig, error) {
	raw, err := os.ReadFile(s.configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return TemplateConfig{}, nil
		}
		return nil, fmt.Errorf("template.Store.LoadConfig read: %w", err)
	}
	var cfg TemplateConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("template.Store.LoadConfig unmarshal: %w", err)
	}
	return cfg, nil
}

// Delete removes the template file and its config sidecar.
func (s *Store) Delete() error {
	if err := s.removeTemplateFiles(); err != nil {
		return err
	}
	if err := os.Remove(s.configPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("template.Store.Delete config: %w", err)
	}
	return nil
}

func (s *Store) configPath() string {
	return filepath.Join(s.dir, configFileName)
}

func (s *Store) removeTemplateFiles() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, baseName+".*"))
	if err != nil {
		return fmt.Errorf("template.Store glob: %w", err)
	}
	for _, m := range matches {
		if filepath.Base(m) == configFileName {
			continue
		}
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("template.Store remove %s: %w", m, err)
		}
	}
	return nil
}
