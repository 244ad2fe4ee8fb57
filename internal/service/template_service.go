package service

import (
	"context"

	"metalflow/internal/domain"
	"metalflow/internal/template"
)

// TemplateInfo describes the currently stored invoice template.
type TemplateInfo struct {
	Exists   bool                    `json:"exists"`
	Filename string                  `json:"filename,omitempty"`
	Config   template.TemplateConfig `json:"config,omitempty"`
}

// TemplateService manages the single active invoice template and its
// extracted field config.
type TemplateService interface {
	Upload(ctx context.Context, ext string, content []byte) (*TemplateInfo, error)
	Get(ctx context.Context) (*TemplateInfo, error)
	Delete(ctx context.Context) error
}

type templateService struct {
	store *template.Store
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(store *template.Store) TemplateService {
	return &templateService{store: store}
}

// Upload stores the new template, replacing any previous one, then
// extracts the field config from its text. Extraction is best-effort:
// a document whose text cannot be read still becomes the active
// template, with an empty config.
func (s *templateService) Upload(_ context.Context, ext string, content []byte) (*TemplateInfo, error) {
	if _, ok := domain.AllowedExtensions[ext]; !ok || (ext != "pdf" && ext != "docx") {
		return nil, domain.ErrUnsupportedFileType
	}

	path, err := s.store.Save(ext, content)
	if err != nil {
		return nil, err
	}

	cfg := template.TemplateConfig{}
	if text, err := template.ExtractText(path); err == nil {
		cfg = template.Extract(text)
	}
	if err := s.store.SaveConfig(cfg); err != nil {
		return nil, err
	}

	return &TemplateInfo{Exists: true, Filename: path, Config: cfg}, nil
}

func (s *templateService) Get(_ context.Context) (*TemplateInfo, error) {
	path, ok := s.store.TemplatePath()
	if !ok {
		return &TemplateInfo{Exists: false}, nil
	}
	cfg, err := s.store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &TemplateInfo{Exists: true, Filename: path, Config: cfg}, nil
}

func (s *templateService) Delete(_ context.Context) error {
	if _, ok := s.store.TemplatePath(); !ok {
		return domain.ErrNoTemplate
	}
	return s.store.Delete()
}
