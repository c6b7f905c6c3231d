package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/juzbuild/juzbuild/internal/model"
)

// ThemeService serves the theme catalog. The catalog is loaded once at
// startup from a YAML file and held in memory; themes change with deploys,
// not at runtime.
type ThemeService struct {
	themes []model.Theme
}

func NewThemeService(themes []model.Theme) *ThemeService {
	return &ThemeService{themes: themes}
}

// LoadThemeCatalog reads the theme catalog YAML file.
func LoadThemeCatalog(path string) ([]model.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme catalog: %w", err)
	}

	var catalog struct {
		Themes []model.Theme `yaml:"themes"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse theme catalog: %w", err)
	}
	if len(catalog.Themes) == 0 {
		return nil, fmt.Errorf("theme catalog %s has no themes", path)
	}
	return catalog.Themes, nil
}

func (s *ThemeService) List() []model.Theme {
	return s.themes
}

func (s *ThemeService) GetByID(id string) (*model.Theme, error) {
	for i := range s.themes {
		if s.themes[i].ID == id {
			return &s.themes[i], nil
		}
	}
	return nil, fmt.Errorf("theme %s not found", id)
}

// Default returns the catalog's default theme, or the first theme when
// none is flagged.
func (s *ThemeService) Default() *model.Theme {
	for i := range s.themes {
		if s.themes[i].Default {
			return &s.themes[i]
		}
	}
	return &s.themes[0]
}
