// Package catalog loads the import-template catalog consumed by structure
// detection.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vykaz/pkg/vykaz/models"
)

const (
	// envPath overrides the default catalog location.
	envPath     = "VYKAZ_TEMPLATES_PATH"
	defaultPath = "configs/templates.yaml"
)

type catalogFile struct {
	Templates []models.ImportTemplate `yaml:"templates"`
}

// Load reads the template catalog from the given path. When path is empty,
// the VYKAZ_TEMPLATES_PATH environment variable and then configs/templates.yaml
// are tried; if neither resolves to a file, the built-in catalog is returned.
// An explicitly given path must exist.
func Load(path string) ([]models.ImportTemplate, error) {
	explicit := path != ""
	if path == "" {
		path = os.Getenv(envPath)
		explicit = path != ""
	}
	if path == "" {
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read template catalog: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}
	if err := validate(cf.Templates); err != nil {
		return nil, fmt.Errorf("invalid template catalog %s: %w", path, err)
	}
	return cf.Templates, nil
}

// Default returns the built-in template catalog: the Czech coding standards
// plus a generic fallback with no expected standard.
func Default() []models.ImportTemplate {
	return []models.ImportTemplate{
		{ID: "urs", Name: "ÚRS CS", StandardType: "urs"},
		{ID: "rts", Name: "RTS DATA", StandardType: "rts"},
		{ID: "otskp", Name: "OTSKP-SPK", StandardType: "otskp"},
		{ID: "cpv", Name: "CPV", StandardType: "cpv"},
		{ID: "generic", Name: "Obecný rozpočet", StandardType: ""},
	}
}

func validate(templates []models.ImportTemplate) error {
	if len(templates) == 0 {
		return errors.New("no templates configured")
	}
	seen := make(map[string]bool, len(templates))
	for i, tpl := range templates {
		if tpl.ID == "" {
			return fmt.Errorf("template %d: missing id", i)
		}
		if seen[tpl.ID] {
			return fmt.Errorf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true
	}
	return nil
}
