package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test catalog: %v", err)
	}
	return path
}

func TestLoadCatalog_ExplicitPath(t *testing.T) {
	path := writeCatalog(t, `
templates:
  - id: urs
    name: ÚRS CS
    standard_type: urs
  - id: custom
    name: Firemní šablona
`)

	templates, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(templates))
	}
	if templates[0].ID != "urs" || templates[0].StandardType != "urs" {
		t.Errorf("Unexpected first template: %+v", templates[0])
	}
	if templates[1].ID != "custom" || templates[1].StandardType != "" {
		t.Errorf("Unexpected second template: %+v", templates[1])
	}
}

func TestLoadCatalog_EnvPath(t *testing.T) {
	path := writeCatalog(t, `
templates:
  - id: rts
    name: RTS DATA
    standard_type: rts
`)

	os.Setenv("VYKAZ_TEMPLATES_PATH", path)
	defer os.Unsetenv("VYKAZ_TEMPLATES_PATH")

	templates, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(templates) != 1 || templates[0].ID != "rts" {
		t.Errorf("Expected the catalog from VYKAZ_TEMPLATES_PATH, got: %+v", templates)
	}
}

func TestLoadCatalog_DefaultFallback(t *testing.T) {
	os.Unsetenv("VYKAZ_TEMPLATES_PATH")

	templates, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	builtin := Default()
	if len(templates) != len(builtin) {
		t.Fatalf("Expected %d built-in templates, got %d", len(builtin), len(templates))
	}
	for i := range builtin {
		if templates[i].ID != builtin[i].ID {
			t.Errorf("Template %d = %q, expected %q", i, templates[i].ID, builtin[i].ID)
		}
	}
}

func TestLoadCatalog_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing explicit path")
	}
	if !strings.Contains(err.Error(), "failed to read template catalog") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadCatalog_MissingEnvPath(t *testing.T) {
	os.Setenv("VYKAZ_TEMPLATES_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	defer os.Unsetenv("VYKAZ_TEMPLATES_PATH")

	_, err := Load("")
	if err == nil {
		t.Fatal("Expected an error when VYKAZ_TEMPLATES_PATH points at a missing file")
	}
	if !strings.Contains(err.Error(), "failed to read template catalog") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadCatalog_InvalidYAML(t *testing.T) {
	path := writeCatalog(t, "templates: [oops")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse template catalog") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadCatalog_DuplicateID(t *testing.T) {
	path := writeCatalog(t, `
templates:
  - id: urs
    name: ÚRS CS
  - id: urs
    name: ÚRS CS again
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error for duplicate template ids")
	}
	if !strings.Contains(err.Error(), `duplicate template id "urs"`) {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadCatalog_MissingID(t *testing.T) {
	path := writeCatalog(t, `
templates:
  - name: Bez identifikátoru
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error for a template without id")
	}
	if !strings.Contains(err.Error(), "missing id") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadCatalog_EmptyList(t *testing.T) {
	path := writeCatalog(t, "templates: []")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error for an empty template list")
	}
	if !strings.Contains(err.Error(), "no templates configured") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestDefaultCatalog(t *testing.T) {
	templates := Default()
	expected := []string{"urs", "rts", "otskp", "cpv", "generic"}

	if len(templates) != len(expected) {
		t.Fatalf("Expected %d templates, got %d", len(expected), len(templates))
	}
	for i, id := range expected {
		if templates[i].ID != id {
			t.Errorf("Template %d = %q, expected %q", i, templates[i].ID, id)
		}
	}
	if templates[4].StandardType != "" {
		t.Errorf("Generic template should carry no standard, got %q", templates[4].StandardType)
	}
}
