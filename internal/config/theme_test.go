package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/kanban/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "kanban-theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
`)
	if err := os.WriteFile(themeFile, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("KANBAN_THEME_FILE", themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestPresetsAreComplete(t *testing.T) {
	for _, name := range colors.Presets() {
		t.Run(name, func(t *testing.T) {
			scheme := colors.GetPreset(name)
			if scheme.Preset != name {
				t.Errorf("GetPreset(%q).Preset = %q", name, scheme.Preset)
			}

			filled := *scheme
			filled.ApplyDefaults()
			if filled != *scheme {
				t.Errorf("preset %q leaves fields empty", name)
			}
		})
	}
}

func TestUnknownPresetFallsBackToDefault(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "neon"}
	scheme.ApplyDefaults()

	if scheme.Accent != colors.Default().Accent {
		t.Errorf("Accent = %s, want default accent", scheme.Accent)
	}
	if scheme.Preset != "neon" {
		t.Errorf("Preset = %s, the requested name should be kept", scheme.Preset)
	}
}
