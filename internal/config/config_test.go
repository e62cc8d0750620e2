package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if !cfg.General.RecordHistory {
		t.Error("expected RecordHistory to be true by default")
	}
	if cfg.General.Brewfile != "" {
		t.Error("expected no Brewfile override by default")
	}
	if cfg.General.DryRun {
		t.Error("expected DryRun to be false by default")
	}

	if !cfg.Output.Color {
		t.Error("expected Color to be true by default")
	}
	if !cfg.Output.Unicode {
		t.Error("expected Unicode to be true by default")
	}
	if cfg.Output.Verbose {
		t.Error("expected Verbose to be false by default")
	}

	if len(cfg.Lint.Disable) != 0 {
		t.Error("expected no disabled lint tools by default")
	}
}

func TestToolDisabled(t *testing.T) {
	cfg := &Config{
		Lint: LintConfig{Disable: []string{"yamllint", "shfmt"}},
	}

	tests := []struct {
		tool string
		want bool
	}{
		{"yamllint", true},
		{"shfmt", true},
		{"shellcheck", false},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			if got := cfg.ToolDisabled(tt.tool); got != tt.want {
				t.Errorf("ToolDisabled(%s) = %v, want %v", tt.tool, got, tt.want)
			}
		})
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Color: true},
	}

	os.Unsetenv("NO_COLOR")
	if !cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return true")
	}

	os.Setenv("NO_COLOR", "1")
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	cfg.Output.Color = false
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when Color is false")
	}
}

func TestLoadSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.General.Brewfile = "/tmp/Brewfile.test"
	cfg.Lint.Disable = []string{"yamllint"}

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if loaded.General.Brewfile != "/tmp/Brewfile.test" {
		t.Errorf("loaded Brewfile = %q, want /tmp/Brewfile.test", loaded.General.Brewfile)
	}
	if !loaded.ToolDisabled("yamllint") {
		t.Error("loaded config doesn't have expected disabled tool")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	cfg, err := LoadFrom("/non/existent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadFrom() should not error for non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadFrom() should return default config for non-existent file")
	}

	if !cfg.Output.Color {
		t.Error("expected default Color to be true")
	}
}
