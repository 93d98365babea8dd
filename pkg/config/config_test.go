package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}
	return configPath
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.DataDir != "data" {
		t.Errorf("expected default DataDir='data', got %q", cfg.DataDir)
	}

	if cfg.OutputDir != "inline_data" {
		t.Errorf("expected default OutputDir='inline_data', got %q", cfg.OutputDir)
	}

	if cfg.HeaderName != "data.h" {
		t.Errorf("expected default HeaderName='data.h', got %q", cfg.HeaderName)
	}

	if cfg.MaxWorkers != 0 {
		t.Errorf("expected default MaxWorkers=0 (auto), got %d", cfg.MaxWorkers)
	}

	if cfg.Minifier.Script != "./node_modules/minify/bin/minify.js" {
		t.Errorf("unexpected default script %q", cfg.Minifier.Script)
	}

	if cfg.Minifier.Timeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Minifier.Timeout())
	}

	if len(cfg.Minifier.Extensions) != 3 {
		t.Errorf("expected 3 default extensions, got %v", cfg.Minifier.Extensions)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/inlinegen.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Minifier.Backend != "node" {
		t.Errorf("expected default backend 'node', got %q", cfg.Minifier.Backend)
	}
}

func TestSave_And_Load(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := DefaultConfig()
	cfg.DataDir = "web"
	cfg.MaxWorkers = 8
	cfg.Exclude = []string{"**/*.map"}
	cfg.Minifier.Backend = "builtin"
	cfg.Minifier.TimeoutSeconds = 5

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loadedCfg.DataDir != "web" {
		t.Errorf("DataDir: expected 'web', got %q", loadedCfg.DataDir)
	}

	if loadedCfg.MaxWorkers != 8 {
		t.Errorf("MaxWorkers: expected 8, got %d", loadedCfg.MaxWorkers)
	}

	if len(loadedCfg.Exclude) != 1 || loadedCfg.Exclude[0] != "**/*.map" {
		t.Errorf("Exclude: unexpected %v", loadedCfg.Exclude)
	}

	if loadedCfg.Minifier.Backend != "builtin" {
		t.Errorf("Backend: expected 'builtin', got %q", loadedCfg.Minifier.Backend)
	}

	if loadedCfg.Minifier.Timeout() != 5*time.Second {
		t.Errorf("Timeout: expected 5s, got %s", loadedCfg.Minifier.Timeout())
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	configPath := writeConfig(t, `data_dir: assets
minifier:
  backend: builtin
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Should preserve specified values
	if cfg.DataDir != "assets" {
		t.Errorf("expected DataDir='assets', got %q", cfg.DataDir)
	}
	if cfg.Minifier.Backend != "builtin" {
		t.Errorf("expected Backend='builtin', got %q", cfg.Minifier.Backend)
	}

	// Should apply defaults for missing values
	if cfg.HeaderName != "data.h" {
		t.Errorf("expected default HeaderName, got %q", cfg.HeaderName)
	}
	if cfg.Minifier.TimeoutSeconds != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.Minifier.TimeoutSeconds)
	}
	if cfg.Minifier.Runtime != "node" {
		t.Errorf("expected default runtime 'node', got %q", cfg.Minifier.Runtime)
	}
	if len(cfg.SkipTargets) != 1 || cfg.SkipTargets[0] != "idedata" {
		t.Errorf("expected default skip targets, got %v", cfg.SkipTargets)
	}
}

func TestLoad_EmptyExtensionsDisablesMinification(t *testing.T) {
	configPath := writeConfig(t, `minifier:
  extensions: []
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(cfg.Minifier.Extensions) != 0 {
		t.Errorf("expected explicit empty extension list to be kept, got %v", cfg.Minifier.Extensions)
	}
}

func TestLoad_NegativeMaxWorkers(t *testing.T) {
	configPath := writeConfig(t, "max_workers: -5\n")

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for negative max_workers")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "data_dir: [unclosed\n")

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestShouldSkip(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ShouldSkip([]string{"buildprog", "idedata"}) {
		t.Error("expected idedata to be skipped")
	}
	if cfg.ShouldSkip([]string{"buildprog"}) {
		t.Error("expected buildprog not to be skipped")
	}
	if cfg.ShouldSkip(nil) {
		t.Error("expected no targets not to be skipped")
	}
}

func TestWatchDebounce(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WatchDebounce() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %s", cfg.WatchDebounce())
	}
}
