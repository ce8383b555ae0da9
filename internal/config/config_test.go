package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded defaults %+v differ from hardcoded defaults %+v", cfg, Default())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := Default()

	if cfg.Field.Width != 80 || cfg.Field.Height != 50 {
		t.Errorf("field = %dx%d, expected 80x50", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Field.FrameDurationMS != 75.0 {
		t.Errorf("frame duration = %v, expected 75.0", cfg.Field.FrameDurationMS)
	}
	if cfg.Obstacles.InitialCount != 3 || cfg.Obstacles.Interval != 30 {
		t.Errorf("obstacles = %+v, expected 3 obstacles spaced 30 apart", cfg.Obstacles)
	}
	if cfg.Obstacles.BaseGap != 20 || cfg.Obstacles.MinGap != 5 || cfg.Obstacles.Margin != 2 {
		t.Errorf("gap params = %+v, expected base 20, min 5, margin 2", cfg.Obstacles)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte("field:\n  width: 100\n  height: 60\n  frame_duration_ms: 50.0\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Field.Width != 100 || cfg.Field.Height != 60 {
		t.Errorf("field = %dx%d, expected 100x60", cfg.Field.Width, cfg.Field.Height)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing explicit path should return an error")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with malformed explicit config should return an error")
	}
}
