package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/okhmat/birb/internal/game"
)

func TestEmbeddedDefaultMatchesCore(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultBirbYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if got, want := cfg.Game(), game.DefaultConfig(); got != want {
		t.Errorf("embedded default = %+v, expected core defaults %+v", got, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
rules:
  tick_ms: 16
  lives: 5
  win_score: 3
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rules.Lives != 5 || cfg.Rules.WinScore != 3 {
		t.Errorf("rules = %+v, expected lives 5, win score 3", cfg.Rules)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}
