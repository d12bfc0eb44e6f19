package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesEngineSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htr.yaml")
	body := "engine: ollama\nmodel: llama3.2-vision\nollama_host: http://10.0.0.5:11434\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Engine != "ollama" || c.Model != "llama3.2-vision" || c.OllamaHost != "http://10.0.0.5:11434" {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("engine: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadOrDefaultEmptyPath(t *testing.T) {
	c, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("empty path must not error: %v", err)
	}
	if c.Engine != "" || c.Model != "" {
		t.Fatalf("expected zero-value defaults, got %+v", c)
	}
}

// An explicitly given path must not silently degrade to defaults.
func TestLoadOrDefaultPropagatesErrors(t *testing.T) {
	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "typo.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("engine: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Fatalf("expected error for malformed explicit config")
	}
}
