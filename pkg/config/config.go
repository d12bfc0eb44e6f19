package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Recognition holds engine settings for the CLI tools so model choices don't
// have to be hard-coded or repeated on every invocation.
type Recognition struct {
	Engine     string `yaml:"engine"`
	Model      string `yaml:"model"`
	OllamaHost string `yaml:"ollama_host"`
}

// Load reads a yaml config file. A missing path is not an error at this level;
// callers decide whether the file is required.
func Load(path string) (*Recognition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Recognition
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &c, nil
}

// LoadOrDefault returns zero-value settings when path is empty, so the CLI
// keeps working without any config file. A non-empty path must resolve and
// parse; a typo'd path must not silently fall back to defaults.
func LoadOrDefault(path string) (*Recognition, error) {
	if path == "" {
		return &Recognition{}, nil
	}
	return Load(path)
}
