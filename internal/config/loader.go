package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported by Load when no file on disk was used.
const EmbeddedSource = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.breakout/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a partial file only overrides what it names.
// The returned string is the path that was used.
func Load(customPath string) (BreakoutConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BreakoutConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath("breakout.yaml"), filepath.Join("configs", "breakout.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			// Broken user files are reported, not skipped.
			return BreakoutConfig{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, err := Parse(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), EmbeddedSource, nil
	}
	return cfg, EmbeddedSource, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return BreakoutConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}
