package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the fallback configuration sources.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadFlappy loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.flappy/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default -> hard-coded default.
// Files overlay the defaults, so they only need the keys they change.
// An explicit customPath must exist and be valid; the other locations are
// skipped when unreadable or invalid.
func LoadFlappy(customPath string) (FlappyConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultFlappyConfig(), "", err
		}
		return cfg, customPath, nil
	}

	var candidates []string
	for _, name := range []string{"flappy.yaml", "flappy.toml"} {
		if p := userConfigPath(name); p != "" {
			candidates = append(candidates, p)
		}
	}
	candidates = append(candidates,
		filepath.Join("configs", "flappy.yaml"),
		filepath.Join("configs", "flappy.toml"),
	)

	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Decode(defaultFlappyYAML, "yaml")
	if err != nil {
		return DefaultFlappyConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads, decodes and validates one configuration file.
func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, formatFor(path))
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays data in the given format ("yaml" or "toml") onto the
// built-in defaults and validates the result.
func Decode(data []byte, format string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	case "yaml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("config: unsupported format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode renders cfg in the given format ("yaml" or "toml").
func Encode(cfg FlappyConfig, format string) ([]byte, error) {
	switch format {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case "yaml", "":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}

// ApplyDifficulty overrides the startup difficulty with a CLI value.
// An empty preset keeps the configured default.
func ApplyDifficulty(cfg *FlappyConfig, preset string) error {
	if preset == "" {
		return nil
	}
	d, err := ParseDifficulty(preset)
	if err != nil {
		return err
	}
	if _, ok := cfg.Difficulty.Level(d); !ok {
		return fmt.Errorf("config: difficulty %q is not in the table", d)
	}
	cfg.Difficulty.Default = string(d)
	return nil
}

// formatFor picks a decoder from the file extension.
func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
