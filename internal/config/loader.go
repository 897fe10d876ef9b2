package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.takeoff/configs/takeoff.yaml -> ./configs/takeoff.yaml -> embedded default.
// Only an explicit customPath can produce an error; the other locations are best-effort.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("takeoff.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "takeoff.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Catalogs are replaced, not merged, when present in data.
	cfg.Aircraft = nil
	cfg.Hazards.Catalog = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	def := Default()
	if len(cfg.Aircraft) == 0 {
		cfg.Aircraft = def.Aircraft
	}
	if len(cfg.Hazards.Catalog) == 0 {
		cfg.Hazards.Catalog = def.Hazards.Catalog
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".takeoff", "configs", filename)
}

// AssetPath resolves an image reference against the asset root.
// Absolute references are returned unchanged.
func (c Config) AssetPath(ref string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	root := c.Assets.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, ref)
}
