package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load(Breakout, customPath, DefaultBreakoutConfig)
}

// LoadCameraDemo loads camera demo configuration.
// Search order: customPath -> ~/.arcade/configs/camera-demo.yaml -> ./configs/camera-demo.yaml -> embedded default
func LoadCameraDemo(customPath string) (CameraDemoConfig, error) {
	return load(CameraDemo, customPath, DefaultCameraDemoConfig)
}

// Effective returns the YAML a scene would run with, after the preset.
func Effective(sceneID, customPath string, preset Preset) ([]byte, error) {
	var cfg any
	switch sceneID {
	case Breakout:
		c, err := LoadBreakout(customPath)
		if err != nil {
			return nil, err
		}
		ApplyBreakoutPreset(&c, preset)
		cfg = c
	case CameraDemo:
		c, err := LoadCameraDemo(customPath)
		if err != nil {
			return nil, err
		}
		ApplyCameraDemoPreset(&c, preset)
		cfg = c
	default:
		return nil, fmt.Errorf("config: no configuration for scene %q", sceneID)
	}
	return yaml.Marshal(cfg)
}

// load decodes the first usable file over the hardcoded defaults, so a
// file only needs the keys it changes. A custom path must be readable and
// valid; the other locations are skipped when missing or broken.
func load[T validator](sceneID, customPath string, defaults func() T) (T, error) {
	filename := sceneID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			return defaults(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data, defaults); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(data, defaults); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(GetDefaultYAML(sceneID), defaults); err == nil {
		return cfg, nil
	}
	return defaults(), nil // Fallback to hardcoded if embed fails
}

func decode[T validator](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// PathIn returns dir/<sceneID>.yaml when that file exists, else "" so the
// normal search order applies.
func PathIn(dir, sceneID string) string {
	if dir == "" {
		return ""
	}
	p := filepath.Join(dir, sceneID+".yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
