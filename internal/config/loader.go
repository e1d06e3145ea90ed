package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadEngine loads the platform configuration.
// Search order: customPath -> ~/.microsprite/configs/engine.yaml ->
// ./configs/engine.yaml -> embedded default.
func LoadEngine(customPath string) (EngineConfig, error) {
	var cfg EngineConfig
	if err := load(customPath, "engine.yaml", defaultEngineYAML, &cfg); err != nil {
		return DefaultEngineConfig(), err
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return DefaultEngineConfig(), fmt.Errorf("config: screen size %dx%d must be positive",
			cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.TickRate <= 0 {
		return DefaultEngineConfig(), fmt.Errorf("config: tick_rate %d must be positive", cfg.TickRate)
	}
	return cfg, nil
}

// LoadBeans loads the Beans app configuration with the same search order.
func LoadBeans(customPath string) (BeansConfig, error) {
	var cfg BeansConfig
	if err := load(customPath, "beans.yaml", defaultBeansYAML, &cfg); err != nil {
		return DefaultBeansConfig(), err
	}
	return cfg, nil
}

// LoadBounce loads the Bounce app configuration with the same search order.
func LoadBounce(customPath string) (BounceConfig, error) {
	var cfg BounceConfig
	if err := load(customPath, "bounce.yaml", defaultBounceYAML, &cfg); err != nil {
		return DefaultBounceConfig(), err
	}
	return cfg, nil
}

// load resolves one config file through the search order and unmarshals
// it into out. Only an explicitly requested custom path reports read
// errors; the fallback locations are best-effort.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".microsprite", "configs", filename)
}
