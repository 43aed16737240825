package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnginesConfig is the optional engines.yaml configuration file. It selects
// the default engines and carries per-engine settings; anything it sets takes
// precedence over environment defaults.
type EnginesConfig struct {
	DefaultTranscriber string                  `yaml:"default_transcriber"`
	DefaultDownloader  string                  `yaml:"default_downloader,omitempty"`
	Engines            map[string]EngineConfig `yaml:"engines,omitempty"`
}

// EngineConfig represents configuration for a single engine.
type EngineConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// LoadEnginesConfig loads an engines.yaml from the given path. A missing file
// returns (nil, nil): the file is optional.
func LoadEnginesConfig(configPath string) (*EnginesConfig, error) {
	if configPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read engines config %s: %w", configPath, err)
	}

	var cfg EnginesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engines config %s: %w", configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid engines config %s: %w", configPath, err)
	}

	return &cfg, nil
}

// FindEnginesConfig looks for engines.yaml in the conventional locations and
// returns the first hit, or "" when none exists.
func FindEnginesConfig() string {
	candidates := []string{
		"engines.yaml",
		"engines.yml",
		filepath.Join("config", "engines.yaml"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// EngineSetting returns the named setting of an engine, or "" when the engine
// or setting is absent.
func (c *EnginesConfig) EngineSetting(engine, key string) string {
	if c == nil {
		return ""
	}
	ec, ok := c.Engines[engine]
	if !ok {
		return ""
	}
	return ec.Settings[key]
}

// IsEngineEnabled reports whether an engine is explicitly enabled. Engines not
// mentioned in the file are considered enabled.
func (c *EnginesConfig) IsEngineEnabled(engine string) bool {
	if c == nil {
		return true
	}
	ec, ok := c.Engines[engine]
	if !ok {
		return true
	}
	return ec.Enabled
}

func (c *EnginesConfig) validate() error {
	knownTranscribers := map[string]bool{
		"":            true,
		"openai":      true,
		"whisper_cpp": true,
	}
	knownDownloaders := map[string]bool{
		"":       true,
		"yt-dlp": true,
		"web":    true,
	}
	if !knownTranscribers[c.DefaultTranscriber] {
		return fmt.Errorf("unknown default_transcriber: %q", c.DefaultTranscriber)
	}
	if !knownDownloaders[c.DefaultDownloader] {
		return fmt.Errorf("unknown default_downloader: %q", c.DefaultDownloader)
	}
	for name := range c.Engines {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("engine entries must be named")
		}
	}
	return nil
}
