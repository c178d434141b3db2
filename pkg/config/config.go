// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/user/depthreel/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Config represents the file-based configuration for depthreel.
// Zero values mean "not set" and are filled from defaults; CLI flags
// override both.
type Config struct {
	// Input
	Channel string `yaml:"channel"`
	FileExt string `yaml:"file_ext"`

	// Output
	Output string  `yaml:"output"`
	FPS    float64 `yaml:"fps"`

	// Encoding
	Normalize  bool   `yaml:"normalize"`
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Load reads a YAML config file.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ToOrchestratorConfig merges the file config over the orchestrator
// defaults and applies the given input directory.
func (c Config) ToOrchestratorConfig(inputDir string) orchestrator.Config {
	oc := orchestrator.DefaultConfig()
	oc.InputDir = inputDir

	if c.Channel != "" {
		oc.Channel = c.Channel
	}
	if c.FileExt != "" {
		oc.FileExt = c.FileExt
	}
	if c.Output != "" {
		oc.OutputPath = c.Output
	}
	if c.FPS > 0 {
		oc.FPS = c.FPS
	}
	oc.Normalize = c.Normalize

	return oc
}
