// Package config handles exporter configuration loading and management.
package config

import (
	"fmt"

	"github.com/turtlep/gomsh/pkg/msh"
)

// Config holds all tool settings.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig holds the default export settings, overridable per
// invocation from the command line.
type ExportConfig struct {
	Forward    string `yaml:"forward"` // +X -X +Y -Y +Z -Z
	Up         string `yaml:"up"`      // +X -X +Y -Y +Z -Z
	FlipU      bool   `yaml:"flip_u"`
	FlipV      bool   `yaml:"flip_v"`
	Endianness string `yaml:"endianness"` // little | big
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: the Blender
// convention (forward +Y, up +Z), no flips, little-endian output.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Forward:    "+Y",
			Up:         "+Z",
			FlipU:      false,
			FlipV:      false,
			Endianness: "little",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// MeshConfig validates the export settings and converts them to the
// serializer's configuration.
func (e *ExportConfig) MeshConfig() (msh.ExportConfig, error) {
	forward, err := msh.ParseAxis(e.Forward)
	if err != nil {
		return msh.ExportConfig{}, fmt.Errorf("forward axis: %w", err)
	}
	up, err := msh.ParseAxis(e.Up)
	if err != nil {
		return msh.ExportConfig{}, fmt.Errorf("up axis: %w", err)
	}

	cfg := msh.ExportConfig{
		Forward: forward,
		Up:      up,
		FlipU:   e.FlipU,
		FlipV:   e.FlipV,
	}

	switch e.Endianness {
	case "", "little":
	case "big":
		cfg.BigEndian = true
	default:
		return msh.ExportConfig{}, fmt.Errorf("%w: %q", msh.ErrInvalidOrder, e.Endianness)
	}

	return cfg, nil
}
