// Package config handles generator configuration loading and management.
package config

import "time"

// Config holds all generator settings.
type Config struct {
	Sphere    SphereConfig    `yaml:"sphere"`
	Heightmap HeightmapConfig `yaml:"heightmap"`
	Clipmap   ClipmapConfig   `yaml:"clipmap"`
	Output    OutputConfig    `yaml:"output"`
	Server    ServerConfig    `yaml:"server"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SphereConfig holds sphere tessellation settings.
type SphereConfig struct {
	Shape           string    `yaml:"shape"` // "icosphere" or "cubesphere"
	Radius          float64   `yaml:"radius"`
	BaseSubdivision int       `yaml:"base_subdivision"`
	MinResolution   int       `yaml:"min_resolution"`
	MaxResolution   int       `yaml:"max_resolution"`
	StepCount       int       `yaml:"step_count"`
	StepGamma       float64   `yaml:"step_gamma"`
	Mode            string    `yaml:"mode"` // "proximity" or "latitude"
	Target          []float64 `yaml:"target,omitempty"`
	MaxDistance     float64   `yaml:"max_distance,omitempty"`
}

// HeightmapConfig holds displacement settings.
type HeightmapConfig struct {
	Path              string  `yaml:"path"`
	DisplacementScale float64 `yaml:"displacement_scale"`
}

// ClipmapConfig holds terrain clipmap settings.
type ClipmapConfig struct {
	Rings    int     `yaml:"rings"`
	Segments int     `yaml:"segments"`
	CellSize float64 `yaml:"cell_size"`
}

// OutputConfig holds mesh export settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // "obj" or "stl"
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Listen   string        `yaml:"listen"`
	Debounce time.Duration `yaml:"debounce"`
}

// ViewerConfig holds preview window settings.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sphere: SphereConfig{
			Shape:           "icosphere",
			Radius:          100,
			BaseSubdivision: 1,
			MinResolution:   2,
			MaxResolution:   16,
			StepCount:       8,
			StepGamma:       2.0,
			Mode:            "proximity",
		},
		Heightmap: HeightmapConfig{
			Path:              "",
			DisplacementScale: 0,
		},
		Clipmap: ClipmapConfig{
			Rings:    4,
			Segments: 32,
			CellSize: 1,
		},
		Output: OutputConfig{
			Path:   "mesh.obj",
			Format: "obj",
		},
		Server: ServerConfig{
			Listen:   "127.0.0.1:8420",
			Debounce: 100 * time.Millisecond,
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
