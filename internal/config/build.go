package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nrayamajhee/globemesh/pkg/clipmap"
	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/spheremesh"
)

// FormatForPath infers the export format from a file extension, falling
// back to the given format when the extension is not recognized.
func FormatForPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return "obj"
	case ".stl":
		return "stl"
	default:
		return fallback
	}
}

// SphereGenConfig translates the file config into the sphere generator's
// config. The height sampler is wired in by the caller, since loading it
// may touch the filesystem.
func (c *Config) SphereGenConfig(heights spheremesh.HeightSampler) (spheremesh.Config, error) {
	s := c.Sphere

	var mode spheremesh.Mode
	switch s.Mode {
	case "", "proximity":
		mode = spheremesh.ModeProximity
	case "latitude":
		mode = spheremesh.ModeLatitude
	default:
		return spheremesh.Config{}, fmt.Errorf("config: unknown lod mode %q", s.Mode)
	}

	var target *geom.Vec3
	if len(s.Target) > 0 {
		if len(s.Target) != 3 {
			return spheremesh.Config{}, fmt.Errorf("config: target needs 3 components, got %d", len(s.Target))
		}
		target = &geom.Vec3{X: s.Target[0], Y: s.Target[1], Z: s.Target[2]}
	}

	return spheremesh.Config{
		Radius:            s.Radius,
		MinResolution:     s.MinResolution,
		MaxResolution:     s.MaxResolution,
		StepCount:         s.StepCount,
		StepGamma:         s.StepGamma,
		BaseSubdivision:   s.BaseSubdivision,
		Mode:              mode,
		Target:            target,
		MaxDistance:       s.MaxDistance,
		Heights:           heights,
		DisplacementScale: c.Heightmap.DisplacementScale,
	}, nil
}

// ClipmapConfig translates the file config into the clipmap builder's
// ring config.
func (c *Config) ClipmapGenConfig() clipmap.RingsConfig {
	return clipmap.RingsConfig{
		Rings:    c.Clipmap.Rings,
		Segments: c.Clipmap.Segments,
		CellSize: c.Clipmap.CellSize,
	}
}
