// Package main is the entry point for the globemesh preview window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nrayamajhee/globemesh/internal/config"
	"github.com/nrayamajhee/globemesh/internal/logger"
	"github.com/nrayamajhee/globemesh/internal/view"
	"github.com/nrayamajhee/globemesh/pkg/heightmap"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
	"github.com/nrayamajhee/globemesh/pkg/spheremesh"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== globemesh viewer ===")

	var heights spheremesh.HeightSampler
	if cfg.Heightmap.Path != "" {
		hm, err := heightmap.Load(cfg.Heightmap.Path)
		if err != nil {
			logger.Error("failed to load heightmap", zap.Error(err))
			os.Exit(1)
		}
		heights = hm
	}

	gen, err := cfg.SphereGenConfig(heights)
	if err != nil {
		logger.Error("bad sphere config", zap.Error(err))
		os.Exit(1)
	}

	var m *mesh.Mesh
	switch cfg.Sphere.Shape {
	case "icosphere", "":
		m, err = spheremesh.Generate(gen)
	case "cubesphere":
		m, err = spheremesh.GenerateCube(gen)
	default:
		logger.Error("unknown shape", zap.String("shape", cfg.Sphere.Shape))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	stats := m.Stats()
	logger.Info("mesh generated",
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles))

	v, err := view.New(view.WindowConfig{
		Title:      "globemesh",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	}, m)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
