// Package main is the entry point for the globemesh preview server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nrayamajhee/globemesh/internal/config"
	"github.com/nrayamajhee/globemesh/internal/logger"
	"github.com/nrayamajhee/globemesh/internal/server"
	"github.com/nrayamajhee/globemesh/pkg/heightmap"
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

	logger.Info("=== globemesh preview server ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	var heights spheremesh.HeightSampler
	if cfg.Heightmap.Path != "" {
		hm, err := heightmap.Load(cfg.Heightmap.Path)
		if err != nil {
			logger.Error("failed to load heightmap", zap.Error(err))
			os.Exit(1)
		}
		heights = hm
		logger.Info("heightmap loaded",
			zap.String("path", cfg.Heightmap.Path),
			zap.Int("width", hm.Width()),
			zap.Int("height", hm.Height()))
	}

	srv, err := server.New(cfg, heights, logger.Log)
	if err != nil {
		logger.Error("failed to create server", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
