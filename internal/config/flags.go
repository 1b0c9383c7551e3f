package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagRadius    = flag.Float64("radius", 0, "Sphere radius")
	flagShape     = flag.String("shape", "", "Base shape: icosphere or cubesphere")
	flagMaxRes    = flag.Int("max-resolution", 0, "Maximum edge resolution")
	flagHeightmap = flag.String("heightmap", "", "Path to a heightmap image")
	flagOut       = flag.String("out", "", "Output mesh path")
	flagListen    = flag.String("listen", "", "Preview server listen address")
	flagWidth     = flag.Int("width", 0, "Viewer window width")
	flagHeight    = flag.Int("height", 0, "Viewer window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRadius > 0 {
		cfg.Sphere.Radius = *flagRadius
	}
	if *flagShape != "" {
		cfg.Sphere.Shape = *flagShape
	}
	if *flagMaxRes > 0 {
		cfg.Sphere.MaxResolution = *flagMaxRes
	}
	if *flagHeightmap != "" {
		cfg.Heightmap.Path = *flagHeightmap
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
		cfg.Output.Format = FormatForPath(*flagOut, cfg.Output.Format)
	}
	if *flagListen != "" {
		cfg.Server.Listen = *flagListen
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
