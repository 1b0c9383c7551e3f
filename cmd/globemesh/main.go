// globemesh is a CLI for generating adaptive sphere and clipmap terrain
// meshes and exporting them to OBJ or STL.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nrayamajhee/globemesh/internal/config"
	"github.com/nrayamajhee/globemesh/internal/export"
	"github.com/nrayamajhee/globemesh/internal/logger"
	"github.com/nrayamajhee/globemesh/pkg/clipmap"
	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/heightmap"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
	"github.com/nrayamajhee/globemesh/pkg/spheremesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "sphere":
		cmdSphere(args)
	case "clipmap":
		cmdClipmap(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`globemesh - adaptive LOD mesh generator

Usage:
  globemesh <command> [options]

Commands:
  generate [options]  Generate an adaptive sphere mesh
  clipmap [options]   Generate a nested terrain clipmap mesh
  info <mesh file>    Show mesh file information

Examples:
  globemesh generate -radius 6371 -heightmap earth.png -scale 8.8 -out planet.obj
  globemesh generate -shape cubesphere -max-resolution 32 -out globe.stl
  globemesh clipmap -rings 5 -segments 64 -out terrain.obj
  globemesh info planet.stl`)
}

func initLogging(level string) {
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func cmdSphere(args []string) {
	fs := flag.NewFlagSet("sphere", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	out := fs.String("out", "", "Output mesh path")
	shape := fs.String("shape", "", "Base shape: icosphere or cubesphere")
	radius := fs.Float64("radius", 0, "Sphere radius")
	maxRes := fs.Int("max-resolution", 0, "Maximum edge resolution")
	target := fs.String("target", "", "LOD focus point as x,y,z")
	mode := fs.String("mode", "", "LOD mode: proximity or latitude")
	hmPath := fs.String("heightmap", "", "Path to a heightmap image")
	scale := fs.Float64("scale", -1, "Displacement scale")
	level := fs.String("log-level", "info", "Log level")
	fs.Parse(args)

	initLogging(*level)
	defer logger.Sync()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fatal("%v", err)
	}
	if *shape != "" {
		cfg.Sphere.Shape = *shape
	}
	if *radius > 0 {
		cfg.Sphere.Radius = *radius
	}
	if *maxRes > 0 {
		cfg.Sphere.MaxResolution = *maxRes
	}
	if *mode != "" {
		cfg.Sphere.Mode = *mode
	}
	if *target != "" {
		t, err := parseVec3(*target)
		if err != nil {
			fatal("bad -target: %v", err)
		}
		cfg.Sphere.Target = []float64{t.X, t.Y, t.Z}
	}
	if *hmPath != "" {
		cfg.Heightmap.Path = *hmPath
	}
	if *scale >= 0 {
		cfg.Heightmap.DisplacementScale = *scale
	}
	if *out != "" {
		cfg.Output.Path = *out
		cfg.Output.Format = config.FormatForPath(*out, cfg.Output.Format)
	}

	var heights spheremesh.HeightSampler
	if cfg.Heightmap.Path != "" {
		hm, err := heightmap.Load(cfg.Heightmap.Path)
		if err != nil {
			fatal("%v", err)
		}
		heights = hm
		logger.Info("heightmap loaded",
			zap.String("path", cfg.Heightmap.Path),
			zap.Int("width", hm.Width()),
			zap.Int("height", hm.Height()))
	}

	gen, err := cfg.SphereGenConfig(heights)
	if err != nil {
		fatal("%v", err)
	}

	start := time.Now()
	var m *mesh.Mesh
	switch cfg.Sphere.Shape {
	case "icosphere", "":
		m, err = spheremesh.Generate(gen)
	case "cubesphere":
		m, err = spheremesh.GenerateCube(gen)
	default:
		fatal("unknown shape %q", cfg.Sphere.Shape)
	}
	if err != nil {
		fatal("%v", err)
	}

	writeMesh(m, cfg, time.Since(start))
}

func cmdClipmap(args []string) {
	fs := flag.NewFlagSet("clipmap", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	out := fs.String("out", "", "Output mesh path")
	rings := fs.Int("rings", 0, "Ring count")
	segments := fs.Int("segments", 0, "Segments per ring side")
	cell := fs.Float64("cell", 0, "Finest cell size")
	level := fs.String("log-level", "info", "Log level")
	fs.Parse(args)

	initLogging(*level)
	defer logger.Sync()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fatal("%v", err)
	}
	if *rings > 0 {
		cfg.Clipmap.Rings = *rings
	}
	if *segments > 0 {
		cfg.Clipmap.Segments = *segments
	}
	if *cell > 0 {
		cfg.Clipmap.CellSize = *cell
	}
	if *out != "" {
		cfg.Output.Path = *out
		cfg.Output.Format = config.FormatForPath(*out, cfg.Output.Format)
	}

	start := time.Now()
	m, err := clipmap.BuildRings(cfg.ClipmapGenConfig())
	if err != nil {
		fatal("%v", err)
	}

	writeMesh(m, cfg, time.Since(start))
}

func writeMesh(m *mesh.Mesh, cfg *config.Config, elapsed time.Duration) {
	stats := m.Stats()
	logger.Info("mesh generated",
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Duration("elapsed", elapsed))

	if err := export.Save(cfg.Output.Path, cfg.Output.Format, m); err != nil {
		fatal("%v", err)
	}
	logger.Info("mesh written",
		zap.String("path", cfg.Output.Path),
		zap.String("format", cfg.Output.Format))
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: globemesh info <mesh file>")
		os.Exit(1)
	}
	path := args[0]

	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		f, err := os.Open(path)
		if err != nil {
			fatal("%v", err)
		}
		defer f.Close()
		count, err := export.ReadSTLTriangleCount(f)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("File:      %s\n", path)
		fmt.Printf("Format:    binary STL\n")
		fmt.Printf("Triangles: %d\n", count)
	case ".obj":
		f, err := os.Open(path)
		if err != nil {
			fatal("%v", err)
		}
		defer f.Close()
		var verts, normals, faces int
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 1024*1024), 1024*1024)
		for sc.Scan() {
			line := sc.Text()
			switch {
			case strings.HasPrefix(line, "v "):
				verts++
			case strings.HasPrefix(line, "vn "):
				normals++
			case strings.HasPrefix(line, "f "):
				faces++
			}
		}
		if err := sc.Err(); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("File:      %s\n", path)
		fmt.Printf("Format:    Wavefront OBJ\n")
		fmt.Printf("Vertices:  %d\n", verts)
		fmt.Printf("Normals:   %d\n", normals)
		fmt.Printf("Faces:     %d\n", faces)
	default:
		fatal("unknown mesh format %q", filepath.Ext(path))
	}
}

func parseVec3(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("need 3 comma-separated values, got %d", len(parts))
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Vec3{}, err
		}
		v[i] = f
	}
	return geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
