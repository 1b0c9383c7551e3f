package spheremesh

import (
	"math"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

// Resolver maps sample points on the unit sphere to subdivision levels.
// It is a pure function of its config: identical samples always resolve to
// identical levels, which is what keeps independently evaluated shared
// edges seam-consistent.
type Resolver struct {
	cfg     Config
	target  geom.Vec3
	maxDist float64
}

// NewResolver builds a Resolver for the given config. The config is
// assumed valid.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{
		cfg:     cfg,
		target:  cfg.target(),
		maxDist: cfg.maxDistance(),
	}
}

// Resolve returns the subdivision level for a unit-sphere sample point.
// The result is always in [1, MaxResolution].
func (r *Resolver) Resolve(sample geom.Vec3) int {
	cfg := r.cfg
	if cfg.StepCount == 1 {
		return cfg.MaxResolution
	}

	var t float64
	switch cfg.Mode {
	case ModeLatitude:
		t = (sample.Y + 1) / 2
	default:
		world := sample.Scale(cfg.Radius)
		t = 1 - geom.Clamp(world.Distance(r.target)/r.maxDist, 0, 1)
	}

	biased := math.Pow(t, cfg.StepGamma)

	level := int(math.Floor(biased * float64(cfg.StepCount)))
	if level > cfg.StepCount-1 {
		level = cfg.StepCount - 1
	}

	k := cfg.MinResolution + level*(cfg.MaxResolution-cfg.MinResolution)/(cfg.StepCount-1)
	if k < 1 {
		k = 1
	}
	return k
}
