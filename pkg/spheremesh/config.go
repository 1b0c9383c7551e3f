// Package spheremesh generates crack-free, adaptively tessellated sphere
// meshes. A base polyhedron (icosahedron or cube) is split into patches,
// each patch picks its subdivision level from an importance signal, and
// boundary vertices are snapped to the coarser neighbor's resolution so
// regions of different density share identical edge vertices.
package spheremesh

import (
	"fmt"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

// Mode selects how the importance scalar for LOD resolution is derived.
type Mode int

const (
	// ModeProximity concentrates detail near a target position.
	ModeProximity Mode = iota
	// ModeLatitude concentrates detail toward the +Y pole.
	ModeLatitude
)

// HeightSampler converts a unit-sphere surface coordinate to a height in
// [0, 1]. A nil sampler means no displacement.
type HeightSampler interface {
	Sample(u, v float64) float64
}

// Config holds all parameters of one generation pass. It is immutable for
// the duration of the pass; identical configs produce identical meshes.
type Config struct {
	// Radius scales the final mesh. Must be > 0.
	Radius float64

	// MinResolution and MaxResolution bound the per-patch subdivision
	// level. 1 <= min <= max.
	MinResolution int
	MaxResolution int

	// StepCount is the number of discrete LOD levels the importance
	// scalar is quantized into. 1 means every patch uses MaxResolution.
	StepCount int

	// StepGamma shapes the importance falloff: > 1 concentrates detail
	// near the target, < 1 spreads it out. Must be > 0.
	StepGamma float64

	// BaseSubdivision splits each base face this many times before
	// per-patch tessellation. 0 keeps the raw base faces.
	BaseSubdivision int

	// Mode selects the importance signal.
	Mode Mode

	// Target is the world position detail concentrates around in
	// ModeProximity. Nil defaults to the +Y pole at Radius.
	Target *geom.Vec3

	// MaxDistance is the proximity falloff range. 0 defaults to the
	// sphere diameter, so the antipode of the target gets MinResolution.
	MaxDistance float64

	// Heights supplies optional displacement. Nil means sample 0.
	Heights HeightSampler

	// DisplacementScale multiplies sampled heights. Must be >= 0.
	DisplacementScale float64
}

// maxBaseSubdivision bounds the base-face split; each level quadruples the
// patch count.
const maxBaseSubdivision = 6

// Validate reports the first configuration precondition violation, or nil.
// Generation never starts on an invalid config.
func (c Config) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("spheremesh: radius must be > 0, got %v", c.Radius)
	}
	if c.MinResolution < 1 {
		return fmt.Errorf("spheremesh: min resolution must be >= 1, got %d", c.MinResolution)
	}
	if c.MaxResolution < c.MinResolution {
		return fmt.Errorf("spheremesh: max resolution %d < min resolution %d", c.MaxResolution, c.MinResolution)
	}
	if c.StepCount < 1 {
		return fmt.Errorf("spheremesh: step count must be >= 1, got %d", c.StepCount)
	}
	if c.StepGamma <= 0 {
		return fmt.Errorf("spheremesh: step gamma must be > 0, got %v", c.StepGamma)
	}
	if c.BaseSubdivision < 0 || c.BaseSubdivision > maxBaseSubdivision {
		return fmt.Errorf("spheremesh: base subdivision must be in [0, %d], got %d", maxBaseSubdivision, c.BaseSubdivision)
	}
	if c.DisplacementScale < 0 {
		return fmt.Errorf("spheremesh: displacement scale must be >= 0, got %v", c.DisplacementScale)
	}
	return nil
}

// target returns the effective LOD target position.
func (c Config) target() geom.Vec3 {
	if c.Target != nil {
		return *c.Target
	}
	return geom.Vec3{Y: c.Radius}
}

// maxDistance returns the effective proximity falloff range.
func (c Config) maxDistance() float64 {
	if c.MaxDistance > 0 {
		return c.MaxDistance
	}
	return 2 * c.Radius
}
