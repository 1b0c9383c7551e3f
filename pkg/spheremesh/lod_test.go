package spheremesh

import (
	"testing"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

func testConfig() Config {
	return Config{
		Radius:        10,
		MinResolution: 4,
		MaxResolution: 12,
		StepCount:     4,
		StepGamma:     2.0,
	}
}

func TestResolvePoleScenario(t *testing.T) {
	// minResolution=4, maxResolution=12, stepCount=4, stepGamma=2.0,
	// radius=10, target at the pole: the pole resolves to max, the
	// antipode to min.
	cfg := testConfig()
	r := NewResolver(cfg)

	pole := geom.Vec3{Y: 1}
	if got := r.Resolve(pole); got != 12 {
		t.Errorf("Resolve(pole) = %d, want 12", got)
	}

	antipode := geom.Vec3{Y: -1}
	if got := r.Resolve(antipode); got != 4 {
		t.Errorf("Resolve(antipode) = %d, want 4", got)
	}
}

func TestResolveRange(t *testing.T) {
	cfg := testConfig()
	r := NewResolver(cfg)

	samples := []geom.Vec3{
		{X: 1}, {Y: 1}, {Z: 1},
		{X: -1}, {Y: -1}, {Z: -1},
		geom.Vec3{X: 1, Y: 1, Z: 1}.Normalize(),
		geom.Vec3{X: -1, Y: 0.5, Z: 0.3}.Normalize(),
	}
	for _, s := range samples {
		k := r.Resolve(s)
		if k < cfg.MinResolution || k > cfg.MaxResolution {
			t.Errorf("Resolve(%v) = %d, outside [%d, %d]", s, k, cfg.MinResolution, cfg.MaxResolution)
		}
	}
}

func TestResolveMonotonicity(t *testing.T) {
	// Moving the target strictly closer to a surface point never
	// decreases the resolved level there.
	cfg := testConfig()
	sample := geom.Vec3{X: 1}
	surface := sample.Scale(cfg.Radius)
	far := geom.Vec3{X: -10}

	prev := -1
	for i := 0; i <= 20; i++ {
		target := far.Lerp(surface, float64(i)/20)
		cfg.Target = &target
		k := NewResolver(cfg).Resolve(sample)
		if k < prev {
			t.Fatalf("level decreased from %d to %d as target approached (step %d)", prev, k, i)
		}
		prev = k
	}
	if prev != cfg.MaxResolution {
		t.Errorf("level at zero distance = %d, want %d", prev, cfg.MaxResolution)
	}
}

func TestResolveStepCountOne(t *testing.T) {
	cfg := testConfig()
	cfg.StepCount = 1
	r := NewResolver(cfg)

	for _, s := range []geom.Vec3{{Y: 1}, {Y: -1}, {X: 1}} {
		if got := r.Resolve(s); got != cfg.MaxResolution {
			t.Errorf("Resolve(%v) = %d, want max %d with stepCount 1", s, got, cfg.MaxResolution)
		}
	}
}

func TestResolveLatitudeMode(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeLatitude
	r := NewResolver(cfg)

	if got := r.Resolve(geom.Vec3{Y: 1}); got != cfg.MaxResolution {
		t.Errorf("Resolve(north pole) = %d, want %d", got, cfg.MaxResolution)
	}
	if got := r.Resolve(geom.Vec3{Y: -1}); got != cfg.MinResolution {
		t.Errorf("Resolve(south pole) = %d, want %d", got, cfg.MinResolution)
	}

	// Latitude bias is longitude-independent.
	a := r.Resolve(geom.Vec3{X: 0.6, Y: 0.8, Z: 0})
	b := r.Resolve(geom.Vec3{X: 0, Y: 0.8, Z: 0.6})
	if a != b {
		t.Errorf("same latitude resolved to %d and %d", a, b)
	}
}

func TestResolveDeterministic(t *testing.T) {
	cfg := testConfig()
	r1 := NewResolver(cfg)
	r2 := NewResolver(cfg)

	s := geom.Vec3{X: 0.3, Y: 0.4, Z: 0.866}.Normalize()
	for i := 0; i < 10; i++ {
		if r1.Resolve(s) != r2.Resolve(s) {
			t.Fatal("identical inputs resolved to different levels")
		}
	}
}
