package geom

import "math"

// slerpEpsilon is the dot-product threshold above which two directions are
// treated as parallel. Past it the weighted-sine formula divides by a
// vanishing sin and linear interpolation takes over.
const slerpEpsilon = 0.9999

// Slerp interpolates between two unit vectors along the great-circle arc
// connecting them. The result has unit length.
//
// Near-parallel inputs fall back to linear interpolation followed by
// renormalization, where the spherical formula is numerically unstable.
func Slerp(a, b Vec3, t float64) Vec3 {
	dot := Clamp(a.Dot(b), -1, 1)
	if dot > slerpEpsilon {
		return a.Lerp(b, t).Normalize()
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)

	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta

	// The weighted sum already lies on the unit sphere; normalize anyway
	// to absorb floating-point drift.
	return a.Scale(wa).Add(b.Scale(wb)).Normalize()
}

// Slerp3 interpolates between three unit vectors with barycentric weights
// wa+wb+wc = 1, composing two great-circle interpolations. The result has
// unit length.
func Slerp3(a, b, c Vec3, wa, wb, wc float64) Vec3 {
	wbc := wb + wc
	if wbc <= 0 {
		return a
	}
	bc := Slerp(b, c, wc/wbc)
	return Slerp(a, bc, wbc)
}

// ProjectToSphere maps a point in a plane (a cube face, typically) onto the
// unit sphere by central projection.
func ProjectToSphere(p Vec3) Vec3 {
	return p.Normalize()
}
