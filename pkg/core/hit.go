package core

import "math"

// HitRecord is the geometric answer to a ray-vs-surface query: the
// world-space hit point, the outward unit normal at that point, and the
// ray parameter t at which the hit occurred.
type HitRecord struct {
	Point    Vec3
	Normal   Vec3
	Distance float64
}

// ApproxEqualTolerance is the standard tolerance to pass to
// HitRecord.ApproxEqual.
const ApproxEqualTolerance = 1e-6

// ApproxEqual reports whether two hit records agree component-wise to the
// given tolerance, per spec: "Two hit records compare equal when their
// components agree to a fixed floating-point tolerance."
func (h HitRecord) ApproxEqual(other HitRecord, tolerance float64) bool {
	return approxEqualVec3(h.Point, other.Point, tolerance) &&
		approxEqualVec3(h.Normal, other.Normal, tolerance) &&
		math.Abs(h.Distance-other.Distance) <= tolerance
}

func approxEqualVec3(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// TexturedObject pairs a piece of geometry with the material that scatters
// rays off it. The scene arena is a process-wide, immutable slice of these,
// shared by reference across every worker.
type TexturedObject struct {
	Shape    Shape
	Material Material
}

// AccelRecord is a HitRecord plus a non-owning reference to the textured
// object that was hit, as returned by an Accelerator query.
type AccelRecord struct {
	HitRecord
	Object *TexturedObject
}

// BSDFRecord is the result of a scatter event: the outgoing ray plus the
// RGB attenuation applied component-wise to downstream radiance. Every
// component of Attenuation must lie in [0,1] — no material may inject
// energy.
type BSDFRecord struct {
	Scattered   Ray
	Attenuation Vec3
}

// closerThan orders two candidate distances for closest-hit selection. NaN
// distances are treated as equal to any other value (never "closer"),
// matching the documented concession in spec.md §7: by the time a NaN
// distance appears the result is already undefined, so the tie-break need
// only avoid panicking or infinite-looping.
func closerThan(candidate, best float64) bool {
	if math.IsNaN(candidate) {
		return false
	}
	if math.IsNaN(best) {
		return true
	}
	return candidate < best
}

// CloserThan exports closerThan for use by accelerator implementations
// outside this package.
func CloserThan(candidate, best float64) bool {
	return closerThan(candidate, best)
}
