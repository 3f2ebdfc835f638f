package core

// Eta is the floating-point slack used to reject near-surface
// self-intersections and to conflate the parallel-ray and back-face
// rejection tests in the triangle intersector (see DESIGN.md's Open
// Question resolution).
const Eta = 1e-6

// Ray represents a ray with an origin and direction in world space. Rays
// are immutable values; callers that want a differently-scaled direction
// construct a new Ray rather than mutating one in place.
//
// By convention every Ray produced by this module has a unit-length
// Direction: cameras normalize at emission and materials normalize after
// every scatter. Code that receives a Ray from outside this guarantee
// (e.g. a scene document's raw basis vectors) must normalize before
// relying on it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
