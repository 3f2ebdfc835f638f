package geometry

import (
	"math"

	"github.com/afnanenayet/nib/pkg/core"
)

// Handedness records a triangle's vertex winding order, which fixes the
// sign of its outward normal.
type Handedness int

const (
	// CounterClockwise is the default winding; the precomputed normal
	// points in the direction of e0×e1 unchanged.
	CounterClockwise Handedness = iota
	// Clockwise flips the precomputed normal's sign.
	Clockwise
)

// Triangle is a hittable triangle, stored as three vertices plus the two
// precomputed edges and unit normal the Möller–Trumbore intersector needs.
// e0 is V2-V0, e1 is V1-V0 — the labeling spec.md §4.2 uses for its
// p = d×e1, det = e0·p formulation. A degenerate triangle (collinear
// vertices) is accepted at construction; its edges are parallel, e0×e1 is
// the zero vector, and Hit simply never reports an intersection (det
// stays at or near zero).
type Triangle struct {
	V0, V1, V2 core.Vec3
	e0, e1     core.Vec3
	normal     core.Vec3
	handedness Handedness
}

// NewTriangle creates a triangle from three vertices, in the given winding
// order.
func NewTriangle(v0, v1, v2 core.Vec3, handedness Handedness) *Triangle {
	e0 := v2.Subtract(v0)
	e1 := v1.Subtract(v0)
	normal := e0.Cross(e1).Normalize()
	if handedness == Clockwise {
		normal = normal.Negate()
	}
	return &Triangle{V0: v0, V1: v1, V2: v2, e0: e0, e1: e1, normal: normal, handedness: handedness}
}

// Hit implements the Möller–Trumbore intersection test with back-face
// culling: det < core.Eta rejects both parallel rays and back faces in a
// single comparison (the Open Question in spec.md §9 is deliberately left
// conflated rather than split into separate |det| and sign checks).
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	p := ray.Direction.Cross(tr.e1)
	det := tr.e0.Dot(p)
	if det < core.Eta {
		return core.HitRecord{}, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(tr.V0)
	u := tvec.Dot(p)
	if u < 0 || u > det {
		return core.HitRecord{}, false
	}

	q := tvec.Cross(tr.e0)
	v := ray.Direction.Dot(q)
	if v < 0 || u+v > det {
		return core.HitRecord{}, false
	}

	t := tr.e1.Dot(q) * invDet
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	u *= invDet
	v *= invDet
	point := tr.V0.Add(tr.e0.Multiply(u)).Add(tr.e1.Multiply(v))

	return core.HitRecord{Point: point, Normal: tr.normal, Distance: t}, true
}

// BoundingBox returns the axis-aligned box enclosing the triangle's three
// vertices, satisfying core.Bounded for use by accel.BVH.
func (tr *Triangle) BoundingBox() core.AABB {
	min := core.NewVec3(
		math.Min(tr.V0.X, math.Min(tr.V1.X, tr.V2.X)),
		math.Min(tr.V0.Y, math.Min(tr.V1.Y, tr.V2.Y)),
		math.Min(tr.V0.Z, math.Min(tr.V1.Z, tr.V2.Z)),
	)
	max := core.NewVec3(
		math.Max(tr.V0.X, math.Max(tr.V1.X, tr.V2.X)),
		math.Max(tr.V0.Y, math.Max(tr.V1.Y, tr.V2.Y)),
		math.Max(tr.V0.Z, math.Max(tr.V1.Z, tr.V2.Z)),
	)
	return core.NewAABB(min, max)
}
