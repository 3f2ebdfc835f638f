// Package geometry implements the hittable primitives: Sphere and
// Triangle, each a core.Shape that answers ray-vs-surface queries with a
// core.HitRecord.
package geometry

import (
	"math"

	"github.com/afnanenayet/nib/pkg/core"
)

// Sphere is a hittable sphere. A zero-radius sphere is accepted; Hit
// rejects it up front, so it never reports a hit.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit solves at²+2bt+c=0 for the ray-sphere intersection, rejecting
// intersections with a negative discriminant or with no root in
// [tMin, tMax], and preferring the smaller non-negative root.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if s.Radius == 0 {
		return core.HitRecord{}, false
	}
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-b - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-b + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return core.HitRecord{Point: point, Normal: normal, Distance: root}, true
}

// BoundingBox returns the axis-aligned box enclosing the sphere, satisfying
// core.Bounded for use by accel.BVH.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
