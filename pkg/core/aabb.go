package core

import "math"

// AABB is an axis-aligned bounding box, used by accelerators (BVH) to
// prune ray queries before falling through to a primitive's exact Hit.
// Adapted from the teacher repository's pkg/core/aabb.go.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from its min and max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Bounded is implemented by shapes that can report a cheap axis-aligned
// bounding box; Sphere and Triangle both satisfy it.
type Bounded interface {
	BoundingBox() AABB
}

// Union returns an AABB that bounds both this AABB and another.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: NewVec3(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)),
		Max: NewVec3(math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)),
	}
}

// Hit tests whether ray intersects this AABB within [tMin, tMax] using the
// slab method.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	min := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	max := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(direction[axis]) < 1e-12 {
			if origin[axis] < min[axis] || origin[axis] > max[axis] {
				return false
			}
			continue
		}

		invDir := 1.0 / direction[axis]
		t1 := (min[axis] - origin[axis]) * invDir
		t2 := (max[axis] - origin[axis]) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Size returns the extent of the AABB along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns 0/1/2 for the X/Y/Z axis with the largest extent,
// the axis the BVH builder splits on.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// AxisValue returns the given axis (0=X, 1=Y, 2=Z) component of v.
func AxisValue(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
