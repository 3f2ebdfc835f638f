// Package accel implements core.Accelerator: the closest-intersection
// query over the scene arena. ObjectList is the baseline linear scan;
// BVH is a drop-in, bounding-volume-hierarchy replacement with the same
// contract, for scenes where O(n) per query is too slow.
package accel

import (
	"github.com/afnanenayet/nib/pkg/core"
)

// ObjectList is the baseline accelerator: a linear scan over every
// textured object in the arena, keeping the closest hit with distance
// >= core.Eta. Ties are broken by iteration order — an object hit later
// in the slice never displaces an equally-distant earlier one, since a
// candidate must be strictly closer to replace the current best.
type ObjectList struct {
	objects []*core.TexturedObject
}

// NewObjectList creates an ObjectList over the given arena.
func NewObjectList(objects []*core.TexturedObject) *ObjectList {
	return &ObjectList{objects: objects}
}

// Collision returns the closest hit with distance >= core.Eta across every
// object in the arena, or false if no object is hit.
func (l *ObjectList) Collision(ray core.Ray) (core.AccelRecord, bool) {
	var best core.AccelRecord
	found := false
	closest := infinity

	for _, obj := range l.objects {
		hit, ok := obj.Shape.Hit(ray, core.Eta, closest)
		if !ok || hit.Distance < core.Eta {
			continue
		}
		if !found || core.CloserThan(hit.Distance, best.Distance) {
			best = core.AccelRecord{HitRecord: hit, Object: obj}
			found = true
			closest = hit.Distance
		}
	}

	return best, found
}

const infinity = 1e300
