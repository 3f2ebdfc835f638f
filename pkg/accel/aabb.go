package accel

import (
	"math"

	"github.com/afnanenayet/nib/pkg/core"
)

// boundingBoxOf returns obj's bounding box, or an unbounded box if its
// shape doesn't implement core.Bounded — no shape in this module falls
// into that case today, but the BVH degrades to "always descend" instead
// of silently mis-partitioning if one ever does.
func boundingBoxOf(obj *core.TexturedObject) core.AABB {
	if bounded, ok := obj.Shape.(core.Bounded); ok {
		return bounded.BoundingBox()
	}
	inf := math.MaxFloat64
	return core.NewAABB(core.NewVec3(-inf, -inf, -inf), core.NewVec3(inf, inf, inf))
}
