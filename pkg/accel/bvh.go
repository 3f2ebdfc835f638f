package accel

import (
	"sort"

	"github.com/afnanenayet/nib/pkg/core"
)

// leafThreshold is the maximum number of objects stored in a BVH leaf
// before the builder attempts another split, matching the teacher
// repository's pkg/core/bvh.go.
const leafThreshold = 4

// bvhNode is an interior or leaf node of the hierarchy.
type bvhNode struct {
	bounds      core.AABB
	left, right *bvhNode
	objects     []*core.TexturedObject // non-nil only for leaves
}

// BVH is a bounding-volume-hierarchy Accelerator: a drop-in replacement
// for ObjectList that answers the identical Collision query faster on
// scenes with many objects, by pruning subtrees whose bounding box the
// ray misses entirely. Adapted from the teacher repository's
// pkg/core/bvh.go median-split builder.
type BVH struct {
	root *bvhNode
}

// NewBVH builds a BVH over the given arena. The input slice is copied
// before partitioning, so the caller's slice is never reordered.
func NewBVH(objects []*core.TexturedObject) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}
	cp := append([]*core.TexturedObject(nil), objects...)
	return &BVH{root: build(cp)}
}

func build(objects []*core.TexturedObject) *bvhNode {
	bounds := boundingBoxOf(objects[0])
	for _, obj := range objects[1:] {
		bounds = bounds.Union(boundingBoxOf(obj))
	}

	if len(objects) <= leafThreshold {
		return &bvhNode{bounds: bounds, objects: objects}
	}

	axis := bounds.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		ci := boundingBoxOf(objects[i])
		cj := boundingBoxOf(objects[j])
		return core.AxisValue(ci.Min.Add(ci.Max), axis) < core.AxisValue(cj.Min.Add(cj.Max), axis)
	})

	mid := len(objects) / 2
	return &bvhNode{
		bounds: bounds,
		left:   build(objects[:mid]),
		right:  build(objects[mid:]),
	}
}

// Collision implements core.Accelerator by descending the hierarchy,
// pruning any subtree whose bounding box the ray misses, and returning
// the closest hit with distance >= core.Eta across every leaf visited.
func (b *BVH) Collision(ray core.Ray) (core.AccelRecord, bool) {
	if b.root == nil {
		return core.AccelRecord{}, false
	}
	var best core.AccelRecord
	found := false
	closest := infinity
	b.collide(b.root, ray, &best, &found, &closest)
	return best, found
}

func (b *BVH) collide(node *bvhNode, ray core.Ray, best *core.AccelRecord, found *bool, closest *float64) {
	if !node.bounds.Hit(ray, core.Eta, *closest) {
		return
	}

	if node.objects != nil {
		for _, obj := range node.objects {
			hit, ok := obj.Shape.Hit(ray, core.Eta, *closest)
			if !ok || hit.Distance < core.Eta {
				continue
			}
			if !*found || core.CloserThan(hit.Distance, best.Distance) {
				*best = core.AccelRecord{HitRecord: hit, Object: obj}
				*found = true
				*closest = hit.Distance
			}
		}
		return
	}

	b.collide(node.left, ray, best, found, closest)
	b.collide(node.right, ray, best, found, closest)
}
