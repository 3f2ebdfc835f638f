package accel

import (
	"testing"

	"github.com/afnanenayet/nib/pkg/core"
	"github.com/afnanenayet/nib/pkg/geometry"
	"github.com/google/go-cmp/cmp"
)

func TestBVH_Collision_ReturnsClosest(t *testing.T) {
	bvh := NewBVH(testArena())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := bvh.Collision(ray)
	if !ok {
		t.Fatal("Collision() = false, want true")
	}
	if diff := cmp.Diff(4.0, hit.Distance, approxOpt); diff != "" {
		t.Errorf("Distance mismatch (-want +got):\n%s", diff)
	}
}

func TestBVH_Collision_Miss(t *testing.T) {
	bvh := NewBVH(testArena())
	ray := core.NewRay(core.NewVec3(0, 100, 0), core.NewVec3(0, 0, -1))

	if _, ok := bvh.Collision(ray); ok {
		t.Error("Collision() = true, want false for a ray that clears every object")
	}
}

func TestBVH_Collision_EmptyArena(t *testing.T) {
	bvh := NewBVH(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := bvh.Collision(ray); ok {
		t.Error("Collision() = true, want false for an empty arena")
	}
}

// largeArena builds enough spheres to force the BVH builder past a single
// leaf, scattered along the ray-marching axis and off to the side.
func largeArena() []*core.TexturedObject {
	objects := make([]*core.TexturedObject, 0, 40)
	for i := 0; i < 20; i++ {
		objects = append(objects, &core.TexturedObject{
			Shape: geometry.NewSphere(core.NewVec3(0, 0, float64(-2*i-3)), 0.5),
		})
	}
	for i := 0; i < 20; i++ {
		objects = append(objects, &core.TexturedObject{
			Shape: geometry.NewSphere(core.NewVec3(float64(3*i+10), 0, -5), 0.5),
		})
	}
	return objects
}

// TestBVH_ObjectList_Equivalence is the cross-accelerator property test:
// for a fixed scene and a fixed set of sample rays, BVH and ObjectList must
// agree on every query within tolerance.
func TestBVH_ObjectList_Equivalence(t *testing.T) {
	arena := largeArena()
	bvh := NewBVH(arena)
	list := NewObjectList(arena)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
		core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)),
		core.NewRay(core.NewVec3(-50, 0, -5), core.NewVec3(1, 0, 0)),
		core.NewRay(core.NewVec3(0, 100, 0), core.NewVec3(0, 1, 0)),
	}

	for i, ray := range rays {
		bvhHit, bvhOK := bvh.Collision(ray)
		listHit, listOK := list.Collision(ray)

		if bvhOK != listOK {
			t.Errorf("ray %d: BVH hit=%v, ObjectList hit=%v, want equal", i, bvhOK, listOK)
			continue
		}
		if !bvhOK {
			continue
		}
		if diff := cmp.Diff(listHit.HitRecord, bvhHit.HitRecord, approxOpt); diff != "" {
			t.Errorf("ray %d: HitRecord mismatch (-objectlist +bvh):\n%s", i, diff)
		}
	}
}
