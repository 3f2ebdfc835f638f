package integrator

import (
	"testing"

	"github.com/afnanenayet/nib/pkg/accel"
	"github.com/afnanenayet/nib/pkg/core"
	"github.com/afnanenayet/nib/pkg/geometry"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpt = cmpopts.EquateApprox(0, 1e-9)

func TestNormal_Render_Miss(t *testing.T) {
	scene := &core.Scene{
		Accel:      accel.NewObjectList(nil),
		Background: core.NewVec3(0.1, 0.2, 0.3),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := Normal{}.Render(ray, scene, nil)
	if diff := cmp.Diff(scene.Background, got, approxOpt); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormal_Render_Hit(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1)
	scene := &core.Scene{
		Objects:    []*core.TexturedObject{{Shape: sphere}},
		Accel:      accel.NewObjectList([]*core.TexturedObject{{Shape: sphere}}),
		Background: core.Vec3{},
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := Normal{}.Render(ray, scene, nil)
	// The ray hits the sphere dead-on, so the normal is (0,0,1); remapped
	// that's (0.5, 0.5, 1.0).
	want := core.NewVec3(0.5, 0.5, 1.0)
	if diff := cmp.Diff(want, got, approxOpt); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}
