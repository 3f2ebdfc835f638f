// Package integrator implements core.Integrator: recursively estimating
// radiance along a ray against a scene. Normal is a diagnostic integrator
// that visualizes surface normals; Whitted performs recursive
// direct-lighting with a configured depth cutoff.
package integrator

import (
	"github.com/afnanenayet/nib/pkg/core"
)

// Normal is a diagnostic integrator: it queries the accelerator once and
// remaps the hit normal into an RGB color, with no recursion and no
// material evaluation. Useful for visualizing geometry independent of
// shading.
type Normal struct{}

// Render implements core.Integrator.
func (Normal) Render(ray core.Ray, scene *core.Scene, sampler core.Sampler) core.Vec3 {
	hit, ok := scene.Accel.Collision(ray)
	if !ok {
		return scene.Background
	}
	return core.Vec3{
		X: 0.5*hit.Normal.X + 0.5,
		Y: 0.5*hit.Normal.Y + 0.5,
		Z: 0.5*hit.Normal.Z + 0.5,
	}
}
