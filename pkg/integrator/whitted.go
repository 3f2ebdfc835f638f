package integrator

import (
	"github.com/afnanenayet/nib/pkg/core"
)

// Whitted is a recursive direct-lighting integrator: at each hit it asks
// the material to scatter, recurses on the scattered ray, and combines the
// result with the material's attenuation, down to a configured maximum
// depth.
type Whitted struct {
	MaxDepth int
}

// NewWhitted creates a Whitted integrator with the given recursion depth
// cutoff.
func NewWhitted(maxDepth int) *Whitted {
	return &Whitted{MaxDepth: maxDepth}
}

// Render implements core.Integrator, starting the recursion at depth 0.
func (w *Whitted) Render(ray core.Ray, scene *core.Scene, sampler core.Sampler) core.Vec3 {
	return w.render(ray, scene, sampler, 0)
}

func (w *Whitted) render(ray core.Ray, scene *core.Scene, sampler core.Sampler, depth int) core.Vec3 {
	hit, ok := scene.Accel.Collision(ray)
	if !ok {
		return backgroundGradient(ray)
	}
	if depth >= w.MaxDepth {
		return scene.Background
	}

	result, scattered := hit.Object.Material.Scatter(sampler, ray, hit.HitRecord)
	if !scattered {
		return scene.Background
	}

	incoming := w.render(result.Scattered, scene, sampler, depth+1)
	return result.Attenuation.MultiplyVec(incoming)
}

// backgroundGradient is the sky gradient a Whitted ray that escapes the
// scene resolves to: a lerp from white (looking straight down, Y = -1) to
// grey (looking straight up, Y = +1), parameterized by the normalized ray
// direction's Y component.
func backgroundGradient(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	grey := core.NewVec3(0.5, 0.5, 0.5)
	return core.Lerp(white, grey, t)
}
