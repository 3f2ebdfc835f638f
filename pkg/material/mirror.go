package material

import (
	"github.com/afnanenayet/nib/pkg/core"
)

// Mirror is a perturbed-specular material: the incoming direction reflects
// about the surface normal, then is perturbed by a unit-sphere sample
// scaled by Perturbation, producing everything from a perfect mirror
// (Perturbation == 0) to a rough, glossy metal (Perturbation close to 1).
type Mirror struct {
	Albedo      core.Vec3
	Perturbation float64
}

// NewMirror creates a Mirror material. perturbation should lie in [0,1];
// values outside that range are accepted but produce directions biased
// further from a true reflection than the name implies.
func NewMirror(albedo core.Vec3, perturbation float64) *Mirror {
	return &Mirror{Albedo: albedo, Perturbation: perturbation}
}

// Scatter implements core.Material. If the perturbed reflection points
// into the surface (n·dir <= 0), the ray is absorbed: ok is true (a
// scatter event did occur) but Attenuation is zero, so the integrator's
// recursive accumulation contributes nothing further along this path.
func (m *Mirror) Scatter(sampler core.Sampler, incoming core.Ray, hit core.HitRecord) (core.BSDFRecord, bool) {
	reflected := reflect(incoming.Direction, hit.Normal)

	perturb, err := core.SampleUnitSphere(sampler)
	if err != nil {
		return core.BSDFRecord{}, false
	}
	direction := reflected.Add(perturb.Multiply(m.Perturbation)).Normalize()

	scattered := core.BSDFRecord{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}
	if hit.Normal.Dot(direction) <= 0 {
		scattered.Attenuation = core.Vec3{}
	}
	return scattered, true
}

// reflect computes r = d - 2(d·n)n, the reflection of d about unit normal n.
func reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}
