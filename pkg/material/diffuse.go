// Package material implements core.Material: the BSDFs that scatter rays
// at surface intersections. Diffuse, Mirror, and Dielectric cover the three
// families a path tracer needs: matte, perfectly specular, and refractive.
package material

import (
	"github.com/afnanenayet/nib/pkg/core"
)

// Diffuse is a Lambertian material: the scattered direction is the surface
// normal perturbed by a point sampled from the unit sphere, which yields a
// cosine-weighted distribution over the hemisphere without any
// trigonometry.
type Diffuse struct {
	Albedo core.Vec3
}

// NewDiffuse creates a Diffuse material with the given albedo. The caller
// is responsible for validating Albedo components lie in [0,1] at
// scene-construction time; Scatter itself never clamps or rejects.
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Scatter implements core.Material. The scattered direction is normalized
// like every other scattered ray. A near-zero scatter direction (the
// sphere sample nearly cancels the normal) is not a scattering failure,
// just a degenerate direction the downstream integrator's recursion
// handles like any other; an exactly-zero one stays the zero vector.
func (d *Diffuse) Scatter(sampler core.Sampler, incoming core.Ray, hit core.HitRecord) (core.BSDFRecord, bool) {
	direction, err := core.SampleCosineHemisphere(sampler, hit.Normal)
	if err != nil {
		return core.BSDFRecord{}, false
	}
	return core.BSDFRecord{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		Attenuation: d.Albedo,
	}, true
}
