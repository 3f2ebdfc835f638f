package material

import (
	"math"

	"github.com/afnanenayet/nib/pkg/core"
)

// Dielectric is a refractive material (glass, water, ...), parameterized by
// a refraction index and an optional tint (white, i.e. no absorption, by
// default). At each scatter event it either reflects or refracts,
// stochastically, weighted by the Schlick Fresnel approximation.
type Dielectric struct {
	RefractionIndex float64
	Tint            core.Vec3
}

// NewDielectric creates a Dielectric material with a white tint.
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Tint: core.NewVec3(1, 1, 1)}
}

// NewTintedDielectric creates a Dielectric material with the given tint
// applied as the attenuation of every scattered ray.
func NewTintedDielectric(refractionIndex float64, tint core.Vec3) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Tint: tint}
}

// Scatter implements core.Material following the refraction/reflection
// decision spec.md §4.4 lays out: pick the outward normal and eta ratio
// depending on whether the ray is entering or exiting, check for total
// internal reflection, and otherwise choose reflect vs. refract by
// comparing a uniform draw against the Schlick reflectance.
func (d *Dielectric) Scatter(sampler core.Sampler, incoming core.Ray, hit core.HitRecord) (core.BSDFRecord, bool) {
	unitDir := incoming.Direction.Normalize()
	cosI := unitDir.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var etaRatio float64
	var cos float64
	if cosI > 0 {
		// Exiting the medium.
		outwardNormal = hit.Normal.Negate()
		etaRatio = d.RefractionIndex
		cos = d.RefractionIndex * cosI
	} else {
		// Entering the medium.
		outwardNormal = hit.Normal
		etaRatio = 1.0 / d.RefractionIndex
		cos = -d.RefractionIndex * cosI
	}

	discriminant := 1 - etaRatio*etaRatio*(1-cosI*cosI)

	draw, err := sampler.Next(1)
	if err != nil {
		return core.BSDFRecord{}, false
	}

	var direction core.Vec3
	if discriminant > 0 && draw[0] >= schlick(cos, etaRatio) {
		direction = refract(unitDir, outwardNormal, etaRatio, discriminant)
	} else {
		direction = reflect(unitDir, outwardNormal)
	}

	return core.BSDFRecord{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: d.Tint,
	}, true
}

// refract applies Snell's law to compute the transmitted direction.
// normal is the branch-local outward normal chosen by Scatter, which always
// opposes unitDir (dot < 0) regardless of whether the ray is entering or
// exiting; callers must already have verified discriminant > 0 (no total
// internal reflection).
func refract(unitDir, normal core.Vec3, etaRatio, discriminant float64) core.Vec3 {
	cosI := unitDir.Dot(normal)
	perpendicular := unitDir.Subtract(normal.Multiply(cosI)).Multiply(etaRatio)
	parallel := normal.Multiply(-math.Sqrt(discriminant))
	return perpendicular.Add(parallel).Normalize()
}

// schlick is the Schlick approximation to Fresnel reflectance:
// R0 = ((1-eta)/(1+eta))^2, R = R0 + (1-R0)(1-cos)^5.
func schlick(cos, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
