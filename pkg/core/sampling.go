package core

// SampleUnitSphere draws a point uniformly distributed inside the unit
// ball via rejection sampling: draw v in [-1,1]³ as 2u-1, repeat while
// ‖v‖² >= 1. The result is not normalized; callers that want a direction
// normalize it themselves (spec.md §4.1).
func SampleUnitSphere(sampler Sampler) (Vec3, error) {
	for {
		u, err := sampler.Next(3)
		if err != nil {
			return Vec3{}, err
		}
		v := Vec3{X: 2*u[0] - 1, Y: 2*u[1] - 1, Z: 2*u[2] - 1}
		if v.LengthSquared() < 1 {
			return v, nil
		}
	}
}

// SampleUnitDisk draws a point uniformly distributed inside the unit disk
// in the xy plane via rejection sampling, for camera defocus blur.
func SampleUnitDisk(sampler Sampler) (Vec3, error) {
	for {
		u, err := sampler.Next(2)
		if err != nil {
			return Vec3{}, err
		}
		x, y := 2*u[0]-1, 2*u[1]-1
		if x*x+y*y < 1 {
			return Vec3{X: x, Y: y, Z: 0}, nil
		}
	}
}

// SampleCosineHemisphere draws a cosine-weighted direction around the
// given unit normal, used by the Diffuse material: normal + a unit-sphere
// sample lands in the correct hemisphere with the correct cosine-weighted
// density without any trigonometry (Lambertian convention, spec.md §4.4).
func SampleCosineHemisphere(sampler Sampler, normal Vec3) (Vec3, error) {
	offset, err := SampleUnitSphere(sampler)
	if err != nil {
		return Vec3{}, err
	}
	return normal.Add(offset), nil
}
