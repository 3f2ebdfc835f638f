package core

// Shape is implemented by every hittable primitive (Sphere, Triangle, ...).
// Hit reports whether ray intersects the primitive within [tMin, tMax],
// returning the closest such hit.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
}

// Material is implemented by every BSDF (Diffuse, Mirror, Dielectric, ...).
// Scatter draws from the sampler (a single value for a dielectric's
// reflect/refract decision; one or more unit-sphere rejection-sampling
// rounds of three values for diffuse and mirror) and produces a scattered
// ray plus attenuation. ok is false when no scatter could be produced
// (e.g. the sampler returned an error); an absorbed ray (e.g. a mirror
// whose perturbed reflection points into the surface) is reported with ok
// true and zero attenuation.
type Material interface {
	Scatter(sampler Sampler, incoming Ray, hit HitRecord) (BSDFRecord, bool)
}

// Accelerator answers closest-intersection queries over the scene arena.
// ObjectList (linear scan) is the baseline implementation; BVH is a
// drop-in replacement with the same contract.
type Accelerator interface {
	Collision(ray Ray) (AccelRecord, bool)
}

// Camera maps normalized image-plane coordinates (u,v) in [0,1]² to a
// world-space primary ray. Pinhole cameras ignore the sampler argument;
// thin-lens cameras draw a disk sample from it for depth of field.
type Camera interface {
	ToRay(u, v float64, sampler Sampler) Ray
}

// Integrator recursively estimates radiance along a ray against a scene.
type Integrator interface {
	Render(ray Ray, scene *Scene, sampler Sampler) Vec3
}

// Sampler produces reproducible, independent uniform samples in [0,1) and
// must be clone-able so each independent stream (one per image row, not
// per worker — see package renderer) can own a private, deterministic
// copy of the stream. See package sampler for implementations.
type Sampler interface {
	// Next draws k independent uniform samples in [0,1).
	Next(k int) ([]float64, error)
	// Clone returns an independent copy of the sampler's state, seeded
	// deterministically from streamID — the caller's choice of a stable
	// key (e.g. a row index), never from anything scheduler-dependent.
	Clone(streamID uint64) Sampler
}

// Logger is the minimal logging contract consumed by the renderer and
// scene-construction code, decoupling them from the concrete logging
// library (see package logging for the zerolog-backed adapter).
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything logged to it. Used as the zero-value
// default so core code never needs a nil check.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(format string, args ...interface{}) {}
