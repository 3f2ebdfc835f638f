// Package camera implements core.Camera: mapping normalized image-plane
// coordinates to primary rays. BasicPinhole stores a precomputed basis and
// needs no further setup; Pinhole derives that basis from a look-from/
// look-at pair at construction time; ThinLens adds a defocus disk for
// depth of field.
package camera

import (
	"math"

	"github.com/afnanenayet/nib/pkg/core"
)

// BasicPinhole is a pinhole camera defined directly by its image-plane
// basis vectors, with no derivation from field of view or look direction.
// Useful for test fixtures and scene documents that want exact control
// over the basis.
type BasicPinhole struct {
	Origin     core.Vec3
	Horizontal core.Vec3
	Vertical   core.Vec3
	LowerLeft  core.Vec3
}

// NewBasicPinhole creates a BasicPinhole from its raw basis vectors.
func NewBasicPinhole(origin, horizontal, vertical, lowerLeft core.Vec3) *BasicPinhole {
	return &BasicPinhole{Origin: origin, Horizontal: horizontal, Vertical: vertical, LowerLeft: lowerLeft}
}

// ToRay implements core.Camera. The sampler argument is ignored: a pinhole
// camera has no lens to sample.
func (c *BasicPinhole) ToRay(u, v float64, sampler core.Sampler) core.Ray {
	direction := c.LowerLeft.
		Add(c.Horizontal.Multiply(u)).
		Add(c.Vertical.Multiply(v)).
		Subtract(c.Origin).
		Normalize()
	return core.NewRay(c.Origin, direction)
}

// Pinhole is a pinhole camera parameterized by look-from/look-at, vertical
// field of view, an up hint, and aspect ratio; it derives the image-plane
// basis once at construction via the standard orthonormal-basis
// construction and otherwise behaves exactly like BasicPinhole.
type Pinhole struct {
	basis BasicPinhole
}

// NewPinhole builds the image-plane basis from user-facing camera
// parameters: w is the backward view direction, u' and v' span the image
// plane, and the frame is placed one unit of w in front of the origin.
func NewPinhole(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspectRatio float64) *Pinhole {
	theta := vfovDegrees * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := aspectRatio * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	uPrime := up.Cross(w).Normalize()
	vPrime := w.Cross(uPrime)

	lowerLeft := lookFrom.
		Subtract(uPrime.Multiply(halfWidth)).
		Subtract(vPrime.Multiply(halfHeight)).
		Subtract(w)
	horizontal := uPrime.Multiply(2 * halfWidth)
	vertical := vPrime.Multiply(2 * halfHeight)

	return &Pinhole{basis: BasicPinhole{Origin: lookFrom, Horizontal: horizontal, Vertical: vertical, LowerLeft: lowerLeft}}
}

// ToRay implements core.Camera by delegating to the precomputed basis.
func (c *Pinhole) ToRay(u, v float64, sampler core.Sampler) core.Ray {
	return c.basis.ToRay(u, v, sampler)
}
