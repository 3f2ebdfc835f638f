package camera

import (
	"math"

	"github.com/afnanenayet/nib/pkg/core"
)

// ThinLens is a pinhole camera extended with a defocus disk: rays
// originate from a point jittered across a lens of radius aperture/2
// instead of a single origin, producing depth-of-field blur away from the
// focus plane.
type ThinLens struct {
	origin        core.Vec3
	uPrime, vPrime core.Vec3
	lowerLeft     core.Vec3
	horizontal    core.Vec3
	vertical      core.Vec3
	lensRadius    float64
}

// NewThinLens builds the same image-plane basis as Pinhole, but scaled by
// focusDistance so the image plane sits at the focus plane rather than one
// unit in front of the camera, and records the u'/v' basis vectors so
// ToRay's lens-disk sample can be converted into a world-space offset.
func NewThinLens(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspectRatio, aperture, focusDistance float64) *ThinLens {
	theta := vfovDegrees * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := aspectRatio * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	uPrime := up.Cross(w).Normalize()
	vPrime := w.Cross(uPrime)

	lowerLeft := lookFrom.
		Subtract(uPrime.Multiply(halfWidth * focusDistance)).
		Subtract(vPrime.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))
	horizontal := uPrime.Multiply(2 * halfWidth * focusDistance)
	vertical := vPrime.Multiply(2 * halfHeight * focusDistance)

	return &ThinLens{
		origin:     lookFrom,
		uPrime:     uPrime,
		vPrime:     vPrime,
		lowerLeft:  lowerLeft,
		horizontal: horizontal,
		vertical:   vertical,
		lensRadius: aperture / 2.0,
	}
}

// ToRay implements core.Camera: samples a point on the lens disk, shifts
// the ray origin by that offset, and aims the ray from the shifted origin
// through the unshifted image-plane target, so points on the focus plane
// stay sharp.
func (c *ThinLens) ToRay(u, v float64, sampler core.Sampler) core.Ray {
	target := c.lowerLeft.Add(c.horizontal.Multiply(u)).Add(c.vertical.Multiply(v))

	if c.lensRadius <= 0 {
		return core.NewRay(c.origin, target.Subtract(c.origin).Normalize())
	}

	disk, err := core.SampleUnitDisk(sampler)
	if err != nil {
		return core.NewRay(c.origin, target.Subtract(c.origin).Normalize())
	}
	offset := c.uPrime.Multiply(disk.X * c.lensRadius).Add(c.vPrime.Multiply(disk.Y * c.lensRadius))
	origin := c.origin.Add(offset)

	return core.NewRay(origin, target.Subtract(origin).Normalize())
}
