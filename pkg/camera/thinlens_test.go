package camera

import (
	"testing"

	"github.com/afnanenayet/nib/pkg/core"
)

// fixedDiskSampler always returns the same two values for a Next(2) call,
// enough to pin down SampleUnitDisk's rejection-sampling result.
type fixedDiskSampler struct {
	u, v float64
}

func (f fixedDiskSampler) Next(k int) ([]float64, error) {
	out := make([]float64, k)
	if k > 0 {
		out[0] = f.u
	}
	if k > 1 {
		out[1] = f.v
	}
	return out, nil
}

func (f fixedDiskSampler) Clone(workerID uint64) core.Sampler { return f }

func TestThinLens_ToRay_ZeroApertureMatchesPinhole(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 5)
	lookAt := core.NewVec3(0, 0, 0)
	thin := NewThinLens(lookFrom, lookAt, core.NewVec3(0, 1, 0), 90, 1.0, 0, 5)
	pin := NewPinhole(lookFrom, lookAt, core.NewVec3(0, 1, 0), 90, 1.0)

	thinRay := thin.ToRay(0.25, 0.75, fixedDiskSampler{u: 0.5, v: 0.5})
	pinRay := pin.ToRay(0.25, 0.75, nil)

	if thinRay.Origin != pinRay.Origin {
		t.Errorf("Origin = %v, want %v", thinRay.Origin, pinRay.Origin)
	}
}

func TestThinLens_ToRay_NonzeroApertureShiftsOrigin(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 5)
	lookAt := core.NewVec3(0, 0, 0)
	thin := NewThinLens(lookFrom, lookAt, core.NewVec3(0, 1, 0), 90, 1.0, 1.0, 5)

	// u=0.75, v=0.5 -> disk sample (0.5, 0, 0), well inside the unit disk.
	ray := thin.ToRay(0.5, 0.5, fixedDiskSampler{u: 0.75, v: 0.5})

	if ray.Origin == lookFrom {
		t.Error("Origin unchanged, want it shifted by the sampled lens offset")
	}
}
