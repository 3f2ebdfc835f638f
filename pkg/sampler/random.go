// Package sampler implements core.Sampler: a pseudo-random stream of
// uniform samples, deterministic given a seed and the sequence of calls,
// and clone-able so that each independent stream (the renderer derives one
// per image row) can own a private copy seeded from (rootSeed, streamID)
// rather than from anything scheduler-dependent.
package sampler

import (
	"math/rand"

	"github.com/afnanenayet/nib/pkg/core"
)

// RandomSampler is an unbounded core.Sampler backed by math/rand. It can
// never fail in steady state: Next always succeeds.
type RandomSampler struct {
	rootSeed uint64
	rng      *rand.Rand
}

// NewRootSampler creates the single root sampler for a render, seeded
// directly from rootSeed. Render work never draws from the root sampler
// directly — each independent unit of work (one per image row) calls
// Clone(streamID) to get its own deterministic stream.
func NewRootSampler(rootSeed uint64) *RandomSampler {
	return &RandomSampler{
		rootSeed: rootSeed,
		rng:      rand.New(rand.NewSource(int64(rootSeed))),
	}
}

// Next draws k independent uniform samples in [0,1). It never errors.
func (s *RandomSampler) Next(k int) ([]float64, error) {
	out := make([]float64, k)
	for i := range out {
		out[i] = s.rng.Float64()
	}
	return out, nil
}

// Clone returns a fresh RandomSampler seeded deterministically from
// (rootSeed, streamID), never from the goroutine or OS thread that calls
// it, so a stream's values depend only on its streamID (e.g. a row index)
// and never on how work happens to be scheduled across workers. Clone
// only reads s.rootSeed and allocates a new *rand.Rand, so it is safe to
// call concurrently from multiple goroutines sharing the same root
// sampler.
func (s *RandomSampler) Clone(streamID uint64) core.Sampler {
	return &RandomSampler{
		rootSeed: s.rootSeed,
		rng:      rand.New(rand.NewSource(int64(deriveStreamSeed(s.rootSeed, streamID)))),
	}
}

// deriveStreamSeed mixes a root seed and a stream id into a single stream
// seed using the SplitMix64 finalizer, which is a cheap, well-distributed
// way to turn two small integers into an independent-looking 64-bit seed
// without the correlation a plain XOR or addition would introduce between
// adjacent stream ids.
func deriveStreamSeed(rootSeed, streamID uint64) uint64 {
	z := rootSeed + streamID*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
