package sampler

import (
	"errors"
	"fmt"

	"github.com/afnanenayet/nib/pkg/core"
)

// ErrTooManyDims is returned when a single Next call requests more
// dimensions than the sampler was configured to hand out at once.
var ErrTooManyDims = errors.New("sampler: too many dimensions requested in a single call")

// ErrNoSamplesRemaining is returned when the sampler's table is exhausted.
var ErrNoSamplesRemaining = errors.New("sampler: no samples remaining")

// ErrIncompleteDimensions is returned when fewer samples remain than were
// requested; Partial holds the values that were available before
// exhaustion, so a caller that can make do with fewer dimensions doesn't
// have to discard them.
type ErrIncompleteDimensions struct {
	Requested int
	Provided  int
	Partial   []float64
}

func (e *ErrIncompleteDimensions) Error() string {
	return fmt.Sprintf("sampler: requested %d samples, only %d remained", e.Requested, e.Provided)
}

// QuotaSampler replays a fixed, pre-generated table of samples. It exists
// for tests and scripted reproductions that need an exact, hand-authored
// sequence rather than a PRNG stream — the random sampler is unbounded and
// cannot fail; QuotaSampler is the bounded variant spec.md §4.1 calls out.
type QuotaSampler struct {
	values       []float64
	cursor       int
	maxDimsPerCall int
}

// NewQuotaSampler creates a QuotaSampler over values. maxDimsPerCall <= 0
// means no per-call dimension limit is enforced.
func NewQuotaSampler(values []float64, maxDimsPerCall int) *QuotaSampler {
	return &QuotaSampler{values: values, maxDimsPerCall: maxDimsPerCall}
}

// Next draws k samples from the table, in order.
func (s *QuotaSampler) Next(k int) ([]float64, error) {
	if s.maxDimsPerCall > 0 && k > s.maxDimsPerCall {
		return nil, ErrTooManyDims
	}

	remaining := len(s.values) - s.cursor
	if remaining <= 0 {
		return nil, ErrNoSamplesRemaining
	}

	if remaining < k {
		partial := append([]float64(nil), s.values[s.cursor:]...)
		s.cursor = len(s.values)
		return nil, &ErrIncompleteDimensions{Requested: k, Provided: remaining, Partial: partial}
	}

	out := append([]float64(nil), s.values[s.cursor:s.cursor+k]...)
	s.cursor += k
	return out, nil
}

// Clone returns an independent QuotaSampler replaying the same table from
// the beginning. streamID is ignored: a scripted sequence is the same for
// every stream by design, so tests get a fully reproducible render
// regardless of thread count.
func (s *QuotaSampler) Clone(streamID uint64) core.Sampler {
	return &QuotaSampler{values: s.values, maxDimsPerCall: s.maxDimsPerCall}
}
