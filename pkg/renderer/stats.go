package renderer

import (
	"sync/atomic"
	"time"
)

// RenderStats summarizes a completed render.
type RenderStats struct {
	TotalPixels  int
	TotalSamples int
	Elapsed      time.Duration
}

// progress is the single cross-worker writable piece of state during a
// render: a coarse pixel counter, updated atomically, with no lock.
type progress struct {
	done  int64
	total int64
}

func newProgress(total int) *progress {
	return &progress{total: int64(total)}
}

// increment advances the counter by one completed pixel and reports the
// counter's new value together with whether this call crossed a new
// percentage-point boundary, for throttled display (spec.md §4.7: "update
// delta ~= 1% of total").
func (p *progress) increment() (done int64, percentBoundaryCrossed bool) {
	before := atomic.AddInt64(&p.done, 1) - 1
	after := before + 1
	if p.total == 0 {
		return after, false
	}
	step := p.total / 100
	if step < 1 {
		step = 1
	}
	return after, before/step != after/step
}
