// Package renderer implements the data-parallel driver described in
// spec.md §4.7: a worker pool fans rows of pixels out across workers,
// each row drawing from its own deterministic sampler clone, and
// accumulates samples into
// a dense row-major image buffer.
package renderer

import "runtime"

// Options configures a single render invocation.
type Options struct {
	Width, Height   int
	SamplesPerPixel int
	WorkerCount     int
	RootSeed        uint64
}

// resolvedWorkerCount returns o.WorkerCount, or runtime.NumCPU() if the
// caller left it unspecified (<= 0).
func (o Options) resolvedWorkerCount() int {
	if o.WorkerCount > 0 {
		return o.WorkerCount
	}
	return runtime.NumCPU()
}
