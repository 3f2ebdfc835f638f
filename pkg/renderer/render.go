package renderer

import (
	"time"

	"github.com/afnanenayet/nib/pkg/core"
	"github.com/afnanenayet/nib/pkg/sampler"
)

// Render runs the data-parallel driver from spec.md §4.7: a parallel map
// over every pixel, each accumulating opts.SamplesPerPixel stochastic
// samples from the scene's camera and integrator, divided down to a
// single pixel color. Image-plane Y is flipped so row 0 of the returned
// buffer is the top of the frame. logger receives throttled progress
// updates at roughly 1% granularity; pass core.NopLogger{} to silence them.
//
// Each row's sampler stream is cloned from the root sampler keyed by its
// own row index (rootSampler.Clone(rowIndex)), never by which worker
// happens to process it — so the output is reproducible for a fixed
// (scene, RootSeed) regardless of WorkerCount or OS scheduling, matching
// spec §5's determinism invariant.
func Render(scene *core.Scene, opts Options, logger core.Logger) ([]core.Vec3, RenderStats) {
	start := time.Now()
	numWorkers := opts.resolvedWorkerCount()
	rootSampler := sampler.NewRootSampler(opts.RootSeed)

	pool := newWorkerPool(opts.Height)
	pool.start(numWorkers, func(task rowTask) rowResult {
		rowSampler := rootSampler.Clone(uint64(task.Y))
		return renderRow(scene, opts, rowSampler, task.Y)
	})

	prog := newProgress(opts.Width * opts.Height)
	for y := 0; y < opts.Height; y++ {
		pool.submit(rowTask{Y: y})
	}
	pool.closeInput()

	buffer := make([]core.Vec3, opts.Width*opts.Height)
	done := make(chan struct{})
	go func() {
		for result := range pool.resultQueue {
			copy(buffer[result.Y*opts.Width:(result.Y+1)*opts.Width], result.Pixels)
			for range result.Pixels {
				if _, crossed := prog.increment(); crossed {
					logger.Printf("render progress: %d%%", 100*prog.done/maxInt64(prog.total, 1))
				}
			}
		}
		close(done)
	}()
	pool.wait()
	<-done

	stats := RenderStats{
		TotalPixels:  opts.Width * opts.Height,
		TotalSamples: opts.Width * opts.Height * opts.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
	return buffer, stats
}

// renderRow computes every pixel in row y, accumulating opts.SamplesPerPixel
// jittered samples per pixel via the scene's camera and integrator.
func renderRow(scene *core.Scene, opts Options, s core.Sampler, y int) rowResult {
	pixels := make([]core.Vec3, opts.Width)
	flippedY := opts.Height - 1 - y

	for x := 0; x < opts.Width; x++ {
		var accum core.Vec3
		for sampleIdx := 0; sampleIdx < opts.SamplesPerPixel; sampleIdx++ {
			jitter, err := s.Next(2)
			if err != nil {
				continue
			}
			u := (float64(x) + jitter[0]) / float64(opts.Width)
			v := (float64(flippedY) + jitter[1]) / float64(opts.Height)

			ray := scene.Camera.ToRay(u, v, s)
			accum = accum.Add(scene.Integrator.Render(ray, scene, s))
		}
		if opts.SamplesPerPixel > 0 {
			accum = accum.Multiply(1.0 / float64(opts.SamplesPerPixel))
		}
		pixels[x] = accum
	}

	return rowResult{Y: y, Pixels: pixels}
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
