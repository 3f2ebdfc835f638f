package renderer

import (
	"sync"

	"github.com/afnanenayet/nib/pkg/core"
)

// rowTask is a unit of work for the pool: render every pixel in image row Y.
type rowTask struct {
	Y int
}

// rowResult is a completed row: Y and its W pixel colors, in column order.
type rowResult struct {
	Y      int
	Pixels []core.Vec3
}

// workerPool fans row tasks out across a fixed number of workers. Workers
// carry no per-worker state of their own — render derives each row's
// sampler stream from the row index, not from which worker happens to
// pull the task — so which worker services which row (the Go scheduler's
// arbitrary choice among ready channel receivers) never affects output.
type workerPool struct {
	taskQueue   chan rowTask
	resultQueue chan rowResult
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool sized for every row up front; the task and
// result channels are buffered to the full row count so producers and
// workers never block on each other's pace.
func newWorkerPool(numRows int) *workerPool {
	return &workerPool{
		taskQueue:   make(chan rowTask, numRows),
		resultQueue: make(chan rowResult, numRows),
	}
}

// start launches numWorkers identical goroutines, each running render for
// every task it pulls from the queue until the queue is closed. render is
// responsible for deriving any per-task state (e.g. a sampler stream) from
// the task itself, not from the worker, so the partition of rows across
// workers never influences the result.
func (wp *workerPool) start(numWorkers int, render func(rowTask) rowResult) {
	for id := 0; id < numWorkers; id++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				wp.resultQueue <- render(task)
			}
		}()
	}
}

// submit enqueues a row task.
func (wp *workerPool) submit(task rowTask) {
	wp.taskQueue <- task
}

// closeInput signals that no further tasks will be submitted.
func (wp *workerPool) closeInput() {
	close(wp.taskQueue)
}

// wait blocks until every worker has drained the task queue, then closes
// the result queue so a ranging consumer terminates.
func (wp *workerPool) wait() {
	wp.wg.Wait()
	close(wp.resultQueue)
}
