package renderer

import (
	"runtime"
	"sync"
)

// rowTask assigns one scanline to a worker.
type rowTask struct {
	y int
}

// rowResult reports a finished scanline.
type rowResult struct {
	y   int
	err error
}

// workerPool renders scanlines in parallel. Rows are disjoint slices of the
// shared pixel buffer, so workers need no synchronization beyond the task
// and result channels.
type workerPool struct {
	taskQueue   chan rowTask
	resultQueue chan rowResult
	numWorkers  int
	renderRow   func(y int) error
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool with the specified number of workers; zero or
// negative selects one per CPU. queueSize must cover every task that will be
// submitted so Submit never blocks.
func newWorkerPool(numWorkers, queueSize int, renderRow func(y int) error) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		taskQueue:   make(chan rowTask, queueSize),
		resultQueue: make(chan rowResult, queueSize),
		numWorkers:  numWorkers,
		renderRow:   renderRow,
	}
}

// Start begins all workers
func (wp *workerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop closes the task queue, waits for workers to drain it, then closes the
// result queue so Results loops terminate.
func (wp *workerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a scanline task
func (wp *workerPool) Submit(task rowTask) {
	wp.taskQueue <- task
}

// Results returns the channel of completed scanlines
func (wp *workerPool) Results() <-chan rowResult {
	return wp.resultQueue
}

// run is the main worker loop
func (wp *workerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		err := wp.renderRow(task.y)
		wp.resultQueue <- rowResult{y: task.y, err: err}
	}
}
