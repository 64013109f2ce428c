package renderer

import (
	"context"
	"runtime"
	"sync"
)

// ScanlineTask represents a scanline rendering task for the worker pool
type ScanlineTask struct {
	Row    int // Buffer row, 0 is the top
	TaskID int // For deterministic ordering
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	TaskID int
	Row    int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	buffer      *PixelBuffer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool writing into buf.
// Both queues hold maxTasks entries so submission never blocks.
func NewWorkerPool(raytracer *Raytracer, buf *PixelBuffer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	// more workers than rows would idle
	if maxTasks > 0 && numWorkers > maxTasks {
		numWorkers = maxTasks
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, maxTasks),
		resultQueue: make(chan ScanlineResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			buffer:      buf,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Tasks picked up after ctx is done report its error.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		result := ScanlineResult{TaskID: task.TaskID, Row: task.Row}
		if err := ctx.Err(); err != nil {
			result.Error = err
		} else {
			// rows are disjoint, so writes to the shared buffer never overlap
			result.Stats = w.raytracer.RenderScanline(task.Row, w.buffer)
		}
		w.resultQueue <- result
	}
}
