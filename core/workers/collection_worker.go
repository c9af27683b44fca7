// ABOUTME: Collection worker runs background collection jobs off a queue
// ABOUTME: Jobs come from the API trigger endpoint and the refresh ticker

package workers

import (
	"context"
	"sync"
	"time"

	"newswire-collector/core/interfaces"
	"newswire-collector/core/runner"
)

// submitTimeout bounds how long a submission waits on a full queue
const submitTimeout = 5 * time.Second

// CollectionJob represents one queued collection run
type CollectionJob struct {
	// Trigger names what requested the run, for logging
	Trigger string

	// Context bounds the run; nil falls back to the worker's context
	Context context.Context

	// ResultCh receives the run summary when non-nil
	ResultCh chan<- runner.Summary

	// ErrorCh receives the run error when non-nil
	ErrorCh chan<- error
}

// Runner executes one end-to-end collection run
type Runner interface {
	RunOnce(ctx context.Context) (runner.Summary, error)
}

// WorkerConfig holds configuration for the collection worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int

	// Logger records job lifecycle events; nil keeps the worker silent
	Logger interfaces.Logger
}

// DefaultWorkerConfig returns the default worker configuration.
// Collection runs are heavyweight, so one runs at a time.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 1,
		QueueSize:  8,
	}
}

// CollectionWorker manages background collection processing
type CollectionWorker struct {
	runner     Runner
	logger     interfaces.Logger
	jobQueue   chan *CollectionJob
	maxWorkers int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// NewCollectionWorker creates a new collection worker
func NewCollectionWorker(r Runner, config WorkerConfig) *CollectionWorker {
	ctx, cancel := context.WithCancel(context.Background())

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}

	return &CollectionWorker{
		runner:     r,
		logger:     config.Logger,
		jobQueue:   make(chan *CollectionJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool
func (cw *CollectionWorker) Start() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.running {
		return nil
	}

	for i := 0; i < cw.maxWorkers; i++ {
		cw.wg.Add(1)
		go cw.run()
	}

	cw.running = true
	return nil
}

// Stop stops the worker pool gracefully
func (cw *CollectionWorker) Stop() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if !cw.running {
		return nil
	}

	cw.cancel()
	close(cw.jobQueue)
	cw.wg.Wait()

	cw.running = false
	return nil
}

// SubmitJob submits a job to the worker pool
func (cw *CollectionWorker) SubmitJob(job *CollectionJob) error {
	return cw.submit(context.Background(), job)
}

// TriggerRun queues a run without waiting for its outcome. The context
// bounds only the submission; the queued run itself is bounded by the
// worker's lifetime, so a trigger from an HTTP request survives the
// request ending.
func (cw *CollectionWorker) TriggerRun(ctx context.Context, trigger string) error {
	return cw.submit(ctx, &CollectionJob{Trigger: trigger})
}

// submit enqueues a job, waiting up to submitTimeout for queue space
func (cw *CollectionWorker) submit(ctx context.Context, job *CollectionJob) error {
	cw.mu.Lock()
	if !cw.running {
		cw.mu.Unlock()
		return ErrWorkerNotRunning
	}
	cw.mu.Unlock()

	select {
	case cw.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(submitTimeout):
		return ErrQueueFull
	}
}

// run is the main loop for each worker goroutine
func (cw *CollectionWorker) run() {
	defer cw.wg.Done()

	for {
		select {
		case job, ok := <-cw.jobQueue:
			if !ok {
				return
			}
			cw.processJob(job)
		case <-cw.ctx.Done():
			return
		}
	}
}

// processJob executes a single collection run
func (cw *CollectionWorker) processJob(job *CollectionJob) {
	ctx := job.Context
	if ctx == nil {
		ctx = cw.ctx
	}

	if cw.logger != nil {
		cw.logger.Debug("collection job started", map[string]interface{}{
			"trigger": job.Trigger,
		})
	}

	summary, err := cw.runner.RunOnce(ctx)
	if err != nil {
		if cw.logger != nil {
			cw.logger.Error("collection job failed", map[string]interface{}{
				"trigger": job.Trigger,
				"error":   err.Error(),
			})
		}
		if job.ErrorCh != nil {
			select {
			case job.ErrorCh <- err:
			case <-ctx.Done():
			}
		}
		return
	}

	if job.ResultCh != nil {
		select {
		case job.ResultCh <- summary:
		case <-ctx.Done():
		}
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
