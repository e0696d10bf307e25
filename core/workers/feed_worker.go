// ABOUTME: Feed worker resolves feeds in the background and hands results to async callbacks
// ABOUTME: Provides a bounded worker pool so frames never block on a feed fetch

package workers

import (
	"context"
	"sync"
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
)

// FeedJob represents one feed to resolve
type FeedJob struct {
	URL     string
	Context context.Context

	// Done receives the resolved items. It runs on a worker goroutine.
	Done func(items []domain.ResolvedFeedItem)
}

// FeedWorker manages background feed resolution
type FeedWorker struct {
	resolver   interfaces.FeedResolver
	logger     interfaces.Logger
	jobQueue   chan *FeedJob
	maxWorkers int
	queueSize  int
	submitWait time.Duration
	workers    []*worker
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.RWMutex
	running    bool
}

// worker represents an individual worker goroutine
type worker struct {
	id       int
	jobQueue <-chan *FeedJob
	resolver interfaces.FeedResolver
	logger   interfaces.Logger
	ctx      context.Context
	wg       *sync.WaitGroup
}

// WorkerConfig holds configuration for the feed worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int

	// SubmitTimeout bounds how long SubmitJob waits on a full queue
	SubmitTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers:    4,
		QueueSize:     100,
		SubmitTimeout: 5 * time.Second,
	}
}

// NewFeedWorker creates a new feed worker
func NewFeedWorker(resolver interfaces.FeedResolver, logger interfaces.Logger, config WorkerConfig) *FeedWorker {
	ctx, cancel := context.WithCancel(context.Background())

	def := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = def.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = def.QueueSize
	}
	if config.SubmitTimeout <= 0 {
		config.SubmitTimeout = def.SubmitTimeout
	}

	return &FeedWorker{
		resolver:   resolver,
		logger:     logger,
		jobQueue:   make(chan *FeedJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		queueSize:  config.QueueSize,
		submitWait: config.SubmitTimeout,
		workers:    make([]*worker, 0, config.MaxWorkers),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool
func (fw *FeedWorker) Start() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.running {
		return nil
	}
	if fw.ctx.Err() != nil {
		return ErrWorkerStopped
	}

	for i := 0; i < fw.maxWorkers; i++ {
		w := &worker{
			id:       i,
			jobQueue: fw.jobQueue,
			resolver: fw.resolver,
			logger:   fw.logger,
			ctx:      fw.ctx,
			wg:       &fw.wg,
		}
		fw.workers = append(fw.workers, w)
		fw.wg.Add(1)
		go w.run()
	}

	fw.running = true
	return nil
}

// Stop stops the worker pool. Queued jobs that have not started are dropped.
func (fw *FeedWorker) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.running {
		return nil
	}

	fw.cancel()
	close(fw.jobQueue)
	fw.wg.Wait()

	fw.running = false
	return nil
}

// SubmitJob submits a job to the worker pool
func (fw *FeedWorker) SubmitJob(job *FeedJob) error {
	fw.mu.RLock()
	defer fw.mu.RUnlock()

	if !fw.running {
		return ErrWorkerNotRunning
	}
	if job.Context == nil {
		job.Context = context.Background()
	}

	timer := time.NewTimer(fw.submitWait)
	defer timer.Stop()

	select {
	case fw.jobQueue <- job:
		return nil
	case <-timer.C:
		return ErrQueueFull
	}
}

// Resolve queues url for resolution and calls done with the items when they land
func (fw *FeedWorker) Resolve(ctx context.Context, url string, done func([]domain.ResolvedFeedItem)) error {
	return fw.SubmitJob(&FeedJob{URL: url, Context: ctx, Done: done})
}

// run is the main loop for each worker
func (w *worker) run() {
	defer w.wg.Done()

	for {
		select {
		case job, ok := <-w.jobQueue:
			if !ok {
				return
			}
			w.processJob(job)
		case <-w.ctx.Done():
			return
		}
	}
}

// processJob resolves a single feed
func (w *worker) processJob(job *FeedJob) {
	if job.Context.Err() != nil {
		return
	}

	items := w.resolver.ResolveFeed(job.Context, job.URL)

	// The requester went away while the fetch was in flight
	if job.Context.Err() != nil {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Feed job finished", map[string]interface{}{
			"worker": w.id,
			"url":    job.URL,
			"items":  len(items),
		})
	}
	if job.Done != nil {
		job.Done(items)
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrWorkerStopped    = &WorkerError{Message: "worker pool has been stopped"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
