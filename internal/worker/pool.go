// Package worker implements the buffered worker pool pattern for async
// history writes. This decouples HTTP request handling from store writes,
// providing:
// - Backpressure handling via load shedding
// - Batched writes to the history store
// - Graceful shutdown with flush guarantees
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/nbaclutch/clutch-api/internal/history"
	"github.com/nbaclutch/clutch-api/internal/models"
)

// Prometheus metrics
var (
	recordsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clutch_history_records_enqueued_total",
		Help: "Total number of prediction records enqueued for history",
	})

	recordsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clutch_history_records_written_total",
		Help: "Total number of prediction records written to the history store",
	})

	recordsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clutch_history_records_failed_total",
		Help: "Total number of prediction records that failed to persist",
	})

	recordsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clutch_history_records_load_shed_total",
		Help: "Total number of prediction records dropped due to load shedding",
	})

	queueDepthGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clutch_history_queue_depth",
		Help: "Current depth of the history writer queue",
	})

	flushDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clutch_history_flush_duration_seconds",
		Help:    "Duration of batched history store writes",
		Buckets: prometheus.DefBuckets,
	})
)

const flushTimeout = 5 * time.Second

// PoolConfig configures the history writer pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Store         history.Store
	Logger        *zap.Logger
}

// Pool manages workers that drain prediction records into the history store
type Pool struct {
	config   PoolConfig
	jobQueue chan models.PredictionRecord
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new history writer pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 32
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan models.PredictionRecord, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("History writer pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the pool, flushing buffered records first
func (p *Pool) Stop() {
	p.logger.Info("Stopping history writer pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("History writer pool stopped")
}

// Enqueue adds a record to the queue. Returns false immediately when the
// queue is full (load shedding); history is best-effort.
func (p *Pool) Enqueue(record models.PredictionRecord) bool {
	select {
	case p.jobQueue <- record:
		recordsEnqueued.Inc()
		return true
	default:
		recordsLoadShed.Inc()
		return false
	}
}

// QueueDepth returns the number of records waiting to be written
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]models.PredictionRecord, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case record, ok := <-p.jobQueue:
			if !ok {
				p.flush(batch)
				return
			}
			batch = append(batch, record)
			if len(batch) >= p.config.BatchSize {
				p.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				p.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

func (p *Pool) flush(batch []models.PredictionRecord) {
	if len(batch) == 0 {
		return
	}

	// Shutdown may have cancelled the pool context; the flush still gets its
	// own deadline so buffered records are not lost.
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	start := time.Now()
	err := p.config.Store.Append(ctx, batch...)
	flushDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		recordsFailed.Add(float64(len(batch)))
		p.logger.Errorw("Failed to write history batch", "size", len(batch), "error", err)
		return
	}
	recordsWritten.Add(float64(len(batch)))
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			queueDepthGauge.Set(float64(len(p.jobQueue)))
		}
	}
}
