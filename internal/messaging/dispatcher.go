package messaging

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/events"
	"github.com/feral-file/ff-sales-engine/internal/logger"
)

// Dispatcher delivers events in the background so callers never wait on the broker
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch queues an event for delivery
	Dispatch(ctx context.Context, event *events.ContractEvent)
	// Stop waits for queued events to be delivered
	Stop()
}

// DispatcherConfig holds the configuration of the event dispatcher
type DispatcherConfig struct {
	WorkerPoolSize  int
	QueueSize       int
	MaxRetryElapsed time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

type dispatcher struct {
	config    DispatcherConfig
	publisher Publisher
	pool      pond.Pool
	stopOnce  sync.Once
}

// NewDispatcher creates a dispatcher publishing through the given publisher
func NewDispatcher(cfg DispatcherConfig, publisher Publisher) Dispatcher {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.MaxRetryElapsed <= 0 {
		cfg.MaxRetryElapsed = time.Minute
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 10 * time.Second
	}

	return &dispatcher{
		config:    cfg,
		publisher: publisher,
		pool: pond.NewPool(
			cfg.WorkerPoolSize,
			pond.WithQueueSize(cfg.QueueSize),
		),
	}
}

// Dispatch queues an event. It only blocks while the queue is full.
func (d *dispatcher) Dispatch(ctx context.Context, event *events.ContractEvent) {
	if event == nil {
		return
	}
	if d.pool.Stopped() {
		logger.WarnCtx(ctx, "Dispatcher stopped, dropping sales event",
			zap.String("eventID", event.EventID),
			zap.String("eventType", event.EventType),
		)
		return
	}

	// Delivery outlives the request that triggered it
	deliveryCtx := context.WithoutCancel(ctx)

	d.pool.Submit(func() {
		d.deliver(deliveryCtx, event)
	})
}

func (d *dispatcher) deliver(ctx context.Context, event *events.ContractEvent) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.config.InitialInterval
	b.MaxInterval = d.config.MaxInterval
	b.MaxElapsedTime = d.config.MaxRetryElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.1

	operation := func() error {
		select {
		case <-d.publisher.CloseChan():
			return backoff.Permanent(errors.New("publisher closed"))
		default:
		}
		return d.publisher.PublishEvent(ctx, event)
	}

	notifyOnError := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Failed to publish sales event, retrying",
			zap.String("eventID", event.EventID),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Giving up on sales event"),
			zap.String("eventID", event.EventID),
			zap.String("eventType", event.EventType),
		)
		return
	}

	logger.DebugCtx(ctx, "Published sales event",
		zap.String("eventID", event.EventID),
		zap.String("eventType", event.EventType),
	)
}

// Stop waits for queued events and stops the worker pool
func (d *dispatcher) Stop() {
	d.stopOnce.Do(func() {
		logger.Info("Shutting down event dispatcher",
			zap.Uint64("submitted", d.pool.SubmittedTasks()),
			zap.Uint64("waiting", d.pool.WaitingTasks()),
		)

		d.pool.StopAndWait()

		logger.Info("Event dispatcher shutdown complete",
			zap.Uint64("total_completed", d.pool.CompletedTasks()),
		)
	})
}

type noopDispatcher struct{}

// NewNoopDispatcher returns a dispatcher that discards every event, for deployments without a broker
func NewNoopDispatcher() Dispatcher {
	return noopDispatcher{}
}

func (noopDispatcher) Dispatch(ctx context.Context, event *events.ContractEvent) {
	if event != nil {
		logger.DebugCtx(ctx, "Event publishing disabled, skipping", zap.String("eventType", event.EventType))
	}
}

func (noopDispatcher) Stop() {}
