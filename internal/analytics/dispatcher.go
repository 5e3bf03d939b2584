package analytics

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DispatcherConfig tunes the Dispatcher.
type DispatcherConfig struct {
	// Buffer is the number of events held while recorders catch up.
	// Events arriving at a full buffer are dropped. Default: 64.
	Buffer int

	// RecordTimeout bounds a single Recorder call. Default: 2s.
	RecordTimeout time.Duration
}

// DefaultDispatcherConfig returns the production defaults.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Buffer:        64,
		RecordTimeout: 2 * time.Second,
	}
}

// Dispatcher is a Sink that fans events out to Recorders on a single
// background goroutine. Emit never blocks.
type Dispatcher struct {
	cfg       DispatcherConfig
	recorders []Recorder
	logger    *zap.Logger

	mu     sync.RWMutex
	closed bool
	events chan Event
	done   chan struct{}

	dropped   atomic.Int64
	failed    atomic.Int64
	closeOnce sync.Once
}

var _ Sink = (*Dispatcher)(nil)

// NewDispatcher starts a dispatcher delivering to recorders. Call Close
// to drain and stop it.
func NewDispatcher(logger *zap.Logger, cfg DispatcherConfig, recorders ...Recorder) *Dispatcher {
	def := DefaultDispatcherConfig()
	if cfg.Buffer <= 0 {
		cfg.Buffer = def.Buffer
	}
	if cfg.RecordTimeout <= 0 {
		cfg.RecordTimeout = def.RecordTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher{
		cfg:       cfg,
		recorders: recorders,
		logger:    logger.Named("analytics"),
		events:    make(chan Event, cfg.Buffer),
		done:      make(chan struct{}),
	}
	go d.run()
	return d
}

// Emit queues e for delivery. It drops the event when the dispatcher is
// closed or its buffer is full.
func (d *Dispatcher) Emit(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.dropped.Add(1)
		return
	}
	select {
	case d.events <- e:
	default:
		d.dropped.Add(1)
		d.logger.Warn("event dropped, buffer full",
			zap.String("event", string(e.Name)),
			zap.Int("buffer", d.cfg.Buffer))
	}
}

// Dropped returns how many events were discarded without delivery.
func (d *Dispatcher) Dropped() int64 { return d.dropped.Load() }

// Failed returns how many recorder calls returned an error.
func (d *Dispatcher) Failed() int64 { return d.failed.Load() }

// Close stops accepting events and waits for queued ones to be delivered
// or for ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.events)
		d.mu.Unlock()
	})

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain analytics: %w", ctx.Err())
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.events {
		for _, r := range d.recorders {
			d.deliver(r, e)
		}
	}
}

func (d *Dispatcher) deliver(r Recorder, e Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.RecordTimeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			d.failed.Add(1)
			d.logger.Error("recorder panicked",
				zap.String("recorder", r.Name()),
				zap.String("event", string(e.Name)),
				zap.Any("panic", p))
		}
	}()

	if err := r.Record(ctx, e); err != nil {
		d.failed.Add(1)
		d.logger.Warn("record event failed",
			zap.String("recorder", r.Name()),
			zap.String("event", string(e.Name)),
			zap.Error(err))
	}
}
