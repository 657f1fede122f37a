package sorttrace

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type Observer interface {
	ObserveTrace(alg Algorithm, size, steps int, duration time.Duration)
}

type LatencyLogger struct {
	logger *zap.Logger
}

func NewLatencyLogger(logger *zap.Logger) *LatencyLogger {
	return &LatencyLogger{logger: logger}
}

func (l *LatencyLogger) ObserveTrace(alg Algorithm, size, steps int, duration time.Duration) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug("trace generated",
		zap.String("algorithm", string(alg)),
		zap.Int("size", size),
		zap.Int("steps", steps),
		zap.Float64("duration_ms", float64(duration.Microseconds())/1000.0),
	)
}

// MultiObserver fans one observation out to every non-nil observer.
type MultiObserver []Observer

func (m MultiObserver) ObserveTrace(alg Algorithm, size, steps int, duration time.Duration) {
	for _, o := range m {
		if o != nil {
			o.ObserveTrace(alg, size, steps, duration)
		}
	}
}

// AsyncObserver hands observations to next on a single goroutine. When the
// buffer is full, observations are dropped and counted.
type AsyncObserver struct {
	next    Observer
	events  chan traceEvent
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type traceEvent struct {
	alg      Algorithm
	size     int
	steps    int
	duration time.Duration
}

func NewAsyncObserver(next Observer, buffer int) *AsyncObserver {
	if buffer <= 0 {
		buffer = 1
	}

	o := &AsyncObserver{
		next:   next,
		events: make(chan traceEvent, buffer),
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for ev := range o.events {
			if o.next == nil {
				continue
			}
			o.next.ObserveTrace(ev.alg, ev.size, ev.steps, ev.duration)
		}
	}()

	return o
}

func (o *AsyncObserver) ObserveTrace(alg Algorithm, size, steps int, duration time.Duration) {
	if o == nil {
		return
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		o.dropped.Add(1)
		return
	}
	select {
	case o.events <- traceEvent{alg: alg, size: size, steps: steps, duration: duration}:
	default:
		o.dropped.Add(1)
	}
}

func (o *AsyncObserver) Dropped() uint64 {
	if o == nil {
		return 0
	}
	return o.dropped.Load()
}

// Close flushes pending observations and stops the worker. Safe to call more
// than once.
func (o *AsyncObserver) Close() {
	if o == nil {
		return
	}
	o.once.Do(func() {
		o.mu.Lock()
		o.closed = true
		close(o.events)
		o.mu.Unlock()
		o.wg.Wait()
	})
}
