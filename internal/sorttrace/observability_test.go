package sorttrace

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingObserver struct {
	mu      sync.Mutex
	records []Algorithm
}

func (s *countingObserver) ObserveTrace(alg Algorithm, size, steps int, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, alg)
}

func (s *countingObserver) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func TestAsyncObserver_DeliversEventsOnClose(t *testing.T) {
	spy := &countingObserver{}
	async := NewAsyncObserver(spy, 8)

	async.ObserveTrace(QuickSort, 10, 40, time.Millisecond)
	async.ObserveTrace(MergeSort, 10, 60, 2*time.Millisecond)
	async.Close()

	if got := spy.Count(); got != 2 {
		t.Fatalf("expected 2 delivered events, got %d", got)
	}
}

func TestAsyncObserver_DropsWhenBufferIsFull(t *testing.T) {
	spy := &countingObserver{}
	async := NewAsyncObserver(spy, 1)

	for i := 0; i < 1000; i++ {
		async.ObserveTrace(BubbleSort, 1, 2, time.Microsecond)
	}
	async.Close()

	if async.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0")
	}
}

func TestAsyncObserver_ObserveAfterCloseIsDropped(t *testing.T) {
	async := NewAsyncObserver(&countingObserver{}, 4)
	async.Close()
	async.Close()

	async.ObserveTrace(QuickSort, 1, 2, time.Microsecond)
	if async.Dropped() != 1 {
		t.Fatalf("expected 1 dropped event, got %d", async.Dropped())
	}
}

func TestAsyncObserver_CloseDuringConcurrentObserveDoesNotPanic(t *testing.T) {
	spy := &countingObserver{}
	async := NewAsyncObserver(spy, 32)

	const workers = 8
	const perWorker = 200
	var wg sync.WaitGroup
	var panics atomic.Int32

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if recover() != nil {
					panics.Add(1)
				}
			}()
			for j := 0; j < perWorker; j++ {
				async.ObserveTrace(QuickSort, 1, 2, time.Microsecond)
			}
		}()
	}

	time.Sleep(1 * time.Millisecond)
	async.Close()
	wg.Wait()

	if panics.Load() != 0 {
		t.Fatalf("expected no panics, got %d", panics.Load())
	}
}

func TestLatencyLogger_WritesStructuredEntry(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLatencyLogger(zap.New(core))

	l.ObserveTrace(MergeSort, 8, 50, 1500*time.Microsecond)

	entries := logs.FilterMessage("trace generated").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["algorithm"] != "mergesort" {
		t.Fatalf("unexpected algorithm field: %#v", fields["algorithm"])
	}
	if fields["steps"] != int64(50) {
		t.Fatalf("unexpected steps field: %#v", fields["steps"])
	}
	if fields["duration_ms"] != 1.5 {
		t.Fatalf("unexpected duration field: %#v", fields["duration_ms"])
	}
}

func TestMultiObserver_SkipsNil(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	m := MultiObserver{a, nil, b}

	m.ObserveTrace(QuickSort, 1, 2, time.Microsecond)

	if a.Count() != 1 || b.Count() != 1 {
		t.Fatalf("expected both observers to be called, got %d and %d", a.Count(), b.Count())
	}
}
