package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/awmpietro/sortlab/internal/bench"
	"github.com/awmpietro/sortlab/internal/catalog"
	"github.com/awmpietro/sortlab/internal/sorttrace"
	"github.com/awmpietro/sortlab/internal/sorttrace/cache"
)

type fakeRecordTracer struct {
	calls int
	got   []sorttrace.Record
	err   error
}

func (f *fakeRecordTracer) Generate(items []sorttrace.Record, alg sorttrace.Algorithm) (*sorttrace.Trace[sorttrace.Record], error) {
	f.calls++
	f.got = items
	if f.err != nil {
		return nil, f.err
	}
	return &sorttrace.Trace[sorttrace.Record]{Algorithm: alg}, nil
}

type fakeBench struct {
	size int
	reps int
	err  error
}

func (f *fakeBench) Run(ctx context.Context, dataset []catalog.Fish, repetitions int) ([]bench.Result, error) {
	f.size = len(dataset)
	f.reps = repetitions
	if f.err != nil {
		return nil, f.err
	}
	return []bench.Result{{Name: "Quick Sort", Winner: true}, {Name: "Merge Sort"}}, nil
}

type fakeCache struct {
	calls int
}

func (c *fakeCache) GetOrCompute(key string, fn func() (*TraceResult, error)) (*TraceResult, error) {
	c.calls++
	return fn()
}

type fakeMetrics struct {
	traceErrors []string
	benchmarks  []string
}

func (m *fakeMetrics) ObserveTraceError(alg string) { m.traceErrors = append(m.traceErrors, alg) }
func (m *fakeMetrics) ObserveBenchmark(status string) { m.benchmarks = append(m.benchmarks, status) }

func newTestService(opts ...Option) (*Service, *fakeRecordTracer, *fakeBench) {
	rec := &fakeRecordTracer{}
	b := &fakeBench{}
	s := NewService(rec, sorttrace.NewNumberGenerator(), b, &fakeCache{}, opts...)
	return s, rec, b
}

func TestService_Trace_DefaultsToShowcase(t *testing.T) {
	s, rec, _ := newTestService()

	res, err := s.Trace(TraceRequest{Algorithm: "quicksort"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Dataset != DatasetRecords || res.Records == nil || res.Numbers != nil {
		t.Fatalf("unexpected result: %#v", res)
	}
	if len(rec.got) != len(catalog.Showcase()) {
		t.Fatalf("expected showcase input, got %d records", len(rec.got))
	}
}

func TestService_Trace_AppliesFilter(t *testing.T) {
	s, rec, _ := newTestService()

	_, err := s.Trace(TraceRequest{
		Algorithm: "merge",
		Records: []sorttrace.Record{
			{Name: "A", Price: 10}, {Name: "B", Price: 30}, {Name: "C", Price: 50},
		},
		Filter: "price >= 20",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.got) != 2 || rec.got[0].Name != "B" || rec.got[1].Name != "C" {
		t.Fatalf("unexpected filtered input: %#v", rec.got)
	}
}

func TestService_Trace_BarsUseRealGenerator(t *testing.T) {
	s, _, _ := newTestService()

	res, err := s.Trace(TraceRequest{Dataset: DatasetBars, Algorithm: "bubble"})
	if err != nil {
		t.Fatal(err)
	}
	final := res.Numbers.Last().Array
	for i := 1; i < len(final); i++ {
		if final[i-1] > final[i] {
			t.Fatalf("expected sorted output, got %v", final)
		}
	}
	if len(final) != len(catalog.Bars()) {
		t.Fatalf("expected bar dataset, got %v", final)
	}
}

func TestService_Trace_InvalidArguments(t *testing.T) {
	m := &fakeMetrics{}
	s, _, _ := newTestService(WithLimits(3, 10), WithMetrics(m))

	cases := []TraceRequest{
		{Algorithm: "heapsort"},
		{Algorithm: "quick", Dataset: "trees"},
		{Algorithm: "quick", Dataset: DatasetBars, Filter: "price > 1"},
		{Algorithm: "quick", Dataset: DatasetRecords, Numbers: []float64{1}},
		{Algorithm: "quick", Filter: "len(name) > 1"},
		{Algorithm: "quick", Numbers: []float64{4, 3, 2, 1}},
		{Algorithm: "quick", Records: []sorttrace.Record{{Name: "A", Price: 1}}, Numbers: []float64{1}},
	}
	for _, req := range cases {
		_, err := s.Trace(req)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected invalid argument for %#v, got %v", req, err)
		}
	}
	if len(m.traceErrors) != len(cases) || m.traceErrors[0] != "unknown" {
		t.Fatalf("unexpected trace error observations: %v", m.traceErrors)
	}
}

func TestService_Trace_BubbleSortOnRecordsIsInvalid(t *testing.T) {
	s := NewService(sorttrace.NewRecordGenerator(), sorttrace.NewNumberGenerator(), &fakeBench{}, nil)

	_, err := s.Trace(TraceRequest{Algorithm: "bubblesort"})
	if !errors.Is(err, ErrInvalidArgument) || !errors.Is(err, sorttrace.ErrUnsupportedAlgorithm) {
		t.Fatalf("expected unsupported algorithm as invalid argument, got %v", err)
	}
}

func TestService_Trace_BubblesUpGeneratorErrors(t *testing.T) {
	s, rec, _ := newTestService()
	rec.err = fmt.Errorf("generator fail")

	_, err := s.Trace(TraceRequest{Algorithm: "quick"})
	if err == nil || errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected plain error, got %v", err)
	}
}

func TestService_Trace_CachesByResolvedInput(t *testing.T) {
	rec := &fakeRecordTracer{}
	s := NewService(rec, sorttrace.NewNumberGenerator(), &fakeBench{}, cache.NewInMemory[*TraceResult](16))

	for i := 0; i < 3; i++ {
		if _, err := s.Trace(TraceRequest{Algorithm: "quick"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.Trace(TraceRequest{Algorithm: "quicksort", Records: catalog.Showcase()}); err != nil {
		t.Fatal(err)
	}
	if rec.calls != 1 {
		t.Fatalf("expected one generation, got %d", rec.calls)
	}

	if _, err := s.Trace(TraceRequest{Algorithm: "merge"}); err != nil {
		t.Fatal(err)
	}
	if rec.calls != 2 {
		t.Fatalf("expected a new generation for another algorithm, got %d", rec.calls)
	}
}

func TestService_DOT(t *testing.T) {
	s := NewService(sorttrace.NewRecordGenerator(), sorttrace.NewNumberGenerator(), &fakeBench{}, nil)

	dot, err := s.DOT(TraceRequest{Dataset: DatasetBars, Algorithm: "quick"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot, "digraph") || !strings.Contains(dot, "c0") {
		t.Fatalf("unexpected dot output:\n%s", dot)
	}
}

func TestService_Benchmark(t *testing.T) {
	m := &fakeMetrics{}
	s, _, b := newTestService(WithRepetitions(7), WithMetrics(m))

	results, err := s.Benchmark(context.Background(), 250, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if b.size != 250 || b.reps != 7 {
		t.Fatalf("expected size 250 and default reps 7, got %d/%d", b.size, b.reps)
	}
	if len(m.benchmarks) != 1 || m.benchmarks[0] != "ok" {
		t.Fatalf("unexpected benchmark observations: %v", m.benchmarks)
	}
}

func TestService_Benchmark_InvalidArguments(t *testing.T) {
	m := &fakeMetrics{}
	s, _, b := newTestService(WithLimits(10, 1000), WithMetrics(m))

	if _, err := s.Benchmark(context.Background(), 10, 51); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected repetitions above the default cap to be rejected, got %v", err)
	}
	if b.size != 0 {
		t.Fatalf("expected runner not to be called, got size %d", b.size)
	}

	for _, size := range []int{-1, 1001} {
		if _, err := s.Benchmark(context.Background(), size, 3); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected invalid argument for size %d, got %v", size, err)
		}
	}

	b.err = fmt.Errorf("%w: repetitions must be >= 1", bench.ErrInvalidArgument)
	if _, err := s.Benchmark(context.Background(), 10, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected runner argument errors to map to invalid argument, got %v", err)
	}
	if len(m.benchmarks) != 4 || m.benchmarks[3] != "error" {
		t.Fatalf("unexpected benchmark observations: %v", m.benchmarks)
	}
}

func TestService_Benchmark_RepetitionCap(t *testing.T) {
	s, _, b := newTestService(WithMaxRepetitions(8))

	if _, err := s.Benchmark(context.Background(), 10, 9); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected 9 repetitions to exceed the cap, got %v", err)
	}
	if _, err := s.Benchmark(context.Background(), 10, 8); err != nil {
		t.Fatalf("expected repetitions at the cap to run, got %v", err)
	}
	if b.reps != 8 {
		t.Fatalf("expected runner to receive 8 repetitions, got %d", b.reps)
	}
}

func TestService_WithCatalog(t *testing.T) {
	custom := []catalog.Fish{{Name: "Pacu", Price: 20}, {Name: "Tambaqui", Price: 25}}
	s, rec, _ := newTestService(WithCatalog(custom))

	if _, err := s.Trace(TraceRequest{Algorithm: "quick"}); err != nil {
		t.Fatal(err)
	}
	if len(rec.got) != 2 || rec.got[0].Name != "Pacu" {
		t.Fatalf("expected custom catalog as default, got %#v", rec.got)
	}
}
