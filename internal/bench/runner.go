// Package bench times the plain quicksort and merge sort against each other
// over synthetic fish catalogs.
package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/awmpietro/sortlab/internal/catalog"
	"github.com/awmpietro/sortlab/internal/sorttrace"
)

const DefaultRepetitions = 5

var ErrInvalidArgument = errors.New("invalid argument")

type Result struct {
	Name       string              `json:"name"`
	Algorithm  sorttrace.Algorithm `json:"algorithm"`
	Complexity string              `json:"complexity"`
	AverageMs  float64             `json:"average_ms"`
	MinMs      float64             `json:"min_ms"`
	MaxMs      float64             `json:"max_ms"`
	N          int                 `json:"n"`
	Runs       int                 `json:"runs"`
	Winner     bool                `json:"winner"`
}

type contender struct {
	alg        sorttrace.Algorithm
	complexity string
	sort       func([]catalog.Fish) []catalog.Fish
}

var contenders = []contender{
	{
		alg:        sorttrace.QuickSort,
		complexity: "Best: O(n log n) | Average: O(n log n) | Worst: O(n²)",
		sort: func(in []catalog.Fish) []catalog.Fish {
			return QuickSort(in, sorttrace.CompareRecords)
		},
	},
	{
		alg:        sorttrace.MergeSort,
		complexity: "Best/Average/Worst: O(n log n)",
		sort: func(in []catalog.Fish) []catalog.Fish {
			return MergeSort(in, sorttrace.CompareRecords)
		},
	},
}

// Runner is safe for concurrent use. Calls to Run are serialized so that no
// two timing loops ever share the CPU.
type Runner struct {
	now    func() time.Time
	logger *zap.Logger
	slot   chan struct{}
}

type Option func(*Runner)

func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{now: time.Now, logger: zap.NewNop(), slot: make(chan struct{}, 1)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run times every contender repetitions times, one after the other, each run
// on its own copy of dataset. With three or more repetitions the first run is
// treated as warm-up and discarded. Results are ranked by average time and
// the fastest is flagged as Winner. A call waits for any Run in progress,
// or returns ctx.Err() if ctx ends first.
func (r *Runner) Run(ctx context.Context, dataset []catalog.Fish, repetitions int) ([]Result, error) {
	if repetitions < 1 {
		return nil, fmt.Errorf("%w: repetitions must be >= 1 (got %d)", ErrInvalidArgument, repetitions)
	}

	select {
	case r.slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-r.slot }()

	results := make([]Result, 0, len(contenders))
	for _, c := range contenders {
		times, err := r.timeIt(ctx, c.sort, dataset, repetitions)
		if err != nil {
			return nil, err
		}
		res := summarize(times)
		res.Name = c.alg.Title()
		res.Algorithm = c.alg
		res.Complexity = c.complexity
		res.N = len(dataset)
		results = append(results, res)

		r.logger.Debug("benchmark contender finished",
			zap.String("algorithm", string(c.alg)),
			zap.Int("n", res.N),
			zap.Float64("avg_ms", res.AverageMs),
			zap.Float64("min_ms", res.MinMs),
			zap.Float64("max_ms", res.MaxMs),
		)
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case a.AverageMs < b.AverageMs:
			return -1
		case a.AverageMs > b.AverageMs:
			return 1
		}
		return 0
	})
	if len(results) > 0 {
		results[0].Winner = true
	}
	return results, nil
}

func (r *Runner) timeIt(ctx context.Context, fn func([]catalog.Fish) []catalog.Fish, input []catalog.Fish, runs int) ([]time.Duration, error) {
	times := make([]time.Duration, 0, runs)
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		arrCopy := slices.Clone(input)
		t0 := r.now()
		fn(arrCopy)
		times = append(times, r.now().Sub(t0))
	}

	if runs >= 3 {
		times = times[1:]
	}
	return times, nil
}

func summarize(times []time.Duration) Result {
	minD, maxD := times[0], times[0]
	var total time.Duration
	for _, d := range times {
		total += d
		minD = min(minD, d)
		maxD = max(maxD, d)
	}
	lo, hi := ms(minD), ms(maxD)
	// clamp float rounding so min <= avg <= max always holds
	avg := min(max(ms(total)/float64(len(times)), lo), hi)
	return Result{
		AverageMs: avg,
		MinMs:     lo,
		MaxMs:     hi,
		Runs:      len(times),
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// RunBenchmark times both sorts over Cycle(datasetSize).
func RunBenchmark(datasetSize, repetitions int) ([]Result, error) {
	if datasetSize < 0 {
		return nil, fmt.Errorf("%w: dataset size must be >= 0 (got %d)", ErrInvalidArgument, datasetSize)
	}
	dataset, err := catalog.Cycle(datasetSize)
	if err != nil {
		return nil, err
	}
	return NewRunner().Run(context.Background(), dataset, repetitions)
}
