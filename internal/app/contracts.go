package app

import (
	"context"

	"github.com/awmpietro/sortlab/internal/bench"
)

// SortService is what the transports depend on.
type SortService interface {
	Trace(req TraceRequest) (*TraceResult, error)
	DOT(req TraceRequest) (string, error)
	Benchmark(ctx context.Context, size, repetitions int) ([]bench.Result, error)
}

// Metrics receives failures the generator observer never sees.
type Metrics interface {
	ObserveTraceError(alg string)
	ObserveBenchmark(status string)
}
