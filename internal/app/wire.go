package app

import (
	"go.uber.org/zap"

	"github.com/awmpietro/sortlab/internal/bench"
	"github.com/awmpietro/sortlab/internal/catalog"
	"github.com/awmpietro/sortlab/internal/config"
	"github.com/awmpietro/sortlab/internal/sorttrace"
	"github.com/awmpietro/sortlab/internal/sorttrace/cache"
)

// Build wires the default generators, benchmark runner and trace cache from
// cfg. observer and metrics may be nil.
func Build(cfg config.Runtime, logger *zap.Logger, observer sorttrace.Observer, metrics Metrics) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var genOpts []sorttrace.Option
	if observer != nil {
		genOpts = append(genOpts, sorttrace.WithObserver(observer))
	}

	opts := []Option{
		WithLimits(cfg.MaxTraceSize, cfg.MaxBenchSize),
		WithRepetitions(cfg.BenchRepetitions),
		WithMaxRepetitions(cfg.MaxRepetitions),
	}
	if metrics != nil {
		opts = append(opts, WithMetrics(metrics))
	}
	if cfg.CatalogFile != "" {
		fish, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		logger.Info("custom catalog loaded", zap.String("path", cfg.CatalogFile), zap.Int("fish", len(fish)))
		opts = append(opts, WithCatalog(fish))
	}

	return NewService(
		sorttrace.NewRecordGenerator(genOpts...),
		sorttrace.NewNumberGenerator(genOpts...),
		bench.NewRunner(bench.WithLogger(logger)),
		cache.NewInMemory[*TraceResult](cfg.CacheMaxItems),
		opts...,
	), nil
}
