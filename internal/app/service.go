package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/awmpietro/sortlab/internal/bench"
	"github.com/awmpietro/sortlab/internal/catalog"
	"github.com/awmpietro/sortlab/internal/filter"
	"github.com/awmpietro/sortlab/internal/sorttrace"
)

var ErrInvalidArgument = errors.New("invalid argument")

type Dataset string

const (
	DatasetRecords Dataset = "records"
	DatasetBars    Dataset = "bars"
)

type TraceRequest struct {
	Dataset   Dataset
	Algorithm string
	Records   []sorttrace.Record
	Numbers   []float64
	Filter    string
}

// TraceResult carries exactly one of Records or Numbers, matching Dataset.
type TraceResult struct {
	Dataset Dataset
	Records *sorttrace.Trace[sorttrace.Record]
	Numbers *sorttrace.Trace[float64]
}

func (r *TraceResult) DOT() (string, error) {
	switch {
	case r == nil:
		return "", fmt.Errorf("trace result is nil")
	case r.Records != nil:
		return sorttrace.ToDOT(r.Records)
	default:
		return sorttrace.ToDOT(r.Numbers)
	}
}

type RecordTracer interface {
	Generate(items []sorttrace.Record, alg sorttrace.Algorithm) (*sorttrace.Trace[sorttrace.Record], error)
}

type NumberTracer interface {
	Generate(values []float64, alg sorttrace.Algorithm) (*sorttrace.Trace[float64], error)
}

type Benchmarker interface {
	Run(ctx context.Context, dataset []catalog.Fish, repetitions int) ([]bench.Result, error)
}

type Cache interface {
	GetOrCompute(key string, fn func() (*TraceResult, error)) (*TraceResult, error)
}

type Service struct {
	records RecordTracer
	numbers NumberTracer
	bench   Benchmarker
	cache   Cache
	metrics Metrics

	catalog     []catalog.Fish
	showcase    []catalog.Fish
	bars        []float64
	maxTrace    int
	maxBench    int
	maxReps     int
	repetitions int
}

type Option func(*Service)

// WithCatalog replaces the built-in catalog as benchmark source and as the
// default record dataset.
func WithCatalog(fish []catalog.Fish) Option {
	return func(s *Service) {
		if len(fish) == 0 {
			return
		}
		s.catalog = slices.Clone(fish)
		s.showcase = s.catalog
	}
}

func WithLimits(maxTraceSize, maxBenchSize int) Option {
	return func(s *Service) {
		s.maxTrace = maxTraceSize
		s.maxBench = maxBenchSize
	}
}

// WithMaxRepetitions caps the repetitions a single benchmark may request.
func WithMaxRepetitions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxReps = n
		}
	}
}

func WithRepetitions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.repetitions = n
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(records RecordTracer, numbers NumberTracer, runner Benchmarker, cache Cache, opts ...Option) *Service {
	s := &Service{
		records:     records,
		numbers:     numbers,
		bench:       runner,
		cache:       cache,
		catalog:     catalog.Base(),
		showcase:    catalog.Showcase(),
		bars:        catalog.Bars(),
		maxTrace:    500,
		maxBench:    100_000,
		maxReps:     50,
		repetitions: bench.DefaultRepetitions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Trace resolves the request's dataset, applies the filter and generates
// (or reuses) the trace. Cached traces are shared and must not be mutated.
func (s *Service) Trace(req TraceRequest) (*TraceResult, error) {
	res, alg, err := s.trace(req)
	if err != nil && s.metrics != nil {
		s.metrics.ObserveTraceError(alg)
	}
	return res, err
}

func (s *Service) trace(req TraceRequest) (*TraceResult, string, error) {
	alg, err := sorttrace.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, "unknown", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	dataset, err := resolveDataset(req)
	if err != nil {
		return nil, string(alg), err
	}

	switch dataset {
	case DatasetRecords:
		items, err := s.recordInput(req)
		if err != nil {
			return nil, string(alg), err
		}
		res, err := s.cached(dataset, alg, items, func() (*TraceResult, error) {
			tr, err := s.records.Generate(items, alg)
			if err != nil {
				return nil, invalidIfUnsupported(err)
			}
			return &TraceResult{Dataset: dataset, Records: tr}, nil
		})
		return res, string(alg), err
	default:
		values := req.Numbers
		if len(values) == 0 {
			values = s.bars
		}
		if err := s.checkTraceSize(len(values)); err != nil {
			return nil, string(alg), err
		}
		res, err := s.cached(dataset, alg, values, func() (*TraceResult, error) {
			tr, err := s.numbers.Generate(values, alg)
			if err != nil {
				return nil, invalidIfUnsupported(err)
			}
			return &TraceResult{Dataset: dataset, Numbers: tr}, nil
		})
		return res, string(alg), err
	}
}

func (s *Service) DOT(req TraceRequest) (string, error) {
	res, err := s.Trace(req)
	if err != nil {
		return "", err
	}
	return res.DOT()
}

// Benchmark times the plain sorts over size records cycled from the catalog.
// repetitions <= 0 uses the configured default.
func (s *Service) Benchmark(ctx context.Context, size, repetitions int) ([]bench.Result, error) {
	results, err := s.benchmark(ctx, size, repetitions)
	if s.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		s.metrics.ObserveBenchmark(status)
	}
	return results, err
}

func (s *Service) benchmark(ctx context.Context, size, repetitions int) ([]bench.Result, error) {
	if size < 0 || size > s.maxBench {
		return nil, fmt.Errorf("%w: benchmark size must be between 0 and %d (got %d)", ErrInvalidArgument, s.maxBench, size)
	}
	if repetitions <= 0 {
		repetitions = s.repetitions
	}
	if repetitions > s.maxReps {
		return nil, fmt.Errorf("%w: repetitions must be at most %d (got %d)", ErrInvalidArgument, s.maxReps, repetitions)
	}

	dataset, err := catalog.CycleFrom(s.catalog, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	results, err := s.bench.Run(ctx, dataset, repetitions)
	if errors.Is(err, bench.ErrInvalidArgument) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return results, err
}

func invalidIfUnsupported(err error) error {
	if errors.Is(err, sorttrace.ErrUnsupportedAlgorithm) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return err
}

func resolveDataset(req TraceRequest) (Dataset, error) {
	switch req.Dataset {
	case "":
		if len(req.Numbers) > 0 && len(req.Records) > 0 {
			return "", fmt.Errorf("%w: records and numbers are mutually exclusive", ErrInvalidArgument)
		}
		if len(req.Numbers) > 0 {
			return DatasetBars, nil
		}
		return DatasetRecords, nil
	case DatasetRecords:
		if len(req.Numbers) > 0 {
			return "", fmt.Errorf("%w: numbers are not accepted for the records dataset", ErrInvalidArgument)
		}
		return DatasetRecords, nil
	case DatasetBars:
		if len(req.Records) > 0 {
			return "", fmt.Errorf("%w: records are not accepted for the bars dataset", ErrInvalidArgument)
		}
		if strings.TrimSpace(req.Filter) != "" {
			return "", fmt.Errorf("%w: filter only applies to the records dataset", ErrInvalidArgument)
		}
		return DatasetBars, nil
	default:
		return "", fmt.Errorf("%w: unknown dataset %q (supported: records, bars)", ErrInvalidArgument, req.Dataset)
	}
}

func (s *Service) recordInput(req TraceRequest) ([]sorttrace.Record, error) {
	items := req.Records
	if len(items) == 0 {
		items = s.showcase
	}

	compiled, err := filter.Compile(req.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	items, err = filter.Apply(compiled, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if err := s.checkTraceSize(len(items)); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) checkTraceSize(n int) error {
	if s.maxTrace > 0 && n > s.maxTrace {
		return fmt.Errorf("%w: trace input has %d elements (max %d)", ErrInvalidArgument, n, s.maxTrace)
	}
	return nil
}

func (s *Service) cached(dataset Dataset, alg sorttrace.Algorithm, input any, fn func() (*TraceResult, error)) (*TraceResult, error) {
	if s.cache == nil {
		return fn()
	}
	key, err := cacheKey(dataset, alg, input)
	if err != nil {
		return nil, err
	}
	return s.cache.GetOrCompute(key, fn)
}

// cacheKey is the canonical JSON of the resolved input; generation is
// deterministic so equal keys always produce equal traces.
func cacheKey(dataset Dataset, alg sorttrace.Algorithm, input any) (string, error) {
	b, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return string(dataset) + "|" + string(alg) + "|" + string(b), nil
}
