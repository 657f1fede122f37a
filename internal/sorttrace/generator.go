package sorttrace

import (
	"fmt"
	"slices"
	"time"
)

type settings struct {
	algorithms []Algorithm
	observer   Observer
}

type Option func(*settings)

// WithAlgorithms restricts the selectors Generate accepts. Selectors that
// name no implemented sort are dropped.
func WithAlgorithms(algs ...Algorithm) Option {
	return func(s *settings) {
		s.algorithms = slices.DeleteFunc(slices.Clone(algs), func(a Algorithm) bool {
			return !a.implemented()
		})
	}
}

func WithObserver(observer Observer) Option {
	return func(s *settings) {
		s.observer = observer
	}
}

// Generator runs a sort to completion over a private copy of its input and
// records every decision as a Step.
type Generator[T any] struct {
	compare  func(a, b T) int
	describe func(T) string
	settings settings
}

func NewGenerator[T any](compare func(a, b T) int, describe func(T) string, opts ...Option) *Generator[T] {
	g := &Generator[T]{
		compare:  compare,
		describe: describe,
		settings: settings{algorithms: []Algorithm{QuickSort, MergeSort, BubbleSort}},
	}
	for _, opt := range opts {
		opt(&g.settings)
	}
	return g
}

func (g *Generator[T]) Supports(alg Algorithm) bool {
	return slices.Contains(g.settings.algorithms, alg)
}

func (g *Generator[T]) Algorithms() []Algorithm {
	return slices.Clone(g.settings.algorithms)
}

// Generate never mutates items. Inputs of length 0 or 1 produce a two-step
// trace ending in KindNothingToDo.
func (g *Generator[T]) Generate(items []T, alg Algorithm) (*Trace[T], error) {
	if !alg.implemented() || !g.Supports(alg) {
		return nil, &UnsupportedAlgorithmError{Algorithm: alg, Supported: g.Algorithms()}
	}

	began := time.Now()
	r := newRecorder(items, g.describe)
	n := len(items)

	r.emit(Step[T]{Kind: KindStart, Action: startAction(alg)})

	if n <= 1 {
		r.emit(Step[T]{
			Kind:   KindNothingToDo,
			Sorted: allIndices(n),
			Action: fmt.Sprintf("Nothing to sort: %d element(s) already in order", n),
		})
	} else {
		switch alg {
		case QuickSort:
			g.quickSort(r, 0, n-1, -1)
		case MergeSort:
			g.mergeSort(r, 0, n-1, -1)
		case BubbleSort:
			g.bubbleSort(r)
		}
		r.emit(Step[T]{
			Kind:   KindDone,
			Sorted: allIndices(n),
			Action: fmt.Sprintf("%s complete!", alg.Title()),
		})
	}

	tr := r.finish(alg)
	if g.settings.observer != nil {
		g.settings.observer.ObserveTrace(alg, n, len(tr.Steps), time.Since(began))
	}
	return tr, nil
}

func startAction(alg Algorithm) string {
	if alg == BubbleSort {
		return "Starting Bubble Sort: compares adjacent elements"
	}
	return "Starting " + alg.Title()
}
