package sorttrace

import (
	"strings"

	"github.com/samber/lo"
)

// recorder is the accumulator for one Generate call. The top-level call owns
// it; the recursive helpers only borrow it.
type recorder[T any] struct {
	work     []T
	describe func(T) string

	steps       []Step[T]
	calls       []Call
	comparisons int
	swaps       int
}

func newRecorder[T any](items []T, describe func(T) string) *recorder[T] {
	work := make([]T, len(items))
	copy(work, items)
	return &recorder[T]{work: work, describe: describe}
}

func (r *recorder[T]) snapshot() []T {
	out := make([]T, len(r.work))
	copy(out, r.work)
	return out
}

func (r *recorder[T]) emit(step Step[T]) {
	step.Array = r.snapshot()
	r.steps = append(r.steps, step)
}

func (r *recorder[T]) compared() { r.comparisons++ }

func (r *recorder[T]) swap(i, j int) {
	if i == j {
		return
	}
	r.work[i], r.work[j] = r.work[j], r.work[i]
	r.swaps++
}

// enter opens a call-tree node and returns its ID.
func (r *recorder[T]) enter(parent, start, end int) int {
	id := len(r.calls)
	r.calls = append(r.calls, Call{
		ID:        id,
		Parent:    parent,
		Start:     start,
		End:       end,
		FirstStep: len(r.steps),
	})
	return id
}

func (r *recorder[T]) settlePivot(call, index int) {
	r.calls[call].Pivot = intPtr(index)
}

func (r *recorder[T]) describeAt(i int) string {
	return r.describe(r.work[i])
}

func (r *recorder[T]) describeAll(items []T) string {
	return strings.Join(lo.Map(items, func(item T, _ int) string { return r.describe(item) }), ", ")
}

func (r *recorder[T]) finish(alg Algorithm) *Trace[T] {
	return &Trace[T]{
		Algorithm:   alg,
		Steps:       r.steps,
		Calls:       r.calls,
		Comparisons: r.comparisons,
		Swaps:       r.swaps,
	}
}

func allIndices(n int) []int {
	return lo.Range(n)
}

func intPtr(v int) *int { return &v }
