package sorttrace

import (
	"fmt"

	"github.com/samber/lo"
)

// mergeSort is top-down. Ties take the left head, which keeps the merge
// stable.
func (g *Generator[T]) mergeSort(r *recorder[T], start, end, parent int) {
	if start >= end {
		return
	}
	call := r.enter(parent, start, end)
	mid := (start + end) / 2

	r.emit(Step[T]{
		Kind: KindDivide,
		Action: fmt.Sprintf("Dividing positions %d to %d and %d to %d: [%s] | [%s]",
			start, mid, mid+1, end,
			r.describeAll(r.work[start:mid+1]),
			r.describeAll(r.work[mid+1:end+1]),
		),
	})

	g.mergeSort(r, start, mid, call)
	g.mergeSort(r, mid+1, end, call)
	g.merge(r, start, mid, end)
}

func (g *Generator[T]) merge(r *recorder[T], start, mid, end int) {
	left := append([]T(nil), r.work[start:mid+1]...)
	right := append([]T(nil), r.work[mid+1:end+1]...)
	leftIdx := lo.RangeFrom(start, len(left))
	rightIdx := lo.RangeFrom(mid+1, len(right))

	state := func(k int) *Merging {
		return &Merging{
			Left:   append([]int(nil), leftIdx...),
			Right:  append([]int(nil), rightIdx...),
			Merged: lo.RangeFrom(start, k-start),
		}
	}

	r.emit(Step[T]{
		Kind:    KindMerge,
		Merging: state(start),
		Action:  fmt.Sprintf("Merging [%s] with [%s]", r.describeAll(left), r.describeAll(right)),
	})

	i, j, k := 0, 0, start
	for i < len(left) && j < len(right) {
		r.compared()
		r.emit(Step[T]{
			Kind:      KindCompare,
			Comparing: []int{start + i, mid + 1 + j},
			Merging:   state(k),
			Action:    fmt.Sprintf("Comparing %s with %s", r.describe(left[i]), r.describe(right[j])),
		})

		if g.compare(left[i], right[j]) <= 0 {
			r.work[k] = left[i]
			i++
		} else {
			r.work[k] = right[j]
			j++
		}
		k++

		r.emit(Step[T]{
			Kind:    KindPlace,
			Merging: state(k),
			Action:  fmt.Sprintf("Placing %s at position %d", r.describeAt(k-1), k-1),
		})
	}

	for _, rest := range [][]T{left[i:], right[j:]} {
		for _, item := range rest {
			r.work[k] = item
			k++
			r.emit(Step[T]{
				Kind:    KindCopyRemainder,
				Merging: state(k),
				Action:  fmt.Sprintf("Copying remaining element: %s", r.describe(item)),
			})
		}
	}
}
