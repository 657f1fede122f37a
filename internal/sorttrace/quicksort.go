package sorttrace

import "fmt"

// quickSort uses the Lomuto scheme with the last element of the range as
// pivot. Equal elements are never swapped during partition.
func (g *Generator[T]) quickSort(r *recorder[T], start, end, parent int) {
	if start >= end {
		return
	}
	call := r.enter(parent, start, end)

	r.emit(Step[T]{
		Kind:   KindPivotSelect,
		Pivot:  intPtr(end),
		Action: fmt.Sprintf("Selecting pivot: %s", r.describeAt(end)),
	})

	p := g.partition(r, start, end)
	r.settlePivot(call, p)

	r.emit(Step[T]{
		Kind:   KindPivotFixed,
		Pivot:  intPtr(p),
		Action: fmt.Sprintf("Pivot %s is in its correct position", r.describeAt(p)),
	})

	g.quickSort(r, start, p-1, call)
	g.quickSort(r, p+1, end, call)
}

func (g *Generator[T]) partition(r *recorder[T], start, end int) int {
	pivot := r.work[end]
	pivotDesc := r.describe(pivot)
	i := start

	for j := start; j < end; j++ {
		r.compared()
		r.emit(Step[T]{
			Kind:      KindCompare,
			Comparing: []int{j, end},
			Action:    fmt.Sprintf("Comparing %s with pivot %s", r.describeAt(j), pivotDesc),
		})

		if g.compare(r.work[j], pivot) < 0 {
			if i != j {
				r.swap(i, j)
				r.emit(Step[T]{
					Kind:   KindSwap,
					Action: fmt.Sprintf("Swapping %s with %s", r.describeAt(i), r.describeAt(j)),
				})
			}
			i++
		}
	}

	r.swap(i, end)
	r.emit(Step[T]{
		Kind:   KindPivotPlace,
		Pivot:  intPtr(i),
		Action: fmt.Sprintf("Placing pivot %s at position %d", pivotDesc, i),
	})
	return i
}
