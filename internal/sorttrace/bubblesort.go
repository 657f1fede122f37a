package sorttrace

import (
	"fmt"

	"github.com/samber/lo"
)

// bubbleSort records one call per outer pass. After pass i the last i+1
// indices are final.
func (g *Generator[T]) bubbleSort(r *recorder[T]) {
	n := len(r.work)

	for i := 0; i < n-1; i++ {
		r.enter(-1, 0, n-1-i)

		for j := 0; j < n-i-1; j++ {
			r.compared()
			r.emit(Step[T]{
				Kind:      KindCompare,
				Comparing: []int{j, j + 1},
				Action:    fmt.Sprintf("Comparing %s with %s", r.describeAt(j), r.describeAt(j+1)),
			})

			if g.compare(r.work[j], r.work[j+1]) > 0 {
				bigger, smaller := r.describeAt(j), r.describeAt(j+1)
				r.swap(j, j+1)
				r.emit(Step[T]{
					Kind:   KindSwap,
					Action: fmt.Sprintf("Swapping %s with %s: %s > %s", bigger, smaller, bigger, smaller),
				})
			}
		}

		r.emit(Step[T]{
			Kind:   KindPassDone,
			Sorted: lo.RangeFrom(n-1-i, i+1),
			Action: fmt.Sprintf("Element %s is in its final position", r.describeAt(n-1-i)),
		})
	}
}
