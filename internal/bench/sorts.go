package bench

import "slices"

// QuickSort returns a sorted copy of items. It partitions around the last
// element into two new slices instead of swapping in place.
func QuickSort[T any](items []T, cmp func(a, b T) int) []T {
	if len(items) <= 1 {
		return slices.Clone(items)
	}

	pivot := items[len(items)-1]
	left := make([]T, 0, len(items)/2)
	right := make([]T, 0, len(items)/2)
	for _, it := range items[:len(items)-1] {
		if cmp(it, pivot) < 0 {
			left = append(left, it)
		} else {
			right = append(right, it)
		}
	}

	out := make([]T, 0, len(items))
	out = append(out, QuickSort(left, cmp)...)
	out = append(out, pivot)
	out = append(out, QuickSort(right, cmp)...)
	return out
}

// MergeSort returns a stably sorted copy of items.
func MergeSort[T any](items []T, cmp func(a, b T) int) []T {
	if len(items) <= 1 {
		return slices.Clone(items)
	}

	mid := len(items) / 2
	left := MergeSort(items[:mid], cmp)
	right := MergeSort(items[mid:], cmp)

	merged := make([]T, 0, len(items))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
