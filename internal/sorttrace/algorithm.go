package sorttrace

import (
	"errors"
	"fmt"
	"strings"
)

type Algorithm string

const (
	QuickSort  Algorithm = "quicksort"
	MergeSort  Algorithm = "mergesort"
	BubbleSort Algorithm = "bubblesort"
)

var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// UnsupportedAlgorithmError carries the rejected selector and the set the
// generator accepts.
type UnsupportedAlgorithmError struct {
	Algorithm Algorithm
	Supported []Algorithm
}

func (e *UnsupportedAlgorithmError) Error() string {
	names := make([]string, 0, len(e.Supported))
	for _, a := range e.Supported {
		names = append(names, string(a))
	}
	return fmt.Sprintf("unsupported algorithm %q (supported: %s)", e.Algorithm, strings.Join(names, ", "))
}

func (e *UnsupportedAlgorithmError) Unwrap() error { return ErrUnsupportedAlgorithm }

func (a Algorithm) implemented() bool {
	switch a {
	case QuickSort, MergeSort, BubbleSort:
		return true
	}
	return false
}

// Title is the display name used in narration.
func (a Algorithm) Title() string {
	switch a {
	case QuickSort:
		return "Quick Sort"
	case MergeSort:
		return "Merge Sort"
	case BubbleSort:
		return "Bubble Sort"
	}
	return string(a)
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quicksort", "quick_sort", "quick":
		return QuickSort, nil
	case "mergesort", "merge_sort", "merge":
		return MergeSort, nil
	case "bubblesort", "bubble_sort", "bubble":
		return BubbleSort, nil
	}
	return "", &UnsupportedAlgorithmError{
		Algorithm: Algorithm(s),
		Supported: []Algorithm{QuickSort, MergeSort, BubbleSort},
	}
}
