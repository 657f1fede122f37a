package sorttrace

import (
	"cmp"
	"fmt"
	"strconv"
)

// Record is a labeled value. Ordering looks at Price only.
type Record struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

func CompareRecords(a, b Record) int { return cmp.Compare(a.Price, b.Price) }

func DescribeRecord(r Record) string {
	return fmt.Sprintf("%s (%s)", r.Name, FormatNumber(r.Price))
}

func CompareNumbers(a, b float64) int { return cmp.Compare(a, b) }

// FormatNumber prints integers without a fractional part.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewRecordGenerator accepts quicksort and mergesort.
func NewRecordGenerator(opts ...Option) *Generator[Record] {
	opts = append([]Option{WithAlgorithms(QuickSort, MergeSort)}, opts...)
	return NewGenerator(CompareRecords, DescribeRecord, opts...)
}

// NewNumberGenerator accepts quicksort, mergesort and bubblesort.
func NewNumberGenerator(opts ...Option) *Generator[float64] {
	opts = append([]Option{WithAlgorithms(QuickSort, MergeSort, BubbleSort)}, opts...)
	return NewGenerator(CompareNumbers, FormatNumber, opts...)
}

func GenerateRecords(items []Record, alg Algorithm) (*Trace[Record], error) {
	return NewRecordGenerator().Generate(items, alg)
}

func GenerateNumbers(values []float64, alg Algorithm) (*Trace[float64], error) {
	return NewNumberGenerator().Generate(values, alg)
}
