// Package catalog holds the fish-price datasets used by the visualizer and
// the benchmark, and loads custom catalogs from YAML.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/awmpietro/sortlab/internal/sorttrace"
)

type Fish = sorttrace.Record

var ErrInvalidCatalog = errors.New("invalid catalog")

// Base returns the 100-record catalog benchmarks are built from.
func Base() []Fish { return slices.Clone(base) }

// Showcase returns the small record set used for step-by-step visualization.
func Showcase() []Fish { return slices.Clone(showcase) }

// Bars returns the numeric dataset used by the bar-chart visualization.
func Bars() []float64 { return slices.Clone(bars) }

// Cycle repeats Base cyclically up to n records.
func Cycle(n int) ([]Fish, error) {
	return CycleFrom(base, n)
}

func CycleFrom(src []Fish, n int) ([]Fish, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: dataset size must be >= 0 (got %d)", ErrInvalidCatalog, n)
	}
	if n > 0 && len(src) == 0 {
		return nil, fmt.Errorf("%w: cannot cycle an empty catalog", ErrInvalidCatalog)
	}
	out := make([]Fish, n)
	for i := range out {
		out[i] = src[i%len(src)]
	}
	return out, nil
}

type file struct {
	Fish []Fish `yaml:"fish"`
}

// Parse decodes a YAML catalog of the form
//
//	fish:
//	  - name: Tambaqui
//	    price: 25
func Parse(data []byte) ([]Fish, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(f.Fish) == 0 {
		return nil, fmt.Errorf("%w: no fish entries", ErrInvalidCatalog)
	}
	for i, fish := range f.Fish {
		if strings.TrimSpace(fish.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty name", ErrInvalidCatalog, i)
		}
		if fish.Price < 0 {
			return nil, fmt.Errorf("%w: %s has a negative price", ErrInvalidCatalog, fish.Name)
		}
	}
	return f.Fish, nil
}

func LoadFile(path string) ([]Fish, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	fish, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog: %q: %w", path, err)
	}
	return fish, nil
}
