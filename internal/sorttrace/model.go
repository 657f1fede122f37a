package sorttrace

import "slices"

type StepKind string

const (
	KindStart         StepKind = "start"
	KindPivotSelect   StepKind = "pivot_select"
	KindCompare       StepKind = "compare"
	KindSwap          StepKind = "swap"
	KindPivotPlace    StepKind = "pivot_place"
	KindPivotFixed    StepKind = "pivot_fixed"
	KindDivide        StepKind = "divide"
	KindMerge         StepKind = "merge"
	KindPlace         StepKind = "place"
	KindCopyRemainder StepKind = "copy_remainder"
	KindPassDone      StepKind = "pass_done"
	KindNothingToDo   StepKind = "nothing_to_do"
	KindDone          StepKind = "done"
)

// Step is a snapshot of the working sequence at one instant of the sort.
// Array is always a private copy.
type Step[T any] struct {
	Array     []T      `json:"array"`
	Comparing []int    `json:"comparing,omitempty"`
	Pivot     *int     `json:"pivot,omitempty"`
	Sorted    []int    `json:"sorted,omitempty"`
	Merging   *Merging `json:"merging,omitempty"`
	Kind      StepKind `json:"kind"`
	Action    string   `json:"action"`
}

type Merging struct {
	Left   []int `json:"left"`
	Right  []int `json:"right"`
	Merged []int `json:"merged"`
}

// Call is one node of the recursion tree: a partition range, a divide range
// or a bubble pass.
type Call struct {
	ID        int  `json:"id"`
	Parent    int  `json:"parent"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
	FirstStep int  `json:"first_step"`
	Pivot     *int `json:"pivot,omitempty"`
}

type Trace[T any] struct {
	Algorithm   Algorithm `json:"algorithm"`
	Steps       []Step[T] `json:"steps"`
	Calls       []Call    `json:"calls,omitempty"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
}

func (t *Trace[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Steps)
}

// Last returns the final step. It panics on an empty trace, which Generate
// never returns.
func (t *Trace[T]) Last() Step[T] {
	return t.Steps[len(t.Steps)-1]
}

// Role is how a renderer should highlight one index of a step.
type Role string

const (
	RoleIdle      Role = "idle"
	RoleSorted    Role = "sorted"
	RolePivot     Role = "pivot"
	RoleComparing Role = "comparing"
	RoleLeft      Role = "merge_left"
	RoleRight     Role = "merge_right"
)

// RoleOf resolves the highlight of index i. Sorted wins over pivot, pivot
// over comparing, comparing over the merge halves.
func (s Step[T]) RoleOf(i int) Role {
	switch {
	case slices.Contains(s.Sorted, i):
		return RoleSorted
	case s.Pivot != nil && *s.Pivot == i:
		return RolePivot
	case slices.Contains(s.Comparing, i):
		return RoleComparing
	case s.Merging != nil && slices.Contains(s.Merging.Left, i):
		return RoleLeft
	case s.Merging != nil && slices.Contains(s.Merging.Right, i):
		return RoleRight
	}
	return RoleIdle
}
