// Package filter selects catalog records with boolean expressions over the
// record fields `name` and `price`, e.g. `price >= 20 && price < 40`.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/awmpietro/sortlab/internal/sorttrace"
)

type Compiled struct {
	source  string
	program *vm.Program
}

func (c *Compiled) String() string {
	if c == nil {
		return ""
	}
	return c.source
}

func env(r sorttrace.Record) map[string]any {
	return map[string]any{
		"name":  r.Name,
		"price": r.Price,
	}
}

// Compile validates and compiles cond. An empty condition compiles to nil,
// which matches every record.
func Compile(cond string) (*Compiled, error) {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return nil, nil
	}
	if err := Validate(cond); err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", cond, err)
	}

	program, err := expr.Compile(cond, expr.Env(env(sorttrace.Record{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", cond, err)
	}
	return &Compiled{source: cond, program: program}, nil
}

func (c *Compiled) Match(r sorttrace.Record) (bool, error) {
	if c == nil {
		return true, nil
	}
	out, err := expr.Run(c.program, env(r))
	if err != nil {
		return false, fmt.Errorf("eval filter %q: %w", c.source, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter must evaluate to bool (got %T)", out)
	}
	return b, nil
}

// Apply keeps the records c matches, preserving their order.
func Apply(c *Compiled, records []sorttrace.Record) ([]sorttrace.Record, error) {
	out := make([]sorttrace.Record, 0, len(records))
	for _, r := range records {
		ok, err := c.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}
