package sorttrace

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// ToDOT renders the recursion tree of a trace as a Graphviz digraph. Bubble
// sort passes have no parent and show up as a chain of roots.
func ToDOT[T any](tr *Trace[T]) (string, error) {
	if tr == nil {
		return "", fmt.Errorf("trace is nil")
	}

	g := gographviz.NewGraph()
	if err := g.SetName("trace"); err != nil {
		return "", fmt.Errorf("set graph name: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("set graph direction: %w", err)
	}
	if err := g.AddAttr("trace", "label", strconv.Quote(tr.Algorithm.Title())); err != nil {
		return "", fmt.Errorf("set graph label: %w", err)
	}

	prevRoot := ""
	for _, c := range tr.Calls {
		name := callNodeName(c.ID)
		attrs := map[string]string{
			"label": strconv.Quote(callLabel(c)),
			"shape": "box",
		}
		if err := g.AddNode("trace", name, attrs); err != nil {
			return "", fmt.Errorf("add node %s: %w", name, err)
		}

		from := ""
		switch {
		case c.Parent >= 0:
			from = callNodeName(c.Parent)
		case prevRoot != "":
			from = prevRoot
		}
		if c.Parent < 0 {
			prevRoot = name
		}
		if from == "" {
			continue
		}
		if err := g.AddEdge(from, name, true, nil); err != nil {
			return "", fmt.Errorf("add edge %s -> %s: %w", from, name, err)
		}
	}

	return g.String(), nil
}

func callNodeName(id int) string {
	return "c" + strconv.Itoa(id)
}

func callLabel(c Call) string {
	label := fmt.Sprintf("[%d..%d] step %d", c.Start, c.End, c.FirstStep)
	if c.Pivot != nil {
		label += fmt.Sprintf(" pivot@%d", *c.Pivot)
	}
	return label
}
