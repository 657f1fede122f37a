package sorttrace

import (
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
)

func TestToDOT_QuickSortCallTree(t *testing.T) {
	tr, err := GenerateNumbers([]float64{3, 1, 3, 2, 3}, QuickSort)
	if err != nil {
		t.Fatal(err)
	}

	dot, err := ToDOT(tr)
	if err != nil {
		t.Fatal(err)
	}

	ast, err := gographviz.ParseString(dot)
	if err != nil {
		t.Fatalf("rendered DOT does not parse: %v\n%s", err, dot)
	}
	g := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, g); err != nil {
		t.Fatal(err)
	}

	if len(g.Nodes.Nodes) != len(tr.Calls) {
		t.Fatalf("expected %d nodes, got %d", len(tr.Calls), len(g.Nodes.Nodes))
	}
	if len(g.Edges.Edges) != len(tr.Calls)-1 {
		t.Fatalf("expected %d edges, got %d", len(tr.Calls)-1, len(g.Edges.Edges))
	}
	if !strings.Contains(dot, "pivot@2") {
		t.Fatalf("expected root pivot in labels:\n%s", dot)
	}
}

func TestToDOT_BubblePassesAreChained(t *testing.T) {
	tr, err := GenerateNumbers([]float64{4, 3, 2, 1}, BubbleSort)
	if err != nil {
		t.Fatal(err)
	}

	dot, err := ToDOT(tr)
	if err != nil {
		t.Fatal(err)
	}

	for _, edge := range []string{"c0->c1", "c1->c2"} {
		if !strings.Contains(strings.ReplaceAll(dot, " ", ""), edge) {
			t.Fatalf("expected edge %s in:\n%s", edge, dot)
		}
	}
}

func TestToDOT_NilTrace(t *testing.T) {
	if _, err := ToDOT[float64](nil); err == nil {
		t.Fatalf("expected error")
	}
}
