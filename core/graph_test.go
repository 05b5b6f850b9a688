package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/grafsm/core"
)

// TestAddVertex verifies handle density and HasVertex bounds.
func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		if v := g.AddVertex(); v != core.Vertex(i) {
			t.Fatalf("AddVertex #%d = %d; want %d", i, v, i)
		}
	}
	if n := g.NumVertices(); n != 3 {
		t.Errorf("NumVertices = %d; want 3", n)
	}
	if g.HasVertex(core.NoVertex) {
		t.Error("HasVertex(NoVertex) = true; want false")
	}
	if g.HasVertex(3) {
		t.Error("HasVertex(3) = true; want false")
	}
}

// TestAddEdge_Errors covers the sentinel error paths.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()

	if _, err := g.AddEdge(a, 7); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing endpoint: want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.AddEdge(a, a); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("self-loop: want ErrLoopNotAllowed, got %v", err)
	}

	b := g.AddVertex()
	if _, err := g.AddEdge(a, b); err != nil {
		t.Fatalf("first edge: %v", err)
	}
	if _, err := g.AddEdge(a, b); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel edge: want ErrMultiEdgeNotAllowed, got %v", err)
	}
}

// TestUndirectedIncidence checks that one stored edge exposes symmetric
// incidence sharing a single Tag.
func TestUndirectedIncidence(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex(), g.AddVertex()
	e, err := g.AddEdge(a, b)
	if err != nil {
		t.Fatal(err)
	}

	if out := g.OutEdges(a); len(out) != 1 || out[0].To != b {
		t.Errorf("OutEdges(a) = %v; want one edge to b", out)
	}
	out := g.OutEdges(b)
	if len(out) != 1 || out[0].To != a {
		t.Fatalf("OutEdges(b) = %v; want one edge to a", out)
	}
	if out[0].Tag != e.Tag {
		t.Errorf("mirror Tag = %d; want %d", out[0].Tag, e.Tag)
	}
	if n := g.NumEdges(); n != 1 {
		t.Errorf("NumEdges = %d; want 1", n)
	}
	if es := g.Edges(); len(es) != 1 {
		t.Errorf("Edges() = %v; want exactly one logical edge", es)
	}
}

// TestDirectedIncidence checks one-way edges, multi-edges and loops.
func TestDirectedIncidence(t *testing.T) {
	g := core.NewDirected(core.WithMultiEdges(), core.WithLoops())
	a, b := g.AddVertex(), g.AddVertex()

	if _, err := g.AddEdge(a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge(a, b); err != nil {
		t.Fatalf("parallel edge on multigraph: %v", err)
	}
	if _, err := g.AddEdge(b, b); err != nil {
		t.Fatalf("loop: %v", err)
	}

	if d := g.OutDegree(a); d != 2 {
		t.Errorf("OutDegree(a) = %d; want 2", d)
	}
	if out := g.OutEdges(b); len(out) != 1 || out[0].To != b {
		t.Errorf("OutEdges(b) = %v; want only the loop", out)
	}
	if g.OutEdges(a)[0].Tag == g.OutEdges(a)[1].Tag {
		t.Error("parallel edges share a Tag")
	}
}

// TestClone verifies independence of the copy.
func TestClone(t *testing.T) {
	g := core.NewDirected()
	a, b := g.AddVertex(), g.AddVertex()
	if _, err := g.AddEdge(a, b); err != nil {
		t.Fatal(err)
	}

	c := g.Clone()
	if !reflect.DeepEqual(c.OutEdges(a), g.OutEdges(a)) {
		t.Errorf("clone incidence differs: %v vs %v", c.OutEdges(a), g.OutEdges(a))
	}

	c.AddVertex()
	if c.NumVertices() == g.NumVertices() {
		t.Error("mutating clone changed original vertex count")
	}
}

// TestFilteredView checks predicate filtering without copying.
func TestFilteredView(t *testing.T) {
	g := core.NewDirected()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	ab, _ := g.AddEdge(a, b)
	if _, err := g.AddEdge(a, c); err != nil {
		t.Fatal(err)
	}

	// Hide vertex c.
	view := core.NewFiltered(g, func(v core.Vertex) bool { return v != c }, nil)
	if n := view.CountVisible(); n != 2 {
		t.Errorf("view CountVisible = %d; want 2", n)
	}
	if n := view.NumVertices(); n != g.NumVertices() {
		t.Errorf("view NumVertices = %d; want the handle bound %d", n, g.NumVertices())
	}
	out := view.OutEdges(a)
	if len(out) != 1 || out[0] != ab {
		t.Errorf("view OutEdges(a) = %v; want only %v", out, ab)
	}
	if out := view.OutEdges(c); out != nil {
		t.Errorf("hidden vertex exposes incidence: %v", out)
	}

	// Hide a single edge; the view reflects later graph mutations lazily.
	eview := core.NewFiltered(g, nil, func(e core.Edge) bool { return e != ab })
	if out := eview.OutEdges(a); len(out) != 1 || out[0].To != c {
		t.Errorf("edge-filtered OutEdges(a) = %v; want only a→c", out)
	}
	d := g.AddVertex()
	if _, err := g.AddEdge(a, d); err != nil {
		t.Fatal(err)
	}
	if out := eview.OutEdges(a); len(out) != 2 {
		t.Errorf("view did not observe underlying mutation: %v", out)
	}
}
