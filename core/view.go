// This file implements Filtered, a non-mutating predicate view over any
// Incidence. The underlying storage is never copied; the view evaluates
// its predicates lazily on every query, so algorithms can run over
// induced subgraphs of a graph that keeps evolving elsewhere.
package core

// VertexPredicate decides whether a vertex is visible through a view.
type VertexPredicate func(Vertex) bool

// EdgePredicate decides whether an edge is visible through a view.
type EdgePredicate func(Edge) bool

// Filtered restricts an Incidence through vertex and edge predicates.
// An edge is visible iff its source and target are both visible and the
// edge predicate accepts it. A nil predicate keeps everything.
type Filtered struct {
	g     Incidence
	keepV VertexPredicate
	keepE EdgePredicate
}

// NewFiltered wraps g in a predicate view without copying it.
func NewFiltered(g Incidence, keepV VertexPredicate, keepE EdgePredicate) *Filtered {
	return &Filtered{g: g, keepV: keepV, keepE: keepE}
}

// NumVertices returns the handle bound of the underlying Incidence.
// Hidden vertices keep their handles (nothing is renumbered), so the
// bound is inherited; use CountVisible for the filtered cardinality.
func (f *Filtered) NumVertices() int {
	return f.g.NumVertices()
}

// CountVisible counts the vertices visible through the view.
// Complexity: O(V) per call (the view holds no materialized state).
func (f *Filtered) CountVisible() int {
	n := f.g.NumVertices()
	if f.keepV == nil {
		return n
	}
	kept := 0
	for v := 0; v < n; v++ {
		if f.keepV(Vertex(v)) {
			kept++
		}
	}

	return kept
}

// OutEdges returns the visible out-incidence of v, preserving the
// underlying enumeration order. A hidden source yields nil.
func (f *Filtered) OutEdges(v Vertex) []Edge {
	if f.keepV != nil && !f.keepV(v) {
		return nil
	}
	all := f.g.OutEdges(v)
	es := make([]Edge, 0, len(all))
	for _, e := range all {
		if f.keepV != nil && !f.keepV(e.To) {
			continue
		}
		if f.keepE != nil && !f.keepE(e) {
			continue
		}
		es = append(es, e)
	}

	return es
}
