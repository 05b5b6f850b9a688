// This file implements the concrete Graph: incremental construction,
// incidence queries, and cloning.
package core

// Graph is the core in-memory graph data structure.
//
// Vertices are dense integer handles 0..NumVertices()-1. Edges are stored
// per source vertex in insertion order; an undirected graph stores each
// edge once but exposes symmetric incidence through both half-edges.
// Graphs are append-only: built incrementally, then treated as immutable
// once handed to analysis algorithms.
type Graph struct {
	directed   bool
	allowMulti bool
	allowLoops bool

	out      [][]Edge // out[v] = half-edges leaving v, insertion order
	numEdges int
	nextTag  int64 // parallel-edge distinguisher generator
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected with no loops and no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewDirected is shorthand for NewGraph(WithDirected(true), opts...).
func NewDirected(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithDirected(true)}, opts...)...)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex creates a new vertex and returns its handle.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() Vertex {
	g.out = append(g.out, nil)

	return Vertex(len(g.out) - 1)
}

// HasVertex reports whether v is a live handle in this graph.
func (g *Graph) HasVertex(v Vertex) bool {
	return v >= 0 && int(v) < len(g.out)
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.out) }

// NumEdges returns the number of logical edges (an undirected edge
// counts once).
func (g *Graph) NumEdges() int { return g.numEdges }

// Vertices returns all vertex handles in increasing order.
func (g *Graph) Vertices() []Vertex {
	vs := make([]Vertex, len(g.out))
	for i := range vs {
		vs[i] = Vertex(i)
	}

	return vs
}

// AddEdge inserts an edge u→v and returns its descriptor. On an
// undirected graph the symmetric half-edge v→u is stored as well, sharing
// the same Tag. Invariant: both endpoints must already exist.
//
// Returns ErrVertexNotFound, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed
// on violated preconditions. Complexity: O(deg(u)) when multi-edges are
// disabled (duplicate scan), O(1) amortized otherwise.
func (g *Graph) AddEdge(u, v Vertex) (Edge, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return Edge{}, ErrVertexNotFound
	}
	if u == v && !g.allowLoops {
		return Edge{}, ErrLoopNotAllowed
	}
	if !g.allowMulti && g.HasEdge(u, v) {
		return Edge{}, ErrMultiEdgeNotAllowed
	}

	e := Edge{From: u, To: v, Tag: g.nextTag}
	g.nextTag++
	g.out[u] = append(g.out[u], e)
	if !g.directed && u != v {
		g.out[v] = append(g.out[v], Edge{From: v, To: u, Tag: e.Tag})
	}
	g.numEdges++

	return e, nil
}

// HasEdge reports whether at least one edge u→v exists
// (either direction counts on an undirected graph).
func (g *Graph) HasEdge(u, v Vertex) bool {
	if !g.HasVertex(u) {
		return false
	}
	for _, e := range g.out[u] {
		if e.To == v {
			return true
		}
	}

	return false
}

// OutEdges returns the out-incidence of v in insertion order.
// The returned slice is shared storage and must not be mutated.
// An unknown handle yields nil.
func (g *Graph) OutEdges(v Vertex) []Edge {
	if !g.HasVertex(v) {
		return nil
	}

	return g.out[v]
}

// OutDegree returns len(OutEdges(v)).
func (g *Graph) OutDegree(v Vertex) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.out[v])
}

// Edges returns every logical edge once, ordered by source handle then
// insertion order. On an undirected graph only the originally inserted
// half is reported.
func (g *Graph) Edges() []Edge {
	es := make([]Edge, 0, g.numEdges)
	seen := make(map[int64]struct{}, g.numEdges)
	for v := range g.out {
		for _, e := range g.out[v] {
			if !g.directed {
				if _, dup := seen[e.Tag]; dup {
					continue
				}
				seen[e.Tag] = struct{}{}
			}
			es = append(es, e)
		}
	}

	return es
}

// Clone returns an independent deep copy of g, preserving handles, tags
// and enumeration order. Use clones to satisfy the copy-based concurrency
// model.
func (g *Graph) Clone() *Graph {
	out := make([][]Edge, len(g.out))
	for v := range g.out {
		if len(g.out[v]) == 0 {
			continue
		}
		out[v] = append([]Edge(nil), g.out[v]...)
	}

	return &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		out:        out,
		numEdges:   g.numEdges,
		nextTag:    g.nextTag,
	}
}
