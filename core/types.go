// This file declares Vertex, Edge, the Incidence/Builder capability
// contracts, sentinel errors, and the Graph options.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is an opaque integer handle, unique and dense within a graph
// instance. Vertices carry no intrinsic data; semantics attach via
// property maps (see package pmap).
type Vertex int

// NoVertex is the reserved null handle. It never names a real vertex and
// doubles as the automata BOTTOM sentinel: undefined transitions resolve
// to it without ever materializing a dead state.
const NoVertex Vertex = -1

// Edge is a value descriptor for a directed half-edge From→To.
// Tag distinguishes otherwise identical descriptors: parallel-edge index
// on plain graphs, alphabet symbol on automaton edges. The two halves of
// an undirected edge share one Tag.
type Edge struct {
	From Vertex
	To   Vertex
	Tag  int64
}

// Incidence is the read capability contract consumed by traversal
// algorithms and export collaborators. Source and target of an edge are
// carried on the Edge descriptor itself.
type Incidence interface {
	// NumVertices returns the number of vertices exposed by this graph.
	NumVertices() int

	// OutEdges returns the out-incidence of v in a deterministic,
	// restartable order. The returned slice must not be mutated.
	OutEdges(v Vertex) []Edge
}

// Builder is the write capability contract used by construction
// collaborators (regex compiler, importers, trie builders) to populate a
// fresh graph.
type Builder interface {
	// AddVertex creates a new vertex and returns its handle.
	AddVertex() Vertex

	// AddEdge inserts an edge u→v (or an undirected pair, per the
	// implementation) and returns its descriptor.
	AddEdge(u, v Vertex) (Edge, error)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithVertices pre-populates the graph with n vertices 0..n-1.
func WithVertices(n int) GraphOption {
	return func(g *Graph) {
		for i := 0; i < n; i++ {
			g.AddVertex()
		}
	}
}
