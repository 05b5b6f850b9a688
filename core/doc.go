// Package core defines the central Graph, Vertex and Edge types together
// with the capability contracts (Incidence, Builder) that every grafsm
// algorithm is written against.
//
// What
//
//   - Vertex: an opaque integer handle, dense within its graph; NoVertex (-1)
//     is the reserved null/BOTTOM sentinel shared with the automata layer.
//   - Edge: a value descriptor (From, To, Tag); Tag distinguishes parallel
//     edges on plain graphs and carries the symbol on automaton edges.
//   - Graph: directed or undirected adjacency storage, built incrementally
//     with AddVertex/AddEdge and otherwise treated as immutable.
//   - Incidence / Builder: the read and write capability contracts; concrete
//     graph kinds (directed, undirected, automaton) implement them, so
//     traversal and export collaborators never depend on a representation.
//   - Filtered: a non-copying view restricting any Incidence through vertex
//     and edge predicates (induced subgraphs without materialization).
//
// Determinism
//
//	OutEdges enumerates edges in insertion order; Vertices enumerates
//	handles in increasing order. All algorithms in this module inherit their
//	reproducibility from these two rules.
//
// Concurrency
//
//	Single-threaded: no concurrent mutation of a shared Graph is
//	supported. Callers serialize access or work on independent Clones.
//
// Errors
//
//	ErrVertexNotFound      - an endpoint handle does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
