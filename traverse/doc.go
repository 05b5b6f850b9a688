// Package traverse provides visitor-driven breadth-first and depth-first
// exploration over any core.Incidence, including plain graphs, filtered
// views and automata.
//
// What
//
//   - BFS(g, start, vis, opts...): discovers vertices in non-decreasing
//     distance from start; ties are broken by OutEdges enumeration order.
//   - DFS(g, start, vis, opts...): depth-first alternative sharing the same
//     visitor contract; WithFullTraversal covers disconnected forests.
//   - HasCycle(g): reports whether a directed incidence contains a cycle.
//   - Visitor hooks: OnDiscover (vertex first seen), OnExamineEdge (every
//     out-edge of a visited vertex), OnFinish (vertex fully explored).
//
// Early stop
//
//	Returning ErrStop from any hook aborts remaining exploration and is
//	reported as a nil error: cancellation by the visitor is a normal,
//	successful termination path, not a failure. Any other hook error aborts
//	the traversal and is propagated wrapped.
//
// Color maps
//
//	Visitation state lives in a pmap.ReadWrite[int, Color] (White, Gray,
//	Black). The default is a dense slice-backed map sized to the graph;
//	pass WithColorMap to share or pre-seed state across invocations.
//
// Guarantees
//
//	Each reachable vertex is discovered exactly once per invocation.
//	Single-threaded and re-entrant: no hidden process-wide state. The only
//	supported cancellation mechanisms are ErrStop and the context supplied
//	via WithContext; traversal otherwise terminates because graphs are
//	finite.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E), plus hook and color-map overhead
//   - Memory: O(V) for the queue/stack and color map
//
// Errors
//
//   - ErrGraphNil              if the incidence is nil.
//   - ErrStartVertexNotFound   if start is out of range.
//   - context.Canceled         if the context is done.
//   - Wrapped user-supplied hook errors.
package traverse
