// Package pmap provides property maps: lightweight associations between
// graph entities (vertices, edges, states) and auxiliary values, kept
// outside the graph structure itself.
//
// What
//
//   - Read[K, V]: read-only lookup contract (Get, Has).
//   - ReadWrite[K, V]: lookup plus Put.
//   - Assoc[K, V]: map-backed associative property map for sparse key spaces.
//   - Slice[V]: dense array-backed property map for small integer key ranges
//     with O(1) access.
//   - Func[K, V]: computes values on the fly from a function.
//   - Const[K, V]: returns the same value for every key.
//
// Why
//
//	Algorithms stay generic: a traversal taking a ReadWrite color map, or a
//	minimizer reading a label map, never cares how the mapping is realized.
//	Maps are passed by reference into algorithms; a single logical writer at
//	a time, no copying semantics.
//
// Required vs. optional
//
//	A required lookup that misses fails with ErrKeyNotFound. Construct a map
//	with WithDefault to make it optional: misses then yield the default
//	instead of an error.
//
// Concurrency
//
//	Property maps are not safe for concurrent mutation; callers serialize
//	access, matching the rest of the module.
package pmap
