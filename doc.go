// Package grafsm is a generic graph abstraction layer paired with a
// finite-automaton construction and minimization engine.
//
// 🚀 What is grafsm?
//
//	A Boost-Graph-Library-flavored toolkit: algorithms are written once
//	against abstract incidence and property-map contracts, then run over
//	directed graphs, undirected graphs and automata alike:
//		• Property maps: attach labels, colors, distances to any vertex/edge
//		• Core primitives: integer-handle graphs with lazy filtered views
//		• Traversals: visitor-driven BFS/DFS with early-stop
//		• Automata: DFA/NFA models with epsilon and lazy BOTTOM semantics
//		• Regex compiler: shunting yard + Thompson construction
//		• Determinization: subset construction over epsilon-closures
//		• Minimization: Revuz minimization for acyclic automata
//
// ✨ Why choose grafsm?
//
//   - One capability contract – graphs and automata share Incidence/Builder
//   - Deterministic – stable enumeration orders, reproducible tie-breaks
//   - Pure Go – in-memory, CPU-bound, no cgo
//   - Extensible – visitor hooks (OnDiscover, OnExamineEdge…) for custom logic
//
// Under the hood, everything is organized per concern:
//
//	pmap/        — property maps (assoc, dense slice, func, const)
//	core/        — Graph, Vertex, Edge, Incidence/Builder contracts, views
//	traverse/    — breadth-first and depth-first exploration
//	automata/    — Automaton (DFA) and NFA models
//	rex/         — regular-expression tokenizer, parser and compilers
//	determinize/ — NFA → DFA subset construction
//	minimize/    — acyclic DFA minimization
//
// Quick example, from expression to minimal automaton:
//
//	nfa, _ := rex.CompileNFA("ab|ac")
//	dfa, _ := determinize.Determinize(nfa)
//	min, _ := minimize.Minimize(dfa)
//	min.Accepts("ab") // true
//
// Determinization is worst-case exponential in state count (subset
// explosion); this is an accepted algorithmic property, not a bug.
//
//	go get github.com/katalvlaran/grafsm
package grafsm
