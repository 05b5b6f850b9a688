// Package automata provides the finite-automaton data model: a
// specialization of the core graph where edges carry alphabet symbols.
//
// What
//
//   - Automaton: the deterministic model. One initial state, a final-state
//     set, and at most one successor per (state, symbol). Delta resolves
//     undefined transitions to Bottom lazily: the dead state is a reserved
//     sentinel, never a materialized vertex, so it cannot pollute
//     vertex-count invariants.
//   - NFA: the non-deterministic model. Multi-valued transitions, several
//     initial states, and an epsilon symbol traversable without consuming
//     input. NFA.Delta is epsilon-closed: it closes the source, steps on the
//     symbol, and closes the result.
//   - CheckDeterministic / FromNFA: the determinism helper and the checked
//     NFA→Automaton conversion; ambiguity is reported as
//     ErrNondeterministic, never silently tolerated.
//
// Graph interop
//
//	Both models satisfy core.Incidence: transitions surface as core.Edge
//	values whose Tag carries the symbol (decode with EdgeSymbol). Traversal,
//	filtered views and export collaborators therefore work on automata
//	unchanged.
//
// Determinism
//
//	OutEdges, Sigma, Alphabet, Finals and Initials enumerate in increasing
//	symbol/state order, keeping downstream algorithms reproducible.
//
// Lifecycle
//
//	Automata are built incrementally (AddState, AddTransition) and treated
//	as immutable once handed to analysis; determinization and minimization
//	always return new instances. Use Clone for independent copies.
//
// Errors
//
//	ErrStateNotFound    - a transition endpoint does not exist.
//	ErrNondeterministic - conflicting (state, symbol) successor, epsilon on
//	                      a deterministic automaton, or ambiguous initials.
package automata
