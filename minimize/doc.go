// Package minimize reduces acyclic deterministic automata to their
// canonical minimal form (Revuz's algorithm).
//
// What: 🗜️ states are grouped by height (the length of the longest
// path to a sink) and, within a height, by signature: the finality flag
// plus the sorted list of (symbol, target equivalence class) pairs.
// States sharing a signature accept the same residual language and
// collapse into one. Heights are processed bottom-up, so every target's
// class is settled before it appears in a signature.
//
// Why bottom-up by height: two states can only be equivalent when their
// successors already are, and in an acyclic automaton height gives a
// topological layering that makes one pass sufficient.
//
// The precondition is acyclicity; Minimize rejects cyclic input with
// ErrCyclic rather than returning a wrong answer. Use Hopcroft-style
// partition refinement elsewhere if cyclic automata ever need
// minimizing; the finite-language automata produced by the regex and
// trie pipelines are acyclic.
//
// Complexity: O(N·|Σ|·log N) for N states over alphabet Σ, dominated
// by signature sorting.
package minimize
