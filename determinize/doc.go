// Package determinize converts non-deterministic automata into
// deterministic ones by subset construction.
//
// What: 🔁 each reachable set of NFA states becomes one DFA state. The
// start state is the epsilon closure of the NFA's initial states; from
// any subset and symbol, the successor subset is the epsilon closure of
// the union of one-step targets. A subset is final when it contains an
// NFA final state.
//
// Why: every algorithm downstream of compilation (minimization, word
// lookup in constant successors) wants single-valued transitions.
// Subsets are canonicalized by their sorted member list, so identical
// state sets always map to the same DFA state and the construction
// terminates within the power-set bound.
//
// The empty subset is the implicit rejecting sink and is not expanded;
// Determinize leaves missing transitions undefined (Bottom). Opting in
// with WithComplete materializes it as an explicit trash state with a
// self-loop on every alphabet symbol.
//
// Complexity: worst case O(2^n) subset states for an n-state input.
// The blow-up is inherent to determinization, not a defect; inputs from
// the regex compiler rarely approach it.
package determinize
