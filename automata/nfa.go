// This file implements the non-deterministic NFA model with epsilon
// transitions, plus the determinism check and the checked conversion to
// the deterministic model.
package automata

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/grafsm/core"
)

// NFAOption configures an NFA at construction time.
type NFAOption func(*NFA)

// WithEpsilon overrides the epsilon symbol (default Epsilon).
func WithEpsilon(sym Symbol) NFAOption {
	return func(n *NFA) { n.epsilon = sym }
}

// NFA is a non-deterministic finite automaton: transitions may be
// multi-valued, several states may be initial, and epsilon transitions
// consume no input.
type NFA struct {
	delta    []map[Symbol]map[State]struct{}
	initials *bitset.BitSet
	finals   *bitset.BitSet
	epsilon  Symbol
	numTr    int
}

// NewNFA creates an NFA with n states 0..n-1. State 0 is initial by
// convention when n > 0; adjust with SetInitial/SetInitials.
func NewNFA(n int, opts ...NFAOption) *NFA {
	nfa := &NFA{
		delta:    make([]map[Symbol]map[State]struct{}, 0, n),
		initials: bitset.New(uint(max(n, 1))),
		finals:   bitset.New(uint(max(n, 1))),
		epsilon:  Epsilon,
	}
	for _, opt := range opts {
		opt(nfa)
	}
	for i := 0; i < n; i++ {
		nfa.AddState()
	}
	if n > 0 {
		nfa.initials.Set(0)
	}

	return nfa
}

// Epsilon returns the symbol used for epsilon transitions.
func (n *NFA) Epsilon() Symbol { return n.epsilon }

// AddState creates a new state and returns its handle.
func (n *NFA) AddState() State {
	n.delta = append(n.delta, nil)

	return State(len(n.delta) - 1)
}

// HasState reports whether q is a live handle.
func (n *NFA) HasState(q State) bool {
	return q >= 0 && int(q) < len(n.delta)
}

// NumStates returns the number of states.
func (n *NFA) NumStates() int { return len(n.delta) }

// NumVertices implements core.Incidence.
func (n *NFA) NumVertices() int { return len(n.delta) }

// NumTransitions returns the number of distinct (state, symbol, target)
// transitions, epsilon included.
func (n *NFA) NumTransitions() int { return n.numTr }

// SetInitial marks or unmarks q as initial.
func (n *NFA) SetInitial(q State, initial bool) error {
	if !n.HasState(q) {
		return ErrStateNotFound
	}
	if initial {
		n.initials.Set(uint(q))
	} else {
		n.initials.Clear(uint(q))
	}

	return nil
}

// SetInitials replaces the initial-state set.
func (n *NFA) SetInitials(qs ...State) error {
	for _, q := range qs {
		if !n.HasState(q) {
			return ErrStateNotFound
		}
	}
	n.initials.ClearAll()
	for _, q := range qs {
		n.initials.Set(uint(q))
	}

	return nil
}

// IsInitial reports whether q is initial.
func (n *NFA) IsInitial(q State) bool {
	return n.HasState(q) && n.initials.Test(uint(q))
}

// Initials returns the initial states in increasing order.
func (n *NFA) Initials() []State { return setToStates(n.initials) }

// SetFinal marks or unmarks q as final.
func (n *NFA) SetFinal(q State, final bool) error {
	if !n.HasState(q) {
		return ErrStateNotFound
	}
	if final {
		n.finals.Set(uint(q))
	} else {
		n.finals.Clear(uint(q))
	}

	return nil
}

// IsFinal reports whether q is final. Bottom is never final.
func (n *NFA) IsFinal(q State) bool {
	return n.HasState(q) && n.finals.Test(uint(q))
}

// Finals returns the final states in increasing order.
func (n *NFA) Finals() []State { return setToStates(n.finals) }

// AddTransition installs q --sym--> r. Parallel duplicates collapse
// silently; multi-valued successors are the point of an NFA.
func (n *NFA) AddTransition(q State, sym Symbol, r State) error {
	if !n.HasState(q) || !n.HasState(r) {
		return ErrStateNotFound
	}
	if n.delta[q] == nil {
		n.delta[q] = make(map[Symbol]map[State]struct{})
	}
	targets := n.delta[q][sym]
	if targets == nil {
		targets = make(map[State]struct{})
		n.delta[q][sym] = targets
	}
	if _, dup := targets[r]; dup {
		return nil
	}
	targets[r] = struct{}{}
	n.numTr++

	return nil
}

// DeltaOneStep returns the states reachable from any state of qs by one
// sym transition, without epsilon closure, in increasing order.
func (n *NFA) DeltaOneStep(qs []State, sym Symbol) []State {
	out := bitset.New(uint(max(len(n.delta), 1)))
	for _, q := range qs {
		if !n.HasState(q) {
			continue
		}
		for r := range n.delta[q][sym] {
			out.Set(uint(r))
		}
	}

	return setToStates(out)
}

// EpsilonClosure returns every state reachable from qs using only
// epsilon transitions (qs included), in increasing order.
func (n *NFA) EpsilonClosure(qs []State) []State {
	reached := bitset.New(uint(max(len(n.delta), 1)))
	frontier := make([]State, 0, len(qs))
	for _, q := range qs {
		if n.HasState(q) && !reached.Test(uint(q)) {
			reached.Set(uint(q))
			frontier = append(frontier, q)
		}
	}
	for len(frontier) > 0 {
		q := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for r := range n.delta[q][n.epsilon] {
			if !reached.Test(uint(r)) {
				reached.Set(uint(r))
				frontier = append(frontier, r)
			}
		}
	}

	return setToStates(reached)
}

// Delta returns the epsilon-closed successors of q on sym: the closure
// of q is stepped on sym, and the result closed again.
func (n *NFA) Delta(q State, sym Symbol) []State {
	qs := n.EpsilonClosure([]State{q})

	return n.EpsilonClosure(n.DeltaOneStep(qs, sym))
}

// Sigma returns the non-epsilon symbols leaving the epsilon closure of q,
// in increasing order.
func (n *NFA) Sigma(q State) []Symbol {
	seen := make(map[Symbol]struct{})
	for _, p := range n.EpsilonClosure([]State{q}) {
		for sym := range n.delta[p] {
			if sym != n.epsilon {
				seen[sym] = struct{}{}
			}
		}
	}

	return sortSymbols(seen)
}

// Alphabet returns every non-epsilon symbol used by some transition,
// in increasing order.
func (n *NFA) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for q := range n.delta {
		for sym := range n.delta[q] {
			if sym != n.epsilon {
				seen[sym] = struct{}{}
			}
		}
	}

	return sortSymbols(seen)
}

// OutEdges implements core.Incidence: transitions of q ordered by symbol
// then target, epsilon edges included.
func (n *NFA) OutEdges(v core.Vertex) []core.Edge {
	if !n.HasState(v) {
		return nil
	}
	syms := make([]Symbol, 0, len(n.delta[v]))
	for sym := range n.delta[v] {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	var es []core.Edge
	for _, sym := range syms {
		targets := make([]State, 0, len(n.delta[v][sym]))
		for r := range n.delta[v][sym] {
			targets = append(targets, r)
		}
		slices.Sort(targets)
		for _, r := range targets {
			es = append(es, core.Edge{From: v, To: r, Tag: int64(sym)})
		}
	}

	return es
}

// Accepts reports whether the NFA accepts word by set simulation over
// epsilon closures.
func (n *NFA) Accepts(word string) bool {
	cur := n.EpsilonClosure(n.Initials())
	for _, r := range word {
		cur = n.EpsilonClosure(n.DeltaOneStep(cur, Symbol(r)))
		if len(cur) == 0 {
			return false
		}
	}
	for _, q := range cur {
		if n.IsFinal(q) {
			return true
		}
	}

	return false
}

// Clone returns an independent deep copy.
func (n *NFA) Clone() *NFA {
	c := &NFA{
		delta:    make([]map[Symbol]map[State]struct{}, len(n.delta)),
		initials: n.initials.Clone(),
		finals:   n.finals.Clone(),
		epsilon:  n.epsilon,
		numTr:    n.numTr,
	}
	for q := range n.delta {
		if n.delta[q] == nil {
			continue
		}
		c.delta[q] = make(map[Symbol]map[State]struct{}, len(n.delta[q]))
		for sym, targets := range n.delta[q] {
			ts := make(map[State]struct{}, len(targets))
			for r := range targets {
				ts[r] = struct{}{}
			}
			c.delta[q][sym] = ts
		}
	}

	return c
}

// CheckDeterministic verifies that n is effectively deterministic: a
// single initial state, no epsilon transitions, and at most one successor
// per (state, symbol). The first violation found is reported as a wrapped
// ErrNondeterministic.
func CheckDeterministic(n *NFA) error {
	if n.initials.Count() > 1 {
		return fmt.Errorf("%w: %d initial states", ErrNondeterministic, n.initials.Count())
	}
	for q := range n.delta {
		for sym, targets := range n.delta[q] {
			if sym == n.epsilon && len(targets) > 0 {
				return fmt.Errorf("%w: epsilon transition out of state %d", ErrNondeterministic, q)
			}
			if len(targets) > 1 {
				return fmt.Errorf("%w: state %d has %d successors on %q", ErrNondeterministic, q, len(targets), sym)
			}
		}
	}

	return nil
}

// FromNFA converts an effectively deterministic NFA into an Automaton,
// preserving state handles. A genuinely non-deterministic input fails
// with ErrNondeterministic; determinize it instead.
func FromNFA(n *NFA) (*Automaton, error) {
	if err := CheckDeterministic(n); err != nil {
		return nil, err
	}

	a := NewAutomaton(n.NumStates())
	if initials := n.Initials(); len(initials) > 0 {
		if err := a.SetInitial(initials[0]); err != nil {
			return nil, err
		}
	}
	for _, f := range n.Finals() {
		if err := a.SetFinal(f, true); err != nil {
			return nil, err
		}
	}
	for q := range n.delta {
		for sym, targets := range n.delta[q] {
			for r := range targets {
				if err := a.AddTransition(State(q), sym, r); err != nil {
					return nil, err
				}
			}
		}
	}

	return a, nil
}

// setToStates converts a state bitset to a sorted handle slice.
func setToStates(b *bitset.BitSet) []State {
	qs := make([]State, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		qs = append(qs, State(i))
	}

	return qs
}

// sortSymbols flattens a symbol set into increasing order.
func sortSymbols(set map[Symbol]struct{}) []Symbol {
	syms := make([]Symbol, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	return syms
}
