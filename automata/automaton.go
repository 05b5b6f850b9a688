// This file implements the deterministic Automaton model.
package automata

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/grafsm/core"
)

// Automaton is a deterministic finite automaton. The transition relation
// is a partial function per (state, symbol): Delta resolves undefined
// pairs to Bottom without materializing a dead state.
type Automaton struct {
	delta   []map[Symbol]State
	initial State
	finals  *bitset.BitSet
	numTr   int
}

// NewAutomaton creates an automaton with n states 0..n-1.
// State 0 is the initial state by convention; override with SetInitial.
func NewAutomaton(n int) *Automaton {
	a := &Automaton{
		delta:  make([]map[Symbol]State, 0, n),
		finals: bitset.New(uint(max(n, 1))),
	}
	for i := 0; i < n; i++ {
		a.AddState()
	}

	return a
}

// AddState creates a new state and returns its handle.
func (a *Automaton) AddState() State {
	a.delta = append(a.delta, nil)

	return State(len(a.delta) - 1)
}

// HasState reports whether q is a live handle.
func (a *Automaton) HasState(q State) bool {
	return q >= 0 && int(q) < len(a.delta)
}

// NumStates returns the number of states (Bottom excluded).
func (a *Automaton) NumStates() int { return len(a.delta) }

// NumVertices implements core.Incidence.
func (a *Automaton) NumVertices() int { return len(a.delta) }

// NumTransitions returns the number of defined transitions.
func (a *Automaton) NumTransitions() int { return a.numTr }

// SetInitial designates q as the initial state.
func (a *Automaton) SetInitial(q State) error {
	if !a.HasState(q) {
		return ErrStateNotFound
	}
	a.initial = q

	return nil
}

// Initial returns the initial state, or Bottom on an empty automaton.
func (a *Automaton) Initial() State {
	if len(a.delta) == 0 {
		return Bottom
	}

	return a.initial
}

// SetFinal marks or unmarks q as final.
func (a *Automaton) SetFinal(q State, final bool) error {
	if !a.HasState(q) {
		return ErrStateNotFound
	}
	if final {
		a.finals.Set(uint(q))
	} else {
		a.finals.Clear(uint(q))
	}

	return nil
}

// IsFinal reports whether q is final. Bottom is never final.
func (a *Automaton) IsFinal(q State) bool {
	return a.HasState(q) && a.finals.Test(uint(q))
}

// Finals returns the final states in increasing order.
func (a *Automaton) Finals() []State {
	fs := make([]State, 0, a.finals.Count())
	for i, ok := a.finals.NextSet(0); ok; i, ok = a.finals.NextSet(i + 1) {
		fs = append(fs, State(i))
	}

	return fs
}

// AddTransition installs q --sym--> r. Installing the same transition
// twice is a no-op; a conflicting successor for (q, sym) or an Epsilon
// symbol is a determinism violation and fails with ErrNondeterministic.
func (a *Automaton) AddTransition(q State, sym Symbol, r State) error {
	if !a.HasState(q) || !a.HasState(r) {
		return ErrStateNotFound
	}
	if sym == Epsilon {
		return fmt.Errorf("%w: epsilon transition %d→%d", ErrNondeterministic, q, r)
	}
	if cur, ok := a.delta[q][sym]; ok {
		if cur == r {
			return nil
		}

		return fmt.Errorf("%w: state %d has two successors on %q", ErrNondeterministic, q, sym)
	}
	if a.delta[q] == nil {
		a.delta[q] = make(map[Symbol]State)
	}
	a.delta[q][sym] = r
	a.numTr++

	return nil
}

// Delta returns the successor of q on sym, or Bottom when undefined.
// Delta(Bottom, sym) is Bottom: the dead state has no outgoing
// transitions.
func (a *Automaton) Delta(q State, sym Symbol) State {
	if !a.HasState(q) {
		return Bottom
	}
	if r, ok := a.delta[q][sym]; ok {
		return r
	}

	return Bottom
}

// Sigma returns the symbols with a defined transition out of q,
// in increasing order.
func (a *Automaton) Sigma(q State) []Symbol {
	if !a.HasState(q) {
		return nil
	}
	syms := make([]Symbol, 0, len(a.delta[q]))
	for sym := range a.delta[q] {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	return syms
}

// Alphabet returns every symbol used by some transition, in increasing
// order.
func (a *Automaton) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for q := range a.delta {
		for sym := range a.delta[q] {
			seen[sym] = struct{}{}
		}
	}
	syms := make([]Symbol, 0, len(seen))
	for sym := range seen {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	return syms
}

// OutEdges implements core.Incidence: transitions of q as edges ordered
// by symbol, with the symbol encoded in Edge.Tag.
func (a *Automaton) OutEdges(v core.Vertex) []core.Edge {
	syms := a.Sigma(v)
	if len(syms) == 0 {
		return nil
	}
	es := make([]core.Edge, len(syms))
	for i, sym := range syms {
		es[i] = core.Edge{From: v, To: a.delta[v][sym], Tag: int64(sym)}
	}

	return es
}

// Accepts reports whether the automaton accepts word: it walks the
// transition function from the initial state and checks finality.
// Reaching Bottom rejects immediately.
func (a *Automaton) Accepts(word string) bool {
	q := a.Initial()
	for _, r := range word {
		q = a.Delta(q, Symbol(r))
		if q == Bottom {
			return false
		}
	}

	return a.IsFinal(q)
}

// Clone returns an independent deep copy preserving handles, the initial
// state and finality.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		delta:   make([]map[Symbol]State, len(a.delta)),
		initial: a.initial,
		finals:  a.finals.Clone(),
		numTr:   a.numTr,
	}
	for q := range a.delta {
		if a.delta[q] == nil {
			continue
		}
		c.delta[q] = make(map[Symbol]State, len(a.delta[q]))
		for sym, r := range a.delta[q] {
			c.delta[q][sym] = r
		}
	}

	return c
}
