package minimize

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/grafsm/automata"
	"github.com/katalvlaran/grafsm/traverse"
)

var (
	// ErrAutomatonNil indicates a nil input automaton.
	ErrAutomatonNil = errors.New("minimize: nil automaton")

	// ErrCyclic indicates the input violates the acyclicity precondition.
	ErrCyclic = errors.New("minimize: automaton has a cycle")
)

// Minimize returns the canonical minimal automaton accepting the same
// language as a. The input must be acyclic and is never mutated; the
// result is a fresh automaton whose states are the surviving
// equivalence classes, numbered in increasing order of their
// smallest original member. Unreachable states are merged like any
// others, not pruned.
func Minimize(a *automata.Automaton) (*automata.Automaton, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	if cyclic, err := traverse.HasCycle(a); err != nil {
		return nil, err
	} else if cyclic {
		return nil, ErrCyclic
	}

	n := a.NumStates()
	if n == 0 {
		return automata.NewAutomaton(0), nil
	}

	heights, maxHeight := stateHeights(a)

	byHeight := make([][]automata.State, maxHeight+1)
	for q := 0; q < n; q++ {
		h := heights[q]
		byHeight[h] = append(byHeight[h], automata.State(q))
	}

	// rep[q] is the representative of q's equivalence class, always the
	// smallest-id member. Layers are processed bottom-up so that every
	// signature refers only to settled classes.
	rep := make([]automata.State, n)
	for _, layer := range byHeight {
		groups := make(map[string]automata.State)
		for _, q := range layer {
			sig := signatureOf(a, q, rep)
			if leader, ok := groups[sig]; ok {
				rep[q] = leader
			} else {
				groups[sig] = q
				rep[q] = q
			}
		}
	}

	return buildQuotient(a, rep)
}

// stateHeights computes, for every state, the length of the longest
// transition path to a sink, by memoized depth-first descent.
func stateHeights(a *automata.Automaton) ([]int, int) {
	n := a.NumStates()
	heights := make([]int, n)
	for q := range heights {
		heights[q] = -1
	}

	maxHeight := 0
	var descend func(q automata.State) int
	descend = func(q automata.State) int {
		if heights[q] >= 0 {
			return heights[q]
		}
		h := 0
		for _, e := range a.OutEdges(q) {
			if d := descend(e.To) + 1; d > h {
				h = d
			}
		}
		heights[q] = h
		if h > maxHeight {
			maxHeight = h
		}

		return h
	}
	for q := 0; q < n; q++ {
		descend(automata.State(q))
	}

	return heights, maxHeight
}

// signatureOf canonicalizes a state's residual behavior: finality plus
// the (symbol, target class) pairs in symbol order.
func signatureOf(a *automata.Automaton, q automata.State, rep []automata.State) string {
	var b strings.Builder
	if a.IsFinal(q) {
		b.WriteByte('F')
	}
	for _, e := range a.OutEdges(q) {
		b.WriteByte('|')
		b.WriteRune(rune(automata.EdgeSymbol(e)))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(rep[e.To])))
	}

	return b.String()
}

// buildQuotient assembles the minimal automaton from the class
// representatives.
func buildQuotient(a *automata.Automaton, rep []automata.State) (*automata.Automaton, error) {
	out := automata.NewAutomaton(0)

	renumber := make([]automata.State, len(rep))
	for q := range rep {
		if rep[q] == automata.State(q) {
			renumber[q] = out.AddState()
			if a.IsFinal(automata.State(q)) {
				if err := out.SetFinal(renumber[q], true); err != nil {
					return nil, err
				}
			}
		}
	}

	for q := range rep {
		if rep[q] != automata.State(q) {
			continue
		}
		from := renumber[q]
		for _, e := range a.OutEdges(automata.State(q)) {
			to := renumber[rep[e.To]]
			if err := out.AddTransition(from, automata.EdgeSymbol(e), to); err != nil {
				return nil, err
			}
		}
	}

	if q0 := a.Initial(); q0 != automata.Bottom {
		if err := out.SetInitial(renumber[rep[q0]]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
