// This file implements the Thompson construction: each regular
// expression fragment becomes a small epsilon-NFA with one designated
// entry and one designated exit state, and operators splice fragments
// together with epsilon transitions.
package rex

import "github.com/katalvlaran/grafsm/automata"

// fragment is a partially built epsilon-NFA with a single entry and a
// single exit state. Initial and final markers are only assigned once
// the whole expression has been assembled.
type fragment struct {
	nfa   *automata.NFA
	start automata.State
	final automata.State
}

// emptyFragment matches exactly the empty word.
func emptyFragment() fragment {
	nfa := automata.NewNFA(0)
	s := nfa.AddState()

	return fragment{nfa: nfa, start: s, final: s}
}

// literalFragment matches any single symbol of set. An empty set yields
// a fragment matching nothing.
func literalFragment(set []automata.Symbol) (fragment, error) {
	nfa := automata.NewNFA(0)
	s, f := nfa.AddState(), nfa.AddState()
	for _, sym := range set {
		if err := nfa.AddTransition(s, sym, f); err != nil {
			return fragment{}, err
		}
	}

	return fragment{nfa: nfa, start: s, final: f}, nil
}

// graft copies every state and transition of src into dst and returns
// the handle offset that relocates src states inside dst.
func graft(dst, src *automata.NFA) (automata.State, error) {
	offset := automata.State(dst.NumStates())
	for i := 0; i < src.NumStates(); i++ {
		dst.AddState()
	}
	for q := 0; q < src.NumStates(); q++ {
		for _, e := range src.OutEdges(automata.State(q)) {
			if err := dst.AddTransition(e.From+offset, automata.Symbol(e.Tag), e.To+offset); err != nil {
				return 0, err
			}
		}
	}

	return offset, nil
}

func (f fragment) clone() fragment {
	return fragment{nfa: f.nfa.Clone(), start: f.start, final: f.final}
}

func (f fragment) eps(from, to automata.State) error {
	return f.nfa.AddTransition(from, f.nfa.Epsilon(), to)
}

// concatFragments matches a followed by b.
func concatFragments(a, b fragment) (fragment, error) {
	offset, err := graft(a.nfa, b.nfa)
	if err != nil {
		return fragment{}, err
	}
	if err := a.eps(a.final, b.start+offset); err != nil {
		return fragment{}, err
	}

	return fragment{nfa: a.nfa, start: a.start, final: b.final + offset}, nil
}

// alternateFragments matches a or b.
func alternateFragments(a, b fragment) (fragment, error) {
	offset, err := graft(a.nfa, b.nfa)
	if err != nil {
		return fragment{}, err
	}
	s, f := a.nfa.AddState(), a.nfa.AddState()
	for _, e := range [][2]automata.State{
		{s, a.start}, {s, b.start + offset},
		{a.final, f}, {b.final + offset, f},
	} {
		if err := a.eps(e[0], e[1]); err != nil {
			return fragment{}, err
		}
	}

	return fragment{nfa: a.nfa, start: s, final: f}, nil
}

// closeFragment wraps a in fresh entry and exit states; skip adds the
// empty-word bypass, loop adds the repeat-back edge. The four
// (skip, loop) combinations realize ?, *, + and a plain wrap.
func closeFragment(a fragment, skip, loop bool) (fragment, error) {
	s, f := a.nfa.AddState(), a.nfa.AddState()
	edges := [][2]automata.State{{s, a.start}, {a.final, f}}
	if skip {
		edges = append(edges, [2]automata.State{s, f})
	}
	if loop {
		edges = append(edges, [2]automata.State{a.final, a.start})
	}
	for _, e := range edges {
		if err := a.eps(e[0], e[1]); err != nil {
			return fragment{}, err
		}
	}

	return fragment{nfa: a.nfa, start: s, final: f}, nil
}

func zeroOrOneFragment(a fragment) (fragment, error)  { return closeFragment(a, true, false) }
func zeroOrMoreFragment(a fragment) (fragment, error) { return closeFragment(a, true, true) }
func oneOrMoreFragment(a fragment) (fragment, error)  { return closeFragment(a, false, true) }

// repeatFragment matches between m and n copies of a, with n equal to
// Unbounded for the open-ended form. The standard rewriting applies: m
// mandatory copies, then either a Kleene tail or n-m optional copies.
func repeatFragment(a fragment, m, n int) (fragment, error) {
	blueprint := a.clone()

	var (
		result fragment
		err    error
	)
	switch {
	case m == 0:
		result = emptyFragment()
	default:
		result = a
		for i := 1; i < m; i++ {
			if result, err = concatFragments(result, blueprint.clone()); err != nil {
				return fragment{}, err
			}
		}
	}

	switch {
	case n == Unbounded:
		tail, terr := zeroOrMoreFragment(blueprint.clone())
		if terr != nil {
			return fragment{}, terr
		}
		result, err = concatFragments(result, tail)
	default:
		for i := m; i < n; i++ {
			tail, terr := zeroOrOneFragment(blueprint.clone())
			if terr != nil {
				return fragment{}, terr
			}
			if result, err = concatFragments(result, tail); err != nil {
				return fragment{}, err
			}
		}
	}
	if err != nil {
		return fragment{}, err
	}

	return result, nil
}
