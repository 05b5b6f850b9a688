package determinize

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/grafsm/automata"
)

// ErrNFANil indicates a nil input automaton.
var ErrNFANil = errors.New("determinize: nil automaton")

// Option configures the subset construction.
type Option func(*options)

type options struct {
	complete bool
}

// WithComplete materializes the rejecting empty subset as an explicit
// trash state with a self-loop on every alphabet symbol, so the result
// defines a transition for every (state, symbol) pair.
func WithComplete() Option {
	return func(o *options) { o.complete = true }
}

// subsetKey canonicalizes a sorted state set so that equal sets always
// produce the same key.
func subsetKey(subset []automata.State) string {
	var b strings.Builder
	for i, q := range subset {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(q)))
	}

	return b.String()
}

// subsetSymbols returns the non-epsilon symbols defined on any member
// of subset, in increasing order.
func subsetSymbols(n *automata.NFA, subset []automata.State) []automata.Symbol {
	seen := make(map[automata.Symbol]bool)
	var syms []automata.Symbol
	for _, q := range subset {
		for _, e := range n.OutEdges(q) {
			sym := automata.EdgeSymbol(e)
			if sym != n.Epsilon() && !seen[sym] {
				seen[sym] = true
				syms = append(syms, sym)
			}
		}
	}
	slices.Sort(syms)

	return syms
}

// Determinize builds a deterministic automaton accepting the same
// language as n by subset construction. Missing transitions stay
// undefined (Bottom) unless WithComplete is given. The start state of
// the result is the epsilon closure of n's initial states, even when
// that closure is empty.
func Determinize(n *automata.NFA, opts ...Option) (*automata.Automaton, error) {
	if n == nil {
		return nil, ErrNFANil
	}
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	dfa := automata.NewAutomaton(0)
	ids := make(map[string]automata.State)
	var worklist [][]automata.State

	intern := func(subset []automata.State) (automata.State, error) {
		key := subsetKey(subset)
		if q, ok := ids[key]; ok {
			return q, nil
		}
		q := dfa.AddState()
		ids[key] = q
		worklist = append(worklist, subset)
		for _, member := range subset {
			if n.IsFinal(member) {
				if err := dfa.SetFinal(q, true); err != nil {
					return automata.Bottom, err
				}

				break
			}
		}

		return q, nil
	}

	start, err := intern(n.EpsilonClosure(n.Initials()))
	if err != nil {
		return nil, err
	}
	if err := dfa.SetInitial(start); err != nil {
		return nil, err
	}

	for len(worklist) > 0 {
		subset := worklist[0]
		worklist = worklist[1:]
		from := ids[subsetKey(subset)]

		for _, sym := range subsetSymbols(n, subset) {
			next := n.EpsilonClosure(n.DeltaOneStep(subset, sym))
			if len(next) == 0 && !cfg.complete {
				continue
			}
			to, err := intern(next)
			if err != nil {
				return nil, err
			}
			if err := dfa.AddTransition(from, sym, to); err != nil {
				return nil, err
			}
		}
	}

	if cfg.complete {
		if err := completeAutomaton(dfa, ids); err != nil {
			return nil, err
		}
	}

	return dfa, nil
}

// completeAutomaton backfills every undefined (state, symbol) pair with
// a transition into the trash state, creating it if the construction
// never reached the empty subset.
func completeAutomaton(dfa *automata.Automaton, ids map[string]automata.State) error {
	alphabet := dfa.Alphabet()
	if len(alphabet) == 0 {
		return nil
	}

	trash, ok := ids[""]
	if !ok {
		trash = dfa.AddState()
		ids[""] = trash
	}
	for q := automata.State(0); int(q) < dfa.NumStates(); q++ {
		for _, sym := range alphabet {
			if dfa.Delta(q, sym) == automata.Bottom {
				if err := dfa.AddTransition(q, sym, trash); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
