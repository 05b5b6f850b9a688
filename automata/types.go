// This file declares State, Symbol, the Bottom and Epsilon sentinels, and
// the sentinel errors shared by the deterministic and non-deterministic
// models.
package automata

import (
	"errors"

	"github.com/katalvlaran/grafsm/core"
)

// State is an automaton state handle; states are graph vertices.
type State = core.Vertex

// Bottom is the implicit dead state: non-final, no outgoing transitions,
// target of every undefined transition. It is a sentinel, never a real
// vertex.
const Bottom = core.NoVertex

// Symbol is an alphabet symbol carried on automaton edges.
type Symbol rune

// Epsilon is the default symbol for transitions that consume no input.
// Epsilon transitions are only meaningful pre-determinization.
const Epsilon Symbol = 'ε'

// Sentinel errors for automaton operations.
var (
	// ErrStateNotFound indicates an operation referenced a non-existent state.
	ErrStateNotFound = errors.New("automata: state not found")

	// ErrNondeterministic indicates a determinism violation: a conflicting
	// (state, symbol) successor, an epsilon transition on a deterministic
	// automaton, or multiple initial states where one is required.
	ErrNondeterministic = errors.New("automata: nondeterministic")
)

// EdgeSymbol decodes the alphabet symbol carried on an automaton edge.
func EdgeSymbol(e core.Edge) Symbol { return Symbol(e.Tag) }
