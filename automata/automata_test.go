package automata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafsm/automata"
	"github.com/katalvlaran/grafsm/core"
)

// buildABC returns a DFA accepting exactly {"ab", "ac"}.
func buildABC(t *testing.T) *automata.Automaton {
	t.Helper()
	a := automata.NewAutomaton(4)
	require.NoError(t, a.AddTransition(0, 'a', 1))
	require.NoError(t, a.AddTransition(1, 'b', 2))
	require.NoError(t, a.AddTransition(1, 'c', 3))
	require.NoError(t, a.SetFinal(2, true))
	require.NoError(t, a.SetFinal(3, true))

	return a
}

// TestAutomaton_DeltaBottom checks lazy dead-state semantics.
func TestAutomaton_DeltaBottom(t *testing.T) {
	a := buildABC(t)

	require.Equal(t, automata.State(1), a.Delta(0, 'a'))
	require.Equal(t, automata.Bottom, a.Delta(0, 'z'), "undefined transition resolves to Bottom")
	require.Equal(t, automata.Bottom, a.Delta(automata.Bottom, 'a'), "Bottom has no outgoing transitions")
	require.False(t, a.IsFinal(automata.Bottom), "Bottom is never final")
	require.Equal(t, 4, a.NumStates(), "Bottom is not materialized")
}

// TestAutomaton_Determinism: conflicting successors and epsilon edges
// are reported, not silently tolerated.
func TestAutomaton_Determinism(t *testing.T) {
	a := buildABC(t)

	require.NoError(t, a.AddTransition(0, 'a', 1), "re-installing is a no-op")
	require.ErrorIs(t, a.AddTransition(0, 'a', 2), automata.ErrNondeterministic)
	require.ErrorIs(t, a.AddTransition(0, automata.Epsilon, 1), automata.ErrNondeterministic)
	require.ErrorIs(t, a.AddTransition(0, 'x', 99), automata.ErrStateNotFound)
}

// TestAutomaton_Accepts checks membership.
func TestAutomaton_Accepts(t *testing.T) {
	a := buildABC(t)

	for _, w := range []string{"ab", "ac"} {
		require.True(t, a.Accepts(w), "want accept %q", w)
	}
	for _, w := range []string{"", "a", "b", "abc", "ba"} {
		require.False(t, a.Accepts(w), "want reject %q", w)
	}
}

// TestAutomaton_Enumeration checks deterministic orders and interop.
func TestAutomaton_Enumeration(t *testing.T) {
	a := buildABC(t)

	require.Equal(t, []automata.Symbol{'b', 'c'}, a.Sigma(1))
	require.Equal(t, []automata.Symbol{'a', 'b', 'c'}, a.Alphabet())
	require.Equal(t, []automata.State{2, 3}, a.Finals())
	require.Equal(t, automata.State(0), a.Initial())

	out := a.OutEdges(1)
	require.Len(t, out, 2)
	require.Equal(t, core.Edge{From: 1, To: 2, Tag: int64('b')}, out[0])
	require.Equal(t, automata.Symbol('c'), automata.EdgeSymbol(out[1]))
	require.Nil(t, a.OutEdges(automata.Bottom))
}

// TestAutomaton_Clone verifies independence.
func TestAutomaton_Clone(t *testing.T) {
	a := buildABC(t)
	c := a.Clone()

	require.NoError(t, c.SetFinal(2, false))
	require.True(t, a.IsFinal(2), "mutating the clone must not touch the original")
	require.Equal(t, a.NumTransitions(), c.NumTransitions())
}

// buildEpsNFA returns an NFA over {a, b}: 0 -ε-> 1, 0 -a-> 2,
// 1 -b-> 2, final 2. Its language is exactly {"a", "b"}.
func buildEpsNFA(t *testing.T) *automata.NFA {
	t.Helper()
	n := automata.NewNFA(3)
	require.NoError(t, n.AddTransition(0, automata.Epsilon, 1))
	require.NoError(t, n.AddTransition(0, 'a', 2))
	require.NoError(t, n.AddTransition(1, 'b', 2))
	require.NoError(t, n.SetFinal(2, true))

	return n
}

// TestNFA_EpsilonClosure checks closure and epsilon-closed Delta.
func TestNFA_EpsilonClosure(t *testing.T) {
	n := buildEpsNFA(t)

	require.Equal(t, []automata.State{0, 1}, n.EpsilonClosure([]automata.State{0}))
	require.Equal(t, []automata.State{1}, n.EpsilonClosure([]automata.State{1}))
	require.Equal(t, []automata.State{2}, n.Delta(0, 'b'), "Delta closes before stepping")
	require.Equal(t, []automata.Symbol{'a', 'b'}, n.Sigma(0), "Sigma sees through epsilon")
	require.Equal(t, []automata.Symbol{'a', 'b'}, n.Alphabet(), "epsilon is not part of the alphabet")
}

// TestNFA_Accepts checks set-simulation membership.
func TestNFA_Accepts(t *testing.T) {
	n := buildEpsNFA(t)

	require.True(t, n.Accepts("a"))
	require.True(t, n.Accepts("b"))
	require.False(t, n.Accepts(""))
	require.False(t, n.Accepts("ab"))
}

// TestNFA_MultiValued: duplicate transitions collapse, multi-successors
// are allowed.
func TestNFA_MultiValued(t *testing.T) {
	n := automata.NewNFA(3)
	require.NoError(t, n.AddTransition(0, 'a', 1))
	require.NoError(t, n.AddTransition(0, 'a', 2))
	require.NoError(t, n.AddTransition(0, 'a', 2))
	require.Equal(t, 2, n.NumTransitions())
	require.Equal(t, []automata.State{1, 2}, n.DeltaOneStep([]automata.State{0}, 'a'))
}

// TestCheckDeterministic covers the determinism helper paths.
func TestCheckDeterministic(t *testing.T) {
	det := automata.NewNFA(2)
	require.NoError(t, det.AddTransition(0, 'a', 1))
	require.NoError(t, automata.CheckDeterministic(det))

	eps := buildEpsNFA(t)
	require.ErrorIs(t, automata.CheckDeterministic(eps), automata.ErrNondeterministic)

	multi := automata.NewNFA(3)
	require.NoError(t, multi.AddTransition(0, 'a', 1))
	require.NoError(t, multi.AddTransition(0, 'a', 2))
	require.ErrorIs(t, automata.CheckDeterministic(multi), automata.ErrNondeterministic)

	twoStarts := automata.NewNFA(2)
	require.NoError(t, twoStarts.SetInitial(1, true))
	require.ErrorIs(t, automata.CheckDeterministic(twoStarts), automata.ErrNondeterministic)
}

// TestFromNFA converts a deterministic NFA and rejects ambiguous ones.
func TestFromNFA(t *testing.T) {
	det := automata.NewNFA(3)
	require.NoError(t, det.AddTransition(0, 'a', 1))
	require.NoError(t, det.AddTransition(1, 'b', 2))
	require.NoError(t, det.SetFinal(2, true))

	a, err := automata.FromNFA(det)
	require.NoError(t, err)
	require.True(t, a.Accepts("ab"))
	require.False(t, a.Accepts("a"))

	_, err = automata.FromNFA(buildEpsNFA(t))
	require.ErrorIs(t, err, automata.ErrNondeterministic)
}

// Both models must satisfy the read capability contract.
var (
	_ core.Incidence = (*automata.Automaton)(nil)
	_ core.Incidence = (*automata.NFA)(nil)
)
