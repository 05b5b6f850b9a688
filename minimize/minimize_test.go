package minimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafsm/automata"
	"github.com/katalvlaran/grafsm/determinize"
	"github.com/katalvlaran/grafsm/minimize"
	"github.com/katalvlaran/grafsm/rex"
)

func TestMinimize_NilInput(t *testing.T) {
	_, err := minimize.Minimize(nil)
	require.ErrorIs(t, err, minimize.ErrAutomatonNil)
}

func TestMinimize_RejectsCycles(t *testing.T) {
	a := automata.NewAutomaton(2)
	require.NoError(t, a.AddTransition(0, 'a', 1))
	require.NoError(t, a.AddTransition(1, 'b', 0))

	_, err := minimize.Minimize(a)
	require.ErrorIs(t, err, minimize.ErrCyclic)
}

// prefixTree accepts {"ab", "ac"} with one state per prefix: the two
// accepting leaves are equivalent and must merge.
func prefixTree(t *testing.T) *automata.Automaton {
	t.Helper()
	a := automata.NewAutomaton(4)
	require.NoError(t, a.AddTransition(0, 'a', 1))
	require.NoError(t, a.AddTransition(1, 'b', 2))
	require.NoError(t, a.AddTransition(1, 'c', 3))
	require.NoError(t, a.SetFinal(2, true))
	require.NoError(t, a.SetFinal(3, true))

	return a
}

func TestMinimize_MergesEquivalentLeaves(t *testing.T) {
	a := prefixTree(t)

	min, err := minimize.Minimize(a)
	require.NoError(t, err)
	require.Equal(t, 3, min.NumStates())
	require.Equal(t, 3, min.NumTransitions())
	require.True(t, min.Accepts("ab"))
	require.True(t, min.Accepts("ac"))
	require.False(t, min.Accepts("a"))
	require.False(t, min.Accepts("abc"))

	// The input is untouched.
	require.Equal(t, 4, a.NumStates())
}

func TestMinimize_Idempotence(t *testing.T) {
	min, err := minimize.Minimize(prefixTree(t))
	require.NoError(t, err)

	again, err := minimize.Minimize(min)
	require.NoError(t, err)
	require.Equal(t, min.NumStates(), again.NumStates())
	require.Equal(t, min.NumTransitions(), again.NumTransitions())
}

func TestMinimize_AlreadyMinimalChain(t *testing.T) {
	a := automata.NewAutomaton(4)
	require.NoError(t, a.AddTransition(0, 'a', 1))
	require.NoError(t, a.AddTransition(1, 'b', 2))
	require.NoError(t, a.AddTransition(2, 'c', 3))
	require.NoError(t, a.SetFinal(3, true))

	min, err := minimize.Minimize(a)
	require.NoError(t, err)
	require.Equal(t, 4, min.NumStates())
	require.True(t, min.Accepts("abc"))
}

func TestMinimize_RoundTrip(t *testing.T) {
	words := []string{"car", "cat", "cow", "dog"}

	nfa, err := rex.CompileNFA("car|cat|cow|dog")
	require.NoError(t, err)
	dfa, err := determinize.Determinize(nfa)
	require.NoError(t, err)
	min, err := minimize.Minimize(dfa)
	require.NoError(t, err)

	for _, w := range words {
		require.True(t, min.Accepts(w), w)
	}
	for _, w := range []string{"", "c", "ca", "cab", "do", "dogs", "cot"} {
		require.False(t, min.Accepts(w), w)
	}
	require.Less(t, min.NumStates(), dfa.NumStates())
}

func TestMinimize_Empty(t *testing.T) {
	min, err := minimize.Minimize(automata.NewAutomaton(0))
	require.NoError(t, err)
	require.Equal(t, 0, min.NumStates())
}
