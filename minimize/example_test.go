package minimize_test

import (
	"fmt"

	"github.com/katalvlaran/grafsm/automata"
	"github.com/katalvlaran/grafsm/minimize"
)

// ExampleMinimize collapses the two equivalent accepting states of an
// {ab, ac} acceptor.
func ExampleMinimize() {
	a := automata.NewAutomaton(4)
	_ = a.AddTransition(0, 'a', 1)
	_ = a.AddTransition(1, 'b', 2)
	_ = a.AddTransition(1, 'c', 3)
	_ = a.SetFinal(2, true)
	_ = a.SetFinal(3, true)

	min, err := minimize.Minimize(a)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(min.NumStates(), min.Accepts("ac"))
	// Output: 3 true
}
