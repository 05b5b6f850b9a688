package rex_test

import (
	"fmt"

	"github.com/katalvlaran/grafsm/rex"
)

// ExampleCompileDFA compiles a pattern and tests membership.
func ExampleCompileDFA() {
	dfa, err := rex.CompileDFA("ab*")
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(dfa.Accepts("abbb"), dfa.Accepts("ba"))
	// Output: true false
}

// ExampleCompute evaluates arithmetic with the same pipeline.
func ExampleCompute() {
	v, err := rex.Compute("(1+2)*3^2")
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(v)
	// Output: 27
}
