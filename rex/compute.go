// This file evaluates arithmetic expressions numerically, exercising
// the same three-stage pipeline as the automaton compiler over a float
// algebra.
package rex

import (
	"fmt"
	"math"
	"strconv"
)

// Compute evaluates an arithmetic expression. Supported: decimal
// literals, unary sign, "+", "-", "*", "/", right-associative "^" and
// grouping parentheses.
func Compute(expr string) (float64, error) {
	tokens, err := TokenizeAlgebra(expr)
	if err != nil {
		return 0, err
	}
	rpn, err := ShuntingYard(tokens, AlgebraOps, nil)
	if err != nil {
		return 0, err
	}

	return EvalRPN(rpn, TableArity(AlgebraOps), applyAlgebra)
}

func applyAlgebra(tok Token, args []float64) (float64, error) {
	switch tok.Text {
	case "u+":
		return args[0], nil
	case "u-":
		return -args[0], nil
	case "+":
		return args[0] + args[1], nil
	case "-":
		return args[0] - args[1], nil
	case "*":
		return args[0] * args[1], nil
	case "/":
		return args[0] / args[1], nil
	case "^":
		return math.Pow(args[0], args[1]), nil
	}

	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q at offset %d", ErrSyntax, tok.Text, tok.Pos.Offset)
	}

	return v, nil
}
