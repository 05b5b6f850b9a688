// This file implements stage 2 (shunting yard) and stage 3 (deque-based
// postfix evaluation) of the expression pipeline.
package rex

import "fmt"

// ShuntingVisitor observes the shunting-yard run. All hooks are
// informational; they cannot alter the conversion.
type ShuntingVisitor interface {
	OnPushOperator(tok Token)
	OnPopOperator(tok Token)
	OnPushOutput(tok Token)
}

// NopShuntingVisitor is the do-nothing ShuntingVisitor.
type NopShuntingVisitor struct{}

// OnPushOperator implements ShuntingVisitor.
func (NopShuntingVisitor) OnPushOperator(Token) {}

// OnPopOperator implements ShuntingVisitor.
func (NopShuntingVisitor) OnPopOperator(Token) {}

// OnPushOutput implements ShuntingVisitor.
func (NopShuntingVisitor) OnPushOutput(Token) {}

// precedes reports whether the stacked operator o1 must be emitted
// before the incoming operator o2 per the table's precedence and
// associativity declarations.
func precedes(ops map[string]Op, o1, o2 string) bool {
	p1, p2 := ops[o1].Precedence, ops[o2].Precedence
	if ops[o2].RightAssoc {
		return p1 > p2
	}

	return p1 >= p2
}

// ShuntingYard converts an infix token stream to reverse-Polish
// (postfix) form over the given operator table. Grouping parentheses
// never reach the output. Mismatched grouping fails with ErrSyntax
// naming the offending position. Pass nil for vis to run silently.
func ShuntingYard(tokens []Token, ops map[string]Op, vis ShuntingVisitor) ([]Token, error) {
	if vis == nil {
		vis = NopShuntingVisitor{}
	}

	output := make([]Token, 0, len(tokens))
	var operators []Token

	pushOutput := func(tok Token) {
		output = append(output, tok)
		vis.OnPushOutput(tok)
	}
	popOperator := func() Token {
		tok := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		vis.OnPopOperator(tok)

		return tok
	}

	for _, tok := range tokens {
		switch {
		case tok.Text == "(":
			operators = append(operators, tok)
			vis.OnPushOperator(tok)
		case tok.Text == ")":
			matched := false
			for len(operators) > 0 {
				o := popOperator()
				if o.Text == "(" {
					matched = true

					break
				}
				pushOutput(o)
			}
			if !matched {
				return nil, fmt.Errorf("%w: unmatched ) at offset %d", ErrSyntax, tok.Pos.Offset)
			}
		default:
			if _, isOp := ops[tok.Text]; !isOp {
				pushOutput(tok)

				continue
			}
			for len(operators) > 0 {
				top := operators[len(operators)-1].Text
				if _, topIsOp := ops[top]; !topIsOp || !precedes(ops, top, tok.Text) {
					break
				}
				pushOutput(popOperator())
			}
			operators = append(operators, tok)
			vis.OnPushOperator(tok)
		}
	}

	for len(operators) > 0 {
		o := popOperator()
		if o.Text == "(" {
			return nil, fmt.Errorf("%w: unmatched ( at offset %d", ErrSyntax, o.Pos.Offset)
		}
		pushOutput(o)
	}

	return output, nil
}

// ArityFunc resolves the number of operands a postfix token consumes;
// zero marks an operand. TableArity derives one from an operator table.
type ArityFunc func(tok Token) int

// TableArity resolves arity by exact-text lookup in ops.
func TableArity(ops map[string]Op) ArityFunc {
	return func(tok Token) int { return ops[tok.Text].Arity }
}

// EvalRPN evaluates a reverse-Polish token stream over a working deque.
// Every token is handed to apply together with the operands popped per
// arityOf; apply pushes back exactly one result. An operand underflow or
// anything but a single final result fails with ErrSyntax.
func EvalRPN[T any](rpn []Token, arityOf ArityFunc, apply func(tok Token, args []T) (T, error)) (T, error) {
	var zero T
	deque := make([]T, 0, len(rpn))
	for _, tok := range rpn {
		arity := arityOf(tok)
		if arity > len(deque) {
			return zero, fmt.Errorf("%w: operator %q at offset %d wants %d operand(s), have %d",
				ErrSyntax, tok.Text, tok.Pos.Offset, arity, len(deque))
		}
		args := deque[len(deque)-arity:]
		v, err := apply(tok, args)
		if err != nil {
			return zero, err
		}
		deque = append(deque[:len(deque)-arity], v)
	}
	if len(deque) != 1 {
		return zero, fmt.Errorf("%w: evaluation left %d results, want exactly 1", ErrSyntax, len(deque))
	}

	return deque[0], nil
}
