// This file declares tokens, operator tables and sentinel errors for the
// expression pipeline.
package rex

import (
	"errors"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrSyntax indicates a malformed expression: unbalanced grouping, a bad
// escape/bracket/repetition, an arity mismatch during postfix
// evaluation, or an unknown input character.
var ErrSyntax = errors.New("rex: syntax error")

// Token is one unit of a tokenized expression: an operand, an operator,
// or grouping punctuation, together with its source position for
// diagnostics.
type Token struct {
	Text string
	Pos  lexer.Position
}

// Op declares one operator of an algebra: how many operands it consumes,
// how strongly it binds, and how ties in precedence associate.
type Op struct {
	Arity      int
	Precedence int
	RightAssoc bool
}

// RegexOps is the operator table for plain regular-expression syntax.
// "." is the explicit concatenation operator inserted by catification;
// counted repetitions ("{m,n}") are handled as postfix operands by the
// construction algebra and deliberately absent here.
var RegexOps = map[string]Op{
	// Unary postfix operators
	"*": {Arity: 1, Precedence: 4},
	"+": {Arity: 1, Precedence: 4},
	"?": {Arity: 1, Precedence: 3},
	// Binary operators
	".": {Arity: 2, Precedence: 2},
	"|": {Arity: 2, Precedence: 1},
}

// AlgebraOps is the operator table for arithmetic expressions, used when
// only a syntax tree or a numeric result is desired. "u+"/"u-" are the
// unary forms the tokenizer substitutes for sign operators.
var AlgebraOps = map[string]Op{
	// Unary operators
	"u+": {Arity: 1, Precedence: 3, RightAssoc: true},
	"u-": {Arity: 1, Precedence: 3, RightAssoc: true},
	// Binary operators
	"^": {Arity: 2, Precedence: 4, RightAssoc: true},
	"*": {Arity: 2, Precedence: 3},
	"/": {Arity: 2, Precedence: 3},
	"+": {Arity: 2, Precedence: 2},
	"-": {Arity: 2, Precedence: 2},
}
