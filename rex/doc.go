// Package rex compiles infix regular expressions into non-deterministic
// automata, and more generally evaluates infix expressions over a
// declared operator algebra.
//
// Pipeline
//
//	Stage 1 — tokenize. A rule-based lexer splits the input into operands
//	and operators, understanding escape sequences (\d, \w, \s, their
//	negations, control escapes and escaped metacharacters),
//	bracket expressions ([a-z], [^...]) and counted repetitions
//	({m}, {m,}, {m,n}). TokenizeRegex additionally inserts the
//	explicit concatenation operator "." between adjacent operands
//	(catification), so a literal dot must be escaped.
//
//	Stage 2 — ShuntingYard converts the token stream to reverse-Polish
//	(postfix) form, honoring the precedence and associativity declared in
//	an operator table. Mismatched grouping fails with ErrSyntax naming the
//	offending position.
//
//	Stage 3 — EvalRPN evaluates the postfix stream over a deque: each
//	operator pops its fixed arity of intermediate results and pushes
//	exactly one. Underflow, or anything but a single result at the end,
//	is an ErrSyntax.
//
// Algebras
//
//	Three algebras ride the same pipeline: Thompson construction
//	(CompileNFA/CompileDFA, building automata fragments), AST building
//	(ParseRegex/ParseAlgebra, building a core.Graph labeled through a
//	property map), and numeric evaluation (Compute, over the arithmetic
//	operator table with unary +/-).
//
// Operator tables
//
//	RegexOps:   * + ? postfix (precedence 4/4/3), "." concatenation (2),
//	            "|" union (1); all left-associative.
//	AlgebraOps: ^ (4, right), * / (3, left), binary + - (2, left),
//	            unary u+ u- (3, right).
//
// Errors
//
//	Every malformed input is an ErrSyntax wrap: unbalanced groups, bad
//	escape or bracket syntax, operator/operand arity mismatches, and
//	unknown input characters. Failures are deterministic; nothing is
//	retried.
package rex
