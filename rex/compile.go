// This file assembles the full pipeline: expression in, automaton out.
package rex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/grafsm/automata"
	"github.com/katalvlaran/grafsm/determinize"
)

// CompileOption configures compilation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	alphabet []automata.Symbol
	vis      ShuntingVisitor
}

// WithAlphabet overrides the symbol set used to expand negated classes
// (default DefaultAlphabet).
func WithAlphabet(alphabet []automata.Symbol) CompileOption {
	return func(c *compileConfig) { c.alphabet = alphabet }
}

// WithShuntingVisitor attaches a visitor to the shunting-yard stage.
func WithShuntingVisitor(vis ShuntingVisitor) CompileOption {
	return func(c *compileConfig) { c.vis = vis }
}

func newCompileConfig(opts []CompileOption) *compileConfig {
	cfg := &compileConfig{alphabet: DefaultAlphabet()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// regexArity resolves postfix arities for the construction algebra.
// Counted repetitions are postfix unary even though they are absent
// from RegexOps; everything else not in the table is an operand.
func regexArity(tok Token) int {
	if op, ok := RegexOps[tok.Text]; ok {
		return op.Arity
	}
	if strings.HasPrefix(tok.Text, "{") {
		return 1
	}

	return 0
}

// operandSymbols expands an operand token (symbol, escape or class)
// into the symbol set it matches.
func operandSymbols(tok Token, alphabet []automata.Symbol) ([]automata.Symbol, error) {
	switch {
	case strings.HasPrefix(tok.Text, `\`):
		return parseEscape(tok, alphabet)
	case strings.HasPrefix(tok.Text, "["):
		return parseBracket(tok, alphabet)
	default:
		runes := []rune(tok.Text)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: unexpected operand %q at offset %d", ErrSyntax, tok.Text, tok.Pos.Offset)
		}

		return []automata.Symbol{automata.Symbol(runes[0])}, nil
	}
}

// buildFragment is the postfix evaluation rule of the construction
// algebra: operands become two-state literal fragments, operators splice
// their argument fragments.
func buildFragment(cfg *compileConfig) func(Token, []fragment) (fragment, error) {
	return func(tok Token, args []fragment) (fragment, error) {
		switch tok.Text {
		case ".":
			return concatFragments(args[0], args[1])
		case "|":
			return alternateFragments(args[0], args[1])
		case "*":
			return zeroOrMoreFragment(args[0])
		case "+":
			return oneOrMoreFragment(args[0])
		case "?":
			return zeroOrOneFragment(args[0])
		}
		if strings.HasPrefix(tok.Text, "{") {
			m, n, err := parseRepetition(tok)
			if err != nil {
				return fragment{}, err
			}

			return repeatFragment(args[0], m, n)
		}

		set, err := operandSymbols(tok, cfg.alphabet)
		if err != nil {
			return fragment{}, err
		}

		return literalFragment(set)
	}
}

// CompileNFA compiles a regular expression into an epsilon-NFA with a
// single initial and a single final state. The empty expression yields
// the one-state automaton accepting only the empty word.
func CompileNFA(expr string, opts ...CompileOption) (*automata.NFA, error) {
	cfg := newCompileConfig(opts)

	tokens, err := TokenizeRegex(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		frag := emptyFragment()
		if err := sealFragment(frag); err != nil {
			return nil, err
		}

		return frag.nfa, nil
	}

	rpn, err := ShuntingYard(tokens, RegexOps, cfg.vis)
	if err != nil {
		return nil, err
	}
	frag, err := EvalRPN(rpn, regexArity, buildFragment(cfg))
	if err != nil {
		return nil, err
	}
	if err := sealFragment(frag); err != nil {
		return nil, err
	}

	return frag.nfa, nil
}

// sealFragment promotes a finished fragment's entry and exit states to
// the automaton's initial and final states.
func sealFragment(frag fragment) error {
	if err := frag.nfa.SetInitials(frag.start); err != nil {
		return err
	}

	return frag.nfa.SetFinal(frag.final, true)
}

// CompileDFA compiles a regular expression and determinizes the result.
func CompileDFA(expr string, opts ...CompileOption) (*automata.Automaton, error) {
	nfa, err := CompileNFA(expr, opts...)
	if err != nil {
		return nil, err
	}

	return determinize.Determinize(nfa)
}
