// This file implements stage 1 of the pipeline: rule-based tokenization
// of regular expressions and arithmetic expressions, including the
// catification pass that inserts explicit concatenation operators.
package rex

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// regexDef tokenizes regular expressions. Rules are tried in order:
// escape sequences and bracket/repetition groups before single-character
// metas, and any remaining character is a plain symbol.
var regexDef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escape", Pattern: `\\[\s\S]`},
	{Name: "Class", Pattern: `\[[^\]]*\]`},
	{Name: "Repeat", Pattern: `\{\s*\d+(\s*,)?(\s*\d+)?\s*\}`},
	{Name: "Meta", Pattern: `[()*+?|.]`},
	{Name: "Symbol", Pattern: `[\s\S]`},
})

// algebraDef tokenizes arithmetic expressions (whitespace is stripped
// before lexing, as operands are bare numbers).
var algebraDef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Op", Pattern: `[-+*/^()]`},
})

// lexAll runs def over expr and returns every non-EOF token.
func lexAll(def *lexer.StatefulDefinition, expr string) ([]lexer.Token, error) {
	lx, err := def.LexString("", expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	toks, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	out := toks[:0]
	for _, tok := range toks {
		if !tok.EOF() {
			out = append(out, tok)
		}
	}

	return out, nil
}

// TokenizeRegex tokenizes a regular expression and inserts the explicit
// concatenation operator "." between adjacent operands: after a symbol,
// escape, class, counted repetition, postfix operator or closing group,
// and before a symbol, escape, class or opening group.
func TokenizeRegex(expr string) ([]Token, error) {
	raw, err := lexAll(regexDef, expr)
	if err != nil {
		return nil, err
	}
	symbols := regexDef.Symbols()
	escapeType := symbols["Escape"]
	classType := symbols["Class"]
	metaType := symbols["Meta"]
	symbolType := symbols["Symbol"]

	out := make([]Token, 0, 2*len(raw))
	needsCat := false
	for _, tok := range raw {
		// Counted repetitions and postfix metas bind to the operand on
		// their left and never start a new one.
		opensOperand := tok.Type == escapeType || tok.Type == classType || tok.Type == symbolType ||
			(tok.Type == metaType && tok.Value == "(")
		if needsCat && opensOperand {
			out = append(out, Token{Text: ".", Pos: tok.Pos})
		}
		out = append(out, Token{Text: tok.Value, Pos: tok.Pos})
		needsCat = !(tok.Type == metaType && (tok.Value == "(" || tok.Value == "|"))
	}

	return out, nil
}

// TokenizeAlgebra tokenizes an arithmetic expression, stripping
// whitespace and rewriting sign operators into their unary forms
// ("u+"/"u-") when they follow another operator or open the expression.
func TokenizeAlgebra(expr string) ([]Token, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}

		return r
	}, expr)
	raw, err := lexAll(algebraDef, compact)
	if err != nil {
		return nil, err
	}
	numberType := algebraDef.Symbols()["Number"]

	out := make([]Token, 0, len(raw))
	prevIsOperator := true
	for _, tok := range raw {
		text := tok.Value
		if tok.Type == numberType {
			prevIsOperator = false
		} else {
			if prevIsOperator && text != "(" && text != ")" {
				switch text {
				case "+":
					text = "u+"
				case "-":
					text = "u-"
				default:
					return nil, fmt.Errorf("%w: unexpected operator %q at offset %d", ErrSyntax, text, tok.Pos.Offset)
				}
			}
			prevIsOperator = text != ")"
		}
		out = append(out, Token{Text: text, Pos: tok.Pos})
	}

	return out, nil
}
