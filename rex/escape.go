package rex

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/grafsm/automata"
)

// Unbounded marks the open upper end of a counted repetition, as in
// "a{2,}".
const Unbounded = -1

// DefaultAlphabet returns the symbol set negated classes are expanded
// against: printable ASCII plus common whitespace escapes.
func DefaultAlphabet() []automata.Symbol {
	alphabet := make([]automata.Symbol, 0, 100)
	for r := rune(' '); r <= '~'; r++ {
		alphabet = append(alphabet, automata.Symbol(r))
	}
	alphabet = append(alphabet, '\t', '\n', '\r', '\v', '\f')

	return alphabet
}

// parseRepetition decodes a "{m}", "{m,}" or "{m,n}" token into its
// bounds; n is Unbounded for the open form. Inner whitespace is
// tolerated.
func parseRepetition(tok Token) (m, n int, err error) {
	body := strings.TrimSpace(strings.Trim(tok.Text, "{}"))
	lo, hi, ranged := strings.Cut(body, ",")

	m, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad repetition %q at offset %d", ErrSyntax, tok.Text, tok.Pos.Offset)
	}
	if !ranged {
		return m, m, nil
	}

	hi = strings.TrimSpace(hi)
	if hi == "" {
		return m, Unbounded, nil
	}
	n, err = strconv.Atoi(hi)
	if err != nil || n < m {
		return 0, 0, fmt.Errorf("%w: bad repetition %q at offset %d", ErrSyntax, tok.Text, tok.Pos.Offset)
	}

	return m, n, nil
}

// escapeClasses maps the one-letter escapes to their symbol sets. The
// negated forms are resolved against the active alphabet at expansion
// time.
var escapeClasses = map[rune]string{
	'd': "0123456789",
	's': " \t\n\r\v\f",
	'w': "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_",
}

// controlEscapes maps the textual control escapes to their runes.
var controlEscapes = map[rune]rune{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n',
	'r': '\r', 't': '\t', 'v': '\v',
}

// parseEscape expands a two-character escape token into the set of
// symbols it stands for. Metacharacter escapes such as `\.` and `\|`
// yield the literal rune; class escapes such as `\d` and `\W` yield
// the class members drawn from alphabet.
func parseEscape(tok Token, alphabet []automata.Symbol) ([]automata.Symbol, error) {
	body := []rune(tok.Text)
	if len(body) != 2 || body[0] != '\\' {
		return nil, fmt.Errorf("%w: bad escape %q at offset %d", ErrSyntax, tok.Text, tok.Pos.Offset)
	}
	r := body[1]

	if chars, ok := escapeClasses[r]; ok {
		return symbolSet(chars), nil
	}
	if lower := r + ('a' - 'A'); r >= 'A' && r <= 'Z' {
		if chars, ok := escapeClasses[lower]; ok {
			return complementOf(symbolSet(chars), alphabet), nil
		}
	}
	if c, ok := controlEscapes[r]; ok {
		return []automata.Symbol{automata.Symbol(c)}, nil
	}

	// Everything else escapes to itself: \. \| \( \\ \[ and friends.
	return []automata.Symbol{automata.Symbol(r)}, nil
}

// parseBracket expands a "[...]" class token into the set of symbols
// it matches. Supported inside the brackets: leading "^" negation,
// "a-z" ranges, the class escapes of parseEscape, and "]" or "-" as
// literals in their conventional positions.
func parseBracket(tok Token, alphabet []automata.Symbol) ([]automata.Symbol, error) {
	body := []rune(strings.TrimSuffix(strings.TrimPrefix(tok.Text, "["), "]"))

	negated := false
	if len(body) > 0 && body[0] == '^' {
		negated = true
		body = body[1:]
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty class at offset %d", ErrSyntax, tok.Pos.Offset)
	}

	members := make(map[automata.Symbol]struct{})
	for i := 0; i < len(body); i++ {
		r := body[i]
		switch {
		case r == '\\' && i+1 < len(body):
			sub := Token{Text: string(body[i : i+2]), Pos: tok.Pos}
			set, err := parseEscape(sub, alphabet)
			if err != nil {
				return nil, err
			}
			for _, s := range set {
				members[s] = struct{}{}
			}
			i++
		case i+2 < len(body) && body[i+1] == '-':
			lo, hi := r, body[i+2]
			if hi < lo {
				return nil, fmt.Errorf("%w: inverted range %c-%c at offset %d", ErrSyntax, lo, hi, tok.Pos.Offset)
			}
			for c := lo; c <= hi; c++ {
				members[automata.Symbol(c)] = struct{}{}
			}
			i += 2
		default:
			members[automata.Symbol(r)] = struct{}{}
		}
	}

	set := make([]automata.Symbol, 0, len(members))
	for s := range members {
		set = append(set, s)
	}
	sortSymbolSlice(set)
	if negated {
		return complementOf(set, alphabet), nil
	}

	return set, nil
}

func symbolSet(chars string) []automata.Symbol {
	set := make([]automata.Symbol, 0, len(chars))
	for _, r := range chars {
		set = append(set, automata.Symbol(r))
	}
	sortSymbolSlice(set)

	return set
}

func complementOf(set, alphabet []automata.Symbol) []automata.Symbol {
	drop := make(map[automata.Symbol]struct{}, len(set))
	for _, s := range set {
		drop[s] = struct{}{}
	}
	out := make([]automata.Symbol, 0, len(alphabet))
	for _, s := range alphabet {
		if _, skip := drop[s]; !skip {
			out = append(out, s)
		}
	}
	sortSymbolSlice(out)

	return out
}

func sortSymbolSlice(set []automata.Symbol) {
	slices.Sort(set)
}
