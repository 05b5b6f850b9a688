// This file implements the syntax-tree view of the pipeline: instead of
// building an automaton, postfix evaluation materializes the operator
// tree as a directed graph with node labels held in a property map.
package rex

import (
	"github.com/katalvlaran/grafsm/core"
	"github.com/katalvlaran/grafsm/pmap"
)

// AST is the operator syntax tree of a parsed expression: a directed
// graph whose edges point from an operator node to its operand subtrees
// in operand order, with each node's source text in a label map.
type AST struct {
	graph  *core.Graph
	root   core.Vertex
	labels *pmap.Assoc[core.Vertex, string]
}

// Graph returns the underlying tree graph.
func (t *AST) Graph() *core.Graph { return t.graph }

// Root returns the root node of the tree.
func (t *AST) Root() core.Vertex { return t.root }

// Labels returns the node label map.
func (t *AST) Labels() pmap.Read[core.Vertex, string] { return t.labels }

// Label returns the source text of node v; pmap.ErrKeyNotFound if v is
// not a node of this tree.
func (t *AST) Label(v core.Vertex) (string, error) { return t.labels.Get(v) }

// ParseOption configures syntax-tree construction.
type ParseOption func(*parseConfig)

type parseConfig struct {
	symbolLabels pmap.Read[string, string]
	vis          ShuntingVisitor
}

// WithSymbolLabels substitutes display labels for operand nodes whose
// source text appears in labels. Compilation never needs this; it only
// affects how leaf nodes read.
func WithSymbolLabels(labels pmap.Read[string, string]) ParseOption {
	return func(c *parseConfig) { c.symbolLabels = labels }
}

// WithParseVisitor attaches a visitor to the shunting-yard stage.
func WithParseVisitor(vis ShuntingVisitor) ParseOption {
	return func(c *parseConfig) { c.vis = vis }
}

// ParseRegex parses a regular expression into its syntax tree without
// building an automaton.
func ParseRegex(expr string, opts ...ParseOption) (*AST, error) {
	tokens, err := TokenizeRegex(expr)
	if err != nil {
		return nil, err
	}

	return parseTree(tokens, RegexOps, regexArity, opts)
}

// ParseAlgebra parses an arithmetic expression into its syntax tree.
func ParseAlgebra(expr string, opts ...ParseOption) (*AST, error) {
	tokens, err := TokenizeAlgebra(expr)
	if err != nil {
		return nil, err
	}

	return parseTree(tokens, AlgebraOps, TableArity(AlgebraOps), opts)
}

func parseTree(tokens []Token, ops map[string]Op, arityOf ArityFunc, opts []ParseOption) (*AST, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	rpn, err := ShuntingYard(tokens, ops, cfg.vis)
	if err != nil {
		return nil, err
	}

	tree := &AST{
		graph:  core.NewDirected(),
		labels: pmap.NewAssoc[core.Vertex, string](),
	}
	makeNode := func(tok Token, children []core.Vertex) (core.Vertex, error) {
		v := tree.graph.AddVertex()
		text := tok.Text
		if cfg.symbolLabels != nil && len(children) == 0 {
			if label, lerr := cfg.symbolLabels.Get(text); lerr == nil {
				text = label
			}
		}
		if err := tree.labels.Put(v, text); err != nil {
			return core.NoVertex, err
		}
		for _, child := range children {
			if _, err := tree.graph.AddEdge(v, child); err != nil {
				return core.NoVertex, err
			}
		}

		return v, nil
	}

	root, err := EvalRPN(rpn, arityOf, makeNode)
	if err != nil {
		return nil, err
	}
	tree.root = root

	return tree, nil
}
