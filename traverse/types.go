// This file declares the visitor contract, colors, sentinel errors and
// the functional options shared by BFS and DFS.
package traverse

import (
	"context"
	"errors"

	"github.com/katalvlaran/grafsm/core"
	"github.com/katalvlaran/grafsm/pmap"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil incidence is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartVertexNotFound is returned when the start handle is absent.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not found")

	// ErrStop signals early termination from a visitor hook.
	// It is consumed by the traversal and reported as success.
	ErrStop = errors.New("traverse: stop")
)

// Color represents the visitation state of a vertex.
type Color uint8

const (
	White Color = iota // not seen yet
	Gray               // discovered, exploration in progress
	Black              // fully explored
)

// Visitor receives traversal events. Every hook may return ErrStop to
// abort remaining exploration (reported as success) or any other error
// to abort with failure.
type Visitor interface {
	// OnDiscover fires when v is first seen.
	OnDiscover(v core.Vertex) error

	// OnExamineEdge fires for every out-edge of a visited vertex,
	// in enumeration order.
	OnExamineEdge(e core.Edge) error

	// OnFinish fires after all of v's out-edges have been examined
	// (BFS) or all descendants explored (DFS).
	OnFinish(v core.Vertex) error
}

// VisitorFuncs adapts plain functions to the Visitor contract.
// Nil fields are no-ops.
type VisitorFuncs struct {
	Discover    func(v core.Vertex) error
	ExamineEdge func(e core.Edge) error
	Finish      func(v core.Vertex) error
}

// OnDiscover implements Visitor.
func (f VisitorFuncs) OnDiscover(v core.Vertex) error {
	if f.Discover == nil {
		return nil
	}

	return f.Discover(v)
}

// OnExamineEdge implements Visitor.
func (f VisitorFuncs) OnExamineEdge(e core.Edge) error {
	if f.ExamineEdge == nil {
		return nil
	}

	return f.ExamineEdge(e)
}

// OnFinish implements Visitor.
func (f VisitorFuncs) OnFinish(v core.Vertex) error {
	if f.Finish == nil {
		return nil
	}

	return f.Finish(v)
}

// Option configures traversal behavior via functional arguments.
type Option func(*options)

// options holds parameters shared by BFS and DFS.
type options struct {
	ctx    context.Context
	colors pmap.ReadWrite[int, Color]
	full   bool
}

// defaultOptions returns a Background context, no shared color map, and
// single-source mode.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithColorMap shares a visitation-state map across invocations, e.g. to
// resume exploration or to pre-hide vertices by seeding them Black.
func WithColorMap(m pmap.ReadWrite[int, Color]) Option {
	return func(o *options) {
		if m != nil {
			o.colors = m
		}
	}
}

// WithFullTraversal makes DFS restart from every unvisited vertex,
// covering disconnected components. BFS ignores it.
func WithFullTraversal() Option {
	return func(o *options) { o.full = true }
}

// newColorMap builds the default dense color map for n vertices.
func newColorMap(n int) pmap.ReadWrite[int, Color] {
	return pmap.NewSlice[Color](n, pmap.WithDefault(White))
}
