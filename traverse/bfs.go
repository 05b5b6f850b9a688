// This file implements breadth-first exploration over a core.Incidence.
package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grafsm/core"
	"github.com/katalvlaran/grafsm/pmap"
)

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	graph  core.Incidence
	opts   options
	colors pmap.ReadWrite[int, Color]
	vis    Visitor
	queue  []core.Vertex
}

// BFS runs breadth-first exploration on g starting from start, applying
// any number of functional Options. Vertices are discovered in
// non-decreasing distance from start; ties are broken by OutEdges
// enumeration order, and each reachable vertex is discovered exactly
// once. Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// the context error on cancellation, or a wrapped hook error. ErrStop
// from a hook terminates the walk successfully.
func BFS(g core.Incidence, start core.Vertex, vis Visitor, opts ...Option) error {
	w, err := newBFSWalker(g, start, vis, opts)
	if err != nil {
		return err
	}

	if halt, err := w.discover(start); halt || err != nil {
		return err
	}

	return w.loop()
}

// newBFSWalker validates inputs and assembles the walker.
func newBFSWalker(g core.Incidence, start core.Vertex, vis Visitor, opts []Option) (*bfsWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || int(start) >= g.NumVertices() {
		return nil, ErrStartVertexNotFound
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	colors := o.colors
	if colors == nil {
		colors = newColorMap(g.NumVertices())
	}
	if vis == nil {
		vis = VisitorFuncs{}
	}

	return &bfsWalker{graph: g, opts: o, colors: colors, vis: vis}, nil
}

// discover marks v Gray, fires OnDiscover and enqueues v.
func (w *bfsWalker) discover(v core.Vertex) (bool, error) {
	if err := w.colors.Put(int(v), Gray); err != nil {
		return true, fmt.Errorf("traverse: color map: %w", err)
	}
	if halt, err := hookResult("discover", w.vis.OnDiscover(v)); halt || err != nil {
		return halt, err
	}
	w.queue = append(w.queue, v)

	return false, nil
}

// loop processes the queue until empty, early stop, error or cancellation.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]

		for _, e := range w.graph.OutEdges(u) {
			if halt, err := hookResult("examine-edge", w.vis.OnExamineEdge(e)); halt || err != nil {
				return err
			}
			c, err := w.colors.Get(int(e.To))
			if err != nil {
				return fmt.Errorf("traverse: color map: %w", err)
			}
			if c != White {
				continue
			}
			if halt, err := w.discover(e.To); halt || err != nil {
				return err
			}
		}

		if err := w.colors.Put(int(u), Black); err != nil {
			return fmt.Errorf("traverse: color map: %w", err)
		}
		if halt, err := hookResult("finish", w.vis.OnFinish(u)); halt || err != nil {
			return err
		}
	}

	return nil
}

// hookResult classifies a hook outcome: ErrStop halts successfully,
// any other error halts with a wrapped failure.
func hookResult(stage string, err error) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrStop):
		return true, nil
	default:
		return true, fmt.Errorf("traverse: %s hook: %w", stage, err)
	}
}
