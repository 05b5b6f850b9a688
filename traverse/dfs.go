// This file implements depth-first exploration and cycle detection over
// a core.Incidence. The walk is iterative (explicit frame stack), so deep
// graphs cannot overflow the goroutine stack.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/grafsm/core"
	"github.com/katalvlaran/grafsm/pmap"
)

// dfsFrame tracks one vertex on the exploration stack together with the
// index of the next out-edge to examine.
type dfsFrame struct {
	v    core.Vertex
	next int
}

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	graph  core.Incidence
	opts   options
	colors pmap.ReadWrite[int, Color]
	vis    Visitor
	stack  []dfsFrame
}

// DFS runs depth-first exploration on g from start, sharing the BFS
// visitor contract: OnDiscover fires pre-order, OnFinish fires post-order
// once a vertex's descendants are fully explored. With WithFullTraversal
// the walk restarts from every still-White vertex in increasing handle
// order, covering disconnected components; start seeds the first tree.
// Error behavior matches BFS.
func DFS(g core.Incidence, start core.Vertex, vis Visitor, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if start < 0 || int(start) >= g.NumVertices() {
		return ErrStartVertexNotFound
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
	w := &dfsWalker{graph: g, opts: o, colors: colors, vis: vis}

	if halt, err := w.tree(start); halt || err != nil {
		return err
	}
	if !o.full {
		return nil
	}
	for v := 0; v < g.NumVertices(); v++ {
		c, err := colors.Get(v)
		if err != nil {
			return fmt.Errorf("traverse: color map: %w", err)
		}
		if c != White {
			continue
		}
		if halt, err := w.tree(core.Vertex(v)); halt || err != nil {
			return err
		}
	}

	return nil
}

// tree explores one DFS tree rooted at v.
func (w *dfsWalker) tree(root core.Vertex) (bool, error) {
	if halt, err := w.push(root); halt || err != nil {
		return halt, err
	}

	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.ctx.Done():
			return true, w.opts.ctx.Err()
		default:
		}

		frame := &w.stack[len(w.stack)-1]
		out := w.graph.OutEdges(frame.v)
		if frame.next >= len(out) {
			// All descendants explored.
			if err := w.colors.Put(int(frame.v), Black); err != nil {
				return true, fmt.Errorf("traverse: color map: %w", err)
			}
			v := frame.v
			w.stack = w.stack[:len(w.stack)-1]
			if halt, err := hookResult("finish", w.vis.OnFinish(v)); halt || err != nil {
				return halt, err
			}

			continue
		}

		e := out[frame.next]
		frame.next++
		if halt, err := hookResult("examine-edge", w.vis.OnExamineEdge(e)); halt || err != nil {
			return halt, err
		}
		c, err := w.colors.Get(int(e.To))
		if err != nil {
			return true, fmt.Errorf("traverse: color map: %w", err)
		}
		if c != White {
			continue
		}
		if halt, err := w.push(e.To); halt || err != nil {
			return halt, err
		}
	}

	return false, nil
}

// push discovers v and opens its frame.
func (w *dfsWalker) push(v core.Vertex) (bool, error) {
	if err := w.colors.Put(int(v), Gray); err != nil {
		return true, fmt.Errorf("traverse: color map: %w", err)
	}
	if halt, err := hookResult("discover", w.vis.OnDiscover(v)); halt || err != nil {
		return halt, err
	}
	w.stack = append(w.stack, dfsFrame{v: v})

	return false, nil
}

// HasCycle reports whether the directed incidence g contains a cycle,
// using a Gray-hit depth-first sweep over every component.
// Complexity: O(V + E).
func HasCycle(g core.Incidence) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.NumVertices()
	colors := pmap.NewSlice[Color](n, pmap.WithDefault(White))
	var stack []dfsFrame

	for root := 0; root < n; root++ {
		if c, _ := colors.Get(root); c != White {
			continue
		}
		_ = colors.Put(root, Gray)
		stack = append(stack[:0], dfsFrame{v: core.Vertex(root)})

		for len(stack) > 0 {
			frame := &stack[len(stack)-1]
			out := g.OutEdges(frame.v)
			if frame.next >= len(out) {
				_ = colors.Put(int(frame.v), Black)
				stack = stack[:len(stack)-1]

				continue
			}
			e := out[frame.next]
			frame.next++
			c, _ := colors.Get(int(e.To))
			switch c {
			case Gray:
				// Back edge: target is on the current exploration path.
				return true, nil
			case White:
				_ = colors.Put(int(e.To), Gray)
				stack = append(stack, dfsFrame{v: e.To})
			}
		}
	}

	return false, nil
}
