package euler

import (
	"fmt"

	"github.com/katalvlaran/eulerasm/debruijn"
)

// frame is one stack entry: a vertex and the label of the edge into it.
// The start frame has an empty label; its k-mer is seeded up front.
type frame struct {
	v     int
	label string
}

// StartVertex returns the first vertex with out-degree > in-degree.
// ok is false when no such vertex exists; 0 is returned in that case.
func StartVertex(g *debruijn.Graph) (v int, ok bool) {
	for id := 0; id < g.VertexCount(); id++ {
		if g.OutDegree(id) > g.InDegree(id) {
			return id, true
		}
	}

	return 0, false
}

// Path walks an Eulerian path through g and returns the spelled sequence.
// It drains g's edge lists; a graph can be traversed only once.
func Path(g *debruijn.Graph, opts ...Option) (*Result, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.Remaining() != g.EdgeCount() {
		return nil, ErrGraphConsumed
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Pick start, size and seed the output
	start, ok := StartVertex(g)
	k := g.K()
	buf := make([]byte, k+g.PayloadLen())
	copy(buf, g.Key(start).Value)
	cursor := len(buf)

	res := &Result{Start: start, Circuit: !ok}
	stack := make([]frame, 1, 64)
	stack[0] = frame{v: start}
	res.MaxDepth = 1
	if err := visit(o, start); err != nil {
		return nil, err
	}

	// 4. Hierholzer, iteratively
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// descend along an unused edge
		if e, more := g.PopEdge(top.v); more {
			stack = append(stack, frame{v: e.To, label: e.Label})
			res.Steps++
			if len(stack) > res.MaxDepth {
				res.MaxDepth = len(stack)
			}
			if err := visit(o, e.To); err != nil {
				return nil, err
			}
			continue
		}

		// exhausted: emit back-to-front and backtrack
		if cursor-len(top.label) < k {
			return nil, fmt.Errorf("euler: label %q at cursor %d: %w", top.label, cursor, ErrOverflow)
		}
		cursor -= copy(buf[cursor-len(top.label):cursor], top.label)
		if o.OnExit != nil {
			if err := o.OnExit(top.v, top.label); err != nil {
				return nil, fmt.Errorf("euler: OnExit hook for vertex %d: %w", top.v, err)
			}
		}
		stack = stack[:len(stack)-1]
	}

	// 5. Every edge used ⇔ the two write regions meet at k
	if cursor != k || g.Remaining() != 0 {
		return nil, fmt.Errorf("euler: %d of %d edges unused: %w", g.Remaining(), g.EdgeCount(), ErrIncompletePath)
	}
	res.Sequence = string(buf)

	return res, nil
}

// visit fires the OnVisit hook with context on error.
func visit(o Options, v int) error {
	if o.OnVisit == nil {
		return nil
	}
	if err := o.OnVisit(v); err != nil {
		return fmt.Errorf("euler: OnVisit hook for vertex %d: %w", v, err)
	}

	return nil
}
