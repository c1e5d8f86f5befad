package debruijn

import "fmt"

// Degrees summarizes the out−in balance of a graph.
type Degrees struct {
	// Sources lists vertices with out−in = +1 (path start candidates).
	Sources []int
	// Sinks lists vertices with out−in = −1 (path end candidates).
	Sinks []int
	// Skewed lists vertices with |out−in| > 1.
	Skewed []int
}

// Balanced reports whether the degrees admit an Eulerian path or circuit.
func (d Degrees) Balanced() bool {
	return len(d.Skewed) == 0 && len(d.Sources) <= 1 && len(d.Sinks) <= 1 && len(d.Sources) == len(d.Sinks)
}

// Balance classifies every vertex by out−in over its current out-edges.
// Call it before traversal; PopEdge lowers out-degrees.
// Complexity: O(V).
func Balance(g *Graph) Degrees {
	var d Degrees
	for id := range g.vertices {
		switch diff := len(g.vertices[id].Out) - g.vertices[id].InDegree; {
		case diff == 1:
			d.Sources = append(d.Sources, id)
		case diff == -1:
			d.Sinks = append(d.Sinks, id)
		case diff != 0:
			d.Skewed = append(d.Skewed, id)
		}
	}

	return d
}

// Check verifies the Eulerian-path precondition on a freshly built graph:
// at most one vertex with out−in = +1, at most one with −1, all others
// balanced, and every vertex that carries an edge in one weak component.
// A graph without edges passes only if it has a single vertex.
// Complexity: O(V+E) time, O(V) memory.
func Check(g *Graph) error {
	// 1. Degree balance
	d := Balance(g)
	if !d.Balanced() {
		return fmt.Errorf("debruijn: %d sources, %d sinks, %d skewed vertices: %w",
			len(d.Sources), len(d.Sinks), len(d.Skewed), ErrUnbalanced)
	}

	// 2. No edges: only a single repeated k-mer is assemblable
	if g.edges == 0 {
		if len(g.vertices) > 1 {
			return fmt.Errorf("debruijn: %d isolated vertices: %w", len(g.vertices), ErrDisconnected)
		}
		return nil
	}

	// 3. Weak connectivity over edge-bearing vertices
	if n := components(g); n > 1 {
		return fmt.Errorf("debruijn: %d weak components: %w", n, ErrDisconnected)
	}

	return nil
}

// components counts weak components among vertices with at least one edge,
// using a disjoint-set forest with path halving and union by rank.
func components(g *Graph) int {
	parent := make([]int, len(g.vertices))
	rank := make([]uint8, len(g.vertices))
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	for u := range g.vertices {
		for _, e := range g.vertices[u].Out {
			ru, rv := find(u), find(e.To)
			if ru == rv {
				continue
			}
			switch {
			case rank[ru] < rank[rv]:
				parent[ru] = rv
			case rank[ru] > rank[rv]:
				parent[rv] = ru
			default:
				parent[rv] = ru
				rank[ru]++
			}
		}
	}

	n := 0
	for u := range g.vertices {
		v := &g.vertices[u]
		if len(v.Out) == 0 && v.InDegree == 0 {
			continue
		}
		if find(u) == u {
			n++
		}
	}

	return n
}
