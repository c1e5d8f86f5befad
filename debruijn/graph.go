package debruijn

import "github.com/katalvlaran/eulerasm/kmer"

// Graph is the k-mer adjacency multigraph.
//
// A Graph is built once and consumed once: PopEdge drains out-edges in place,
// which is what gives the traversal O(1) access to the next unused edge.
// Not safe for concurrent use.
type Graph struct {
	k        int
	strategy Strategy
	hasher   kmer.Hasher

	vertices []Vertex
	index    map[uint64][]int // fingerprint → candidate vertex indices

	edges     int // inserted edges
	remaining int // edges not yet popped
	payload   int // Σ len(Edge.Label)
}

// newGraph allocates an empty graph with capacity hints.
func newGraph(k int, strategy Strategy, hasher kmer.Hasher, vertexHint int) *Graph {
	return &Graph{
		k:        k,
		strategy: strategy,
		hasher:   hasher,
		vertices: make([]Vertex, 0, vertexHint),
		index:    make(map[uint64][]int, vertexHint),
	}
}

// K returns the k-mer length.
func (g *Graph) K() int { return g.k }

// Strategy returns the strategy the graph was built with.
func (g *Graph) Strategy() Strategy { return g.strategy }

// VertexCount returns the number of distinct k-mers.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges inserted during Build.
func (g *Graph) EdgeCount() int { return g.edges }

// Remaining returns the number of edges not yet consumed by PopEdge.
func (g *Graph) Remaining() int { return g.remaining }

// PayloadLen returns the total label length over all inserted edges.
// An Eulerian path spells exactly K() + PayloadLen() symbols.
func (g *Graph) PayloadLen() int { return g.payload }

// Key returns the k-mer of vertex v.
func (g *Graph) Key(v int) kmer.Key { return g.vertices[v].Key }

// OutDegree returns the number of unconsumed out-edges of v.
func (g *Graph) OutDegree(v int) int { return len(g.vertices[v].Out) }

// InDegree returns the number of edges inserted into v.
func (g *Graph) InDegree(v int) int { return g.vertices[v].InDegree }

// Lookup finds the vertex whose k-mer equals window.
func (g *Graph) Lookup(window string) (int, bool) {
	if len(window) != g.k {
		return 0, false
	}
	for _, id := range g.index[g.hasher.Sum(window)] {
		if g.vertices[id].Value() == window {
			return id, true
		}
	}

	return 0, false
}

// PopEdge removes and returns the last unconsumed out-edge of v.
func (g *Graph) PopEdge(v int) (Edge, bool) {
	out := g.vertices[v].Out
	if len(out) == 0 {
		return Edge{}, false
	}
	e := out[len(out)-1]
	g.vertices[v].Out = out[:len(out)-1]
	g.remaining--

	return e, true
}

// vertex returns the id of the vertex keyed by key, creating it if needed.
// created reports whether a new vertex was appended.
func (g *Graph) vertex(key kmer.Key) (id int, created bool) {
	bucket := g.index[key.Hash]
	for _, id = range bucket {
		if g.vertices[id].Value() == key.Value {
			return id, false
		}
	}
	id = len(g.vertices)
	g.vertices = append(g.vertices, Vertex{Key: key})
	g.index[key.Hash] = append(bucket, id)

	return id, true
}

// addEdge appends u→v with label and bumps v's in-degree.
func (g *Graph) addEdge(u, v int, label string) {
	g.vertices[u].Out = append(g.vertices[u].Out, Edge{To: v, Label: label})
	g.vertices[v].InDegree++
	g.edges++
	g.remaining++
	g.payload += len(label)
}

// Value returns the k-mer symbols of the vertex.
func (v *Vertex) Value() string { return v.Key.Value }
