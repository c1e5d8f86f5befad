// Package debruijn builds the adjacency multigraph that the Eulerian
// traversal consumes: vertices are distinct k-mers, edges are observed
// adjacencies between them.
//
// What:
//
//   - Build(k, reads, opts...): validates the read collection, then constructs
//     the graph with one of two strategies:
//   - FineGrained: every k-window of every read is a vertex; consecutive
//     windows of a read are joined by an edge labeled with the new trailing
//     symbol. A read of length d contributes d−k edges.
//   - CoarseGrained: a read's first and last k symbols are vertices joined
//     by one edge labeled with read[k:]. Valid when consecutive reads overlap
//     by exactly k symbols.
//   - Check(g): verifies the Eulerian-path precondition (degree balance and
//     weak connectivity) before traversal.
//   - Fingerprint(g): order-independent digest of vertex set and degrees.
//
// Storage:
//
//   - Vertices live in an arena ([]Vertex) and are addressed by stable index;
//     edges store destination indices, never pointers.
//   - A map from fingerprint to candidate indices deduplicates k-mers;
//     candidates are compared by value, so hash collisions only cost time.
//   - Keys and labels are substrings of the caller's reads. The reads must
//     outlive the Graph.
//
// Complexity:
//
//   - Build: Time O(n·(d−k)) with the rolling scheme, plus O(k) per vertex
//     creation for collision checks; Memory O(V+E).
//   - Check: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrBadK, ErrNoReads, ErrReadTooShort, ErrReadLength   input validation
//   - ErrUnbalanced, ErrDisconnected                        Check failures
//   - any error returned by OnVertex / OnEdge hooks
package debruijn
