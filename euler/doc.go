// Package euler reconstructs a sequence by walking an Eulerian path through
// a debruijn.Graph with an iterative Hierholzer traversal.
//
// Algorithm:
//
//  1. Start at the first vertex whose out-degree exceeds its in-degree. If
//     every vertex is balanced (a circuit) start at vertex 0, the first
//     k-mer of the first read.
//  2. Allocate exactly K() + PayloadLen() bytes and seed the first k with the
//     start k-mer.
//  3. Keep an explicit stack of frames (vertex, label of the edge that led
//     there). While the stack is non-empty:
//     - top has an unused out-edge: pop that edge from the back of the
//     vertex's list and push a frame for its destination;
//     - top is exhausted: write its label just before the back cursor,
//     move the cursor back, pop the frame.
//  4. When the stack empties every reachable edge has been used once and the
//     back-filled region meets the seeded prefix.
//
// No recursion is used, so path length is bounded by memory, not by the
// goroutine stack.
//
// Complexity:
//
//   - Time O(V + E + output length), Memory O(E) for the stack in the worst case.
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrEmptyGraph      graph has no vertices
//   - ErrGraphConsumed   graph edges were already drained
//   - ErrOverflow        labels exceed the output buffer (malformed graph)
//   - ErrIncompletePath  edges left unreachable from the start (malformed input)
//   - any error returned by OnVisit / OnExit hooks
package euler
