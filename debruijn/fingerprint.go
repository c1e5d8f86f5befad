package debruijn

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint digests the vertex set together with each vertex's out- and
// in-degree. Per-vertex digests are combined with addition, so the result
// does not depend on arena order: any permutation of the reads yields the
// same fingerprint.
// Complexity: O(V·k).
func Fingerprint(g *Graph) uint64 {
	var (
		sum uint64
		buf [16]byte
		d   = xxhash.New()
	)
	for id := range g.vertices {
		v := &g.vertices[id]
		d.Reset()
		_, _ = d.WriteString(v.Key.Value)
		binary.LittleEndian.PutUint64(buf[0:8], uint64(len(v.Out)))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(v.InDegree))
		_, _ = d.Write(buf[:])
		sum += d.Sum64()
	}

	return sum ^ xxhash.Sum64String(g.strategy.String())
}
