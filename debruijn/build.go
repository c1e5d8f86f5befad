package debruijn

import (
	"fmt"

	"github.com/katalvlaran/eulerasm/kmer"
)

// builder carries the per-call state of Build.
type builder struct {
	g    *Graph
	h    kmer.Hasher
	opts Options
}

// Build validates reads and constructs the adjacency graph for k.
//
// Validation happens before any vertex is created:
//   - k > 0                         else ErrBadK
//   - len(reads) > 0                else ErrNoReads
//   - every read has length d ≥ k   else ErrReadTooShort
//   - every read has the same d     else ErrReadLength
//
// The returned graph borrows substrings of reads; keep reads alive and
// unmodified while the graph is in use.
func Build(k int, reads []string, opts ...Option) (*Graph, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate input
	d, err := Validate(k, reads)
	if err != nil {
		return nil, err
	}

	// 3. Resolve hasher
	h := o.Hasher
	if h == nil {
		if h, err = kmer.NewHasher(o.Scheme, k); err != nil {
			return nil, fmt.Errorf("debruijn: Build: %w", err)
		}
	}

	// 4. Construct
	b := &builder{h: h, opts: o}
	switch o.Strategy {
	case FineGrained:
		b.g = newGraph(k, o.Strategy, h, len(reads)*(d-k)+1)
		err = b.fine(reads, d)
	case CoarseGrained:
		b.g = newGraph(k, o.Strategy, h, len(reads)+1)
		err = b.coarse(reads, d)
	default:
		return nil, fmt.Errorf("debruijn: Build(%s): %w", o.Strategy, ErrUnknownStrategy)
	}
	if err != nil {
		return nil, err
	}

	return b.g, nil
}

// Validate checks the read collection against k and returns the common read
// length d.
func Validate(k int, reads []string) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("debruijn: k=%d: %w", k, ErrBadK)
	}
	if len(reads) == 0 {
		return 0, ErrNoReads
	}
	d := len(reads[0])
	for i, read := range reads {
		if len(read) < k {
			return 0, fmt.Errorf("debruijn: read %d has length %d < k=%d: %w", i, len(read), k, ErrReadTooShort)
		}
		if len(read) != d {
			return 0, fmt.Errorf("debruijn: read %d has length %d, want %d: %w", i, len(read), d, ErrReadLength)
		}
	}

	return d, nil
}

// fine adds d−k+1 window vertices and d−k edges per read.
func (b *builder) fine(reads []string, d int) error {
	k := b.g.k
	for _, read := range reads {
		u, err := b.add(kmer.NewKey(read, 0, k, b.h.Hash(read, 0)))
		if err != nil {
			return err
		}
		for i := 1; i <= d-k; i++ {
			v, err := b.add(kmer.NewKey(read, i, k, b.h.Hash(read, i)))
			if err != nil {
				return err
			}
			// label: the one symbol window i adds over window i-1
			if err = b.link(u, v, read[i+k-1:i+k]); err != nil {
				return err
			}
			u = v
		}
	}

	return nil
}

// coarse adds one prefix→suffix edge per read, labeled with read[k:].
func (b *builder) coarse(reads []string, d int) error {
	k := b.g.k
	for _, read := range reads {
		u, err := b.add(kmer.NewKey(read, 0, k, b.h.Sum(read[:k])))
		if err != nil {
			return err
		}
		v, err := b.add(kmer.NewKey(read, d-k, k, b.h.Sum(read[d-k:])))
		if err != nil {
			return err
		}
		if err = b.link(u, v, read[k:]); err != nil {
			return err
		}
	}

	return nil
}

// add looks up or creates the vertex for key, firing OnVertex on creation.
func (b *builder) add(key kmer.Key) (int, error) {
	id, created := b.g.vertex(key)
	if created && b.opts.OnVertex != nil {
		if err := b.opts.OnVertex(id, key); err != nil {
			return 0, fmt.Errorf("debruijn: OnVertex hook for %q: %w", key.Value, err)
		}
	}

	return id, nil
}

// link inserts u→v, firing OnEdge.
func (b *builder) link(u, v int, label string) error {
	b.g.addEdge(u, v, label)
	if b.opts.OnEdge != nil {
		if err := b.opts.OnEdge(u, v, label); err != nil {
			return fmt.Errorf("debruijn: OnEdge hook %d→%d: %w", u, v, err)
		}
	}

	return nil
}
