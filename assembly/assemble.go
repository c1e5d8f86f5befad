package assembly

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eulerasm/debruijn"
	"github.com/katalvlaran/eulerasm/euler"
)

// Report is an assembly result with graph and traversal diagnostics.
type Report struct {
	Sequence    string
	Vertices    int
	Edges       int
	Fingerprint uint64 // debruijn.Fingerprint before traversal
	Steps       int
	MaxDepth    int
	Circuit     bool
}

// Assemble reconstructs the sequence spelled by reads with overlap k.
// k == 0 or an empty read collection yields "" and no error.
func Assemble(k int, reads []string, opts ...Option) (string, error) {
	r, err := run(k, reads, resolve(opts))
	if err != nil {
		return "", err
	}

	return r.Sequence, nil
}

// AssembleWithReport is Assemble plus graph and traversal statistics.
func AssembleWithReport(k int, reads []string, opts ...Option) (*Report, error) {
	return run(k, reads, resolve(opts))
}

// AssembleBatch assembles independent read sets concurrently, at most
// Options.Concurrency at a time. Results are returned in input order.
// The first failure cancels sets that have not started and is returned
// with the index of the failing set.
func AssembleBatch(ctx context.Context, k int, sets [][]string, opts ...Option) ([]string, error) {
	o := resolve(opts)
	out := make([]string, len(sets))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)
	for i, reads := range sets {
		i, reads := i, reads
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := run(k, reads, o)
			if err != nil {
				return fmt.Errorf("assembly: set %d: %w", i, err)
			}
			out[i] = r.Sequence
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// run is the shared pipeline behind every entry point.
func run(k int, reads []string, o Options) (*Report, error) {
	// 1. Degenerate input
	if k == 0 || len(reads) == 0 {
		return &Report{}, nil
	}

	// 2. Symbol check; length checks happen in debruijn.Build
	if o.Alphabet != "" {
		if err := checkAlphabet(reads, o.Alphabet); err != nil {
			return nil, err
		}
	}

	// 3. Build
	g, err := debruijn.Build(k, reads,
		debruijn.WithStrategy(o.Strategy),
		debruijn.WithScheme(o.Scheme),
	)
	if err != nil {
		return nil, fmt.Errorf("assembly: %w", err)
	}

	// 4. Eulerian precondition
	if o.Check {
		if err = debruijn.Check(g); err != nil {
			return nil, fmt.Errorf("assembly: %w", err)
		}
	}
	rep := &Report{
		Vertices:    g.VertexCount(),
		Edges:       g.EdgeCount(),
		Fingerprint: debruijn.Fingerprint(g),
	}

	// 5. Traverse
	res, err := euler.Path(g)
	if err != nil {
		return nil, fmt.Errorf("assembly: %w", err)
	}
	rep.Sequence = res.Sequence
	rep.Steps = res.Steps
	rep.MaxDepth = res.MaxDepth
	rep.Circuit = res.Circuit

	return rep, nil
}

// checkAlphabet reports the first byte of reads not in alphabet.
func checkAlphabet(reads []string, alphabet string) error {
	var allowed [256]bool
	for i := 0; i < len(alphabet); i++ {
		allowed[alphabet[i]] = true
	}
	for r, read := range reads {
		for i := 0; i < len(read); i++ {
			if !allowed[read[i]] {
				return fmt.Errorf("assembly: read %d position %d byte %q: %w", r, i, read[i], ErrSymbol)
			}
		}
	}

	return nil
}
