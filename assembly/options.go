// SPDX-License-Identifier: MIT

package assembly

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/eulerasm/debruijn"
	"github.com/katalvlaran/eulerasm/kmer"
)

// ErrSymbol indicates a read symbol outside the configured alphabet.
var ErrSymbol = errors.New("assembly: symbol outside alphabet")

// DNA is the nucleotide alphabet accepted by WithAlphabet(DNA).
const DNA = "ACGT"

// Option configures Assemble and AssembleBatch.
type Option func(*Options)

// Options holds the assembly knobs.
type Options struct {
	// Strategy selects fine- or coarse-grained graph construction.
	Strategy debruijn.Strategy

	// Scheme selects the k-mer hasher.
	Scheme kmer.Scheme

	// Alphabet, if non-empty, restricts read symbols to its bytes.
	Alphabet string

	// Check runs debruijn.Check before traversal. Default true.
	Check bool

	// Concurrency bounds AssembleBatch workers. Default GOMAXPROCS.
	Concurrency int
}

// DefaultOptions returns fine-grained, rolling-hash assembly with the
// Eulerian precondition check enabled.
func DefaultOptions() Options {
	return Options{
		Strategy:    debruijn.FineGrained,
		Scheme:      kmer.SchemeRolling,
		Check:       true,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithStrategy selects the graph granularity.
func WithStrategy(s debruijn.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithScheme selects the k-mer hasher.
func WithScheme(s kmer.Scheme) Option {
	return func(o *Options) { o.Scheme = s }
}

// WithAlphabet rejects reads containing bytes outside alphabet.
// Panics on an empty alphabet.
func WithAlphabet(alphabet string) Option {
	if alphabet == "" {
		panic("assembly: WithAlphabet(\"\")")
	}
	return func(o *Options) { o.Alphabet = alphabet }
}

// WithoutCheck skips the Eulerian precondition check. Malformed input then
// surfaces from the traversal as euler.ErrIncompletePath.
func WithoutCheck() Option {
	return func(o *Options) { o.Check = false }
}

// WithConcurrency bounds the number of read sets AssembleBatch assembles at
// once. Panics on n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("assembly: WithConcurrency(n < 1)")
	}
	return func(o *Options) { o.Concurrency = n }
}

// resolve applies opts over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
