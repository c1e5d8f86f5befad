// SPDX-License-Identifier: MIT

package debruijn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/eulerasm/kmer"
)

var (
	// ErrBadK indicates a non-positive k.
	ErrBadK = errors.New("debruijn: k must be positive")

	// ErrNoReads indicates an empty read collection.
	ErrNoReads = errors.New("debruijn: no reads")

	// ErrReadTooShort indicates a read shorter than k.
	ErrReadTooShort = errors.New("debruijn: read shorter than k")

	// ErrReadLength indicates reads of differing lengths.
	ErrReadLength = errors.New("debruijn: reads have different lengths")

	// ErrUnbalanced indicates a degree imbalance that rules out an Eulerian path.
	ErrUnbalanced = errors.New("debruijn: graph is not Eulerian-balanced")

	// ErrDisconnected indicates edges spread over more than one weak component.
	ErrDisconnected = errors.New("debruijn: graph is disconnected")

	// ErrUnknownStrategy indicates an unrecognized Strategy value or name.
	ErrUnknownStrategy = errors.New("debruijn: unknown strategy")
)

// Strategy selects the graph granularity.
type Strategy int

const (
	// FineGrained makes every k-window a vertex (default).
	FineGrained Strategy = iota
	// CoarseGrained makes every read a single prefix→suffix edge.
	CoarseGrained
)

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case FineGrained:
		return "fine"
	case CoarseGrained:
		return "coarse"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy resolves "fine" or "coarse" (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fine", "kmer":
		return FineGrained, nil
	case "coarse", "read":
		return CoarseGrained, nil
	}

	return 0, fmt.Errorf("debruijn: ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// Edge is a directed adjacency to vertex To.
// Label is the output payload: the single trailing symbol (fine-grained)
// or the non-overlapping suffix read[k:] (coarse-grained).
type Edge struct {
	To    int
	Label string
}

// Vertex is one distinct k-mer.
type Vertex struct {
	Key      kmer.Key
	Out      []Edge // insertion order; drained from the back
	InDegree int
}

// Option configures Build.
type Option func(*Options)

// Options holds the knobs of Build.
type Options struct {
	// Strategy selects fine- or coarse-grained construction.
	Strategy Strategy

	// Scheme selects the window hasher; ignored when Hasher is set.
	Scheme kmer.Scheme

	// Hasher, if non-nil, overrides Scheme.
	Hasher kmer.Hasher

	// OnVertex, if non-nil, is invoked once per newly created vertex.
	// Returning an error aborts the build.
	OnVertex func(id int, key kmer.Key) error

	// OnEdge, if non-nil, is invoked after each edge insertion.
	// Returning an error aborts the build.
	OnEdge func(from, to int, label string) error
}

// DefaultOptions returns fine-grained construction with the rolling hash
// and no hooks.
func DefaultOptions() Options {
	return Options{
		Strategy: FineGrained,
		Scheme:   kmer.SchemeRolling,
	}
}

// WithStrategy sets the construction strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithScheme selects the window hasher by scheme.
func WithScheme(s kmer.Scheme) Option {
	return func(o *Options) { o.Scheme = s }
}

// WithHasher installs a custom window hasher. Panics on nil.
func WithHasher(h kmer.Hasher) Option {
	if h == nil {
		panic("debruijn: WithHasher(nil)")
	}
	return func(o *Options) { o.Hasher = h }
}

// WithOnVertex installs a hook called for every new vertex. Panics on nil.
func WithOnVertex(fn func(id int, key kmer.Key) error) Option {
	if fn == nil {
		panic("debruijn: WithOnVertex(nil)")
	}
	return func(o *Options) { o.OnVertex = fn }
}

// WithOnEdge installs a hook called for every inserted edge. Panics on nil.
func WithOnEdge(fn func(from, to int, label string) error) Option {
	if fn == nil {
		panic("debruijn: WithOnEdge(nil)")
	}
	return func(o *Options) { o.OnEdge = fn }
}
