package euler

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to Path.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("euler: graph is empty")

	// ErrGraphConsumed indicates the graph was already traversed.
	ErrGraphConsumed = errors.New("euler: graph edges already consumed")

	// ErrOverflow indicates more output than the buffer computed from the graph.
	ErrOverflow = errors.New("euler: output buffer overflow")

	// ErrIncompletePath indicates the traversal ended with edges left unused.
	ErrIncompletePath = errors.New("euler: path does not cover every edge")
)

// Option configures Path.
type Option func(*Options)

// Options holds traversal hooks.
type Options struct {
	// OnVisit, if non-nil, is invoked each time a frame for vertex v is pushed.
	// Returning an error aborts the traversal.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked when vertex v is exhausted, just after
	// label was written. Returning an error aborts the traversal.
	OnExit func(v int, label string) error
}

// DefaultOptions returns Options without hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs a hook called on every frame push.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a hook called on every frame emit.
func WithOnExit(fn func(v int, label string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// Result is the outcome of a traversal.
type Result struct {
	// Sequence is the reconstructed string of length K() + PayloadLen().
	Sequence string

	// Start is the vertex the path started from.
	Start int

	// Circuit is true when no vertex had surplus out-degree and the
	// traversal fell back to vertex 0.
	Circuit bool

	// Steps counts consumed edges.
	Steps int

	// MaxDepth is the largest stack size reached.
	MaxDepth int
}
