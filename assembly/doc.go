// Package assembly is the entry point: it turns a collection of equal-length
// reads into the sequence they were sampled from.
//
//	seq, err := assembly.Assemble(3, []string{"ACTG", "CTGA", "TGAC"})
//	// seq == "ACTGAC"
//
// Pipeline:
//
//  1. Short-circuit: k == 0 or no reads → "" with no error.
//  2. Validate: uniform read length d ≥ k, optional alphabet check.
//  3. Build the de Bruijn graph (debruijn.Build).
//  4. Check the Eulerian precondition (debruijn.Check); WithoutCheck skips it.
//  5. Traverse (euler.Path).
//
// The result has length k + n·(d−k) for n reads.
//
// Every call is independent: no state is shared between calls, so separate
// read sets may be assembled concurrently. AssembleBatch does exactly that
// with a bounded errgroup. A single read set is always assembled on one
// goroutine.
package assembly
