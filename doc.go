// Package eulerasm reconstructs a sequence ("genome") from equal-length
// overlapping reads by walking an Eulerian path through a de Bruijn graph.
//
// Reads are sliding-window samples of an unknown sequence. Their k-length
// windows become vertices, observed adjacencies become edges, and a walk
// that uses every edge exactly once spells the original sequence.
//
// Packages:
//
//	kmer/      — symbol encoding, O(1) rolling hash, xxh3/murmur3 window hashers, k-mer keys
//	debruijn/  — arena multigraph, fine- and coarse-grained builders, Eulerian checks, fingerprint
//	euler/     — iterative Hierholzer traversal writing the output back-to-front
//	assembly/  — Assemble(k, reads) entry point and concurrent AssembleBatch
//	readset/   — one-read-per-line input, memory-mapped zero-copy loading
//	cmd/assemble — command-line front end
//
// Quick example:
//
//	ACTG
//	 CTGA
//	  TGAC      k = 3  →  ACTGAC
//
//	seq, _ := assembly.Assemble(3, []string{"ACTG", "CTGA", "TGAC"})
//
// Input is assumed exact: no sequencing-error tolerance, no circular genomes,
// uniform read lengths only. Violations are reported as errors before the
// graph is traversed.
package eulerasm
