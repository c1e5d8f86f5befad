package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/eulerasm/assembly"
	"github.com/katalvlaran/eulerasm/debruijn"
	"github.com/katalvlaran/eulerasm/kmer"
	"github.com/katalvlaran/eulerasm/readset"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	k        int
	strategy string
	hash     string
	dna      bool
	noCheck  bool
	stats    bool
	quiet    bool
}

// run parses args, assembles, and reports. It never calls os.Exit.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.k, "k", 0, "k-mer overlap length (required, > 0)")
	fs.StringVar(&o.strategy, "strategy", "fine", "graph granularity: fine | coarse")
	fs.StringVar(&o.hash, "hash", "rolling", "k-mer hash: rolling | xxh3 | murmur3")
	fs.BoolVar(&o.dna, "dna", false, "reject symbols outside ACGT")
	fs.BoolVar(&o.noCheck, "no-check", false, "skip the Eulerian precondition check")
	fs.BoolVar(&o.stats, "stats", false, "print graph and traversal statistics to stderr")
	fs.BoolVar(&o.quiet, "quiet", false, "suppress warnings")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: assemble -k K [flags] [reads-file]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// 1. Flags → options
	if o.k <= 0 {
		fmt.Fprintln(stderr, "assemble: -k must be > 0")
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "assemble: at most one reads file")
		return exitUsage
	}
	strategy, err := debruijn.ParseStrategy(o.strategy)
	if err != nil {
		fmt.Fprintln(stderr, "assemble:", err)
		return exitUsage
	}
	scheme, err := kmer.ParseScheme(o.hash)
	if err != nil {
		fmt.Fprintln(stderr, "assemble:", err)
		return exitUsage
	}
	opts := []assembly.Option{assembly.WithStrategy(strategy), assembly.WithScheme(scheme)}
	if o.dna {
		opts = append(opts, assembly.WithAlphabet(assembly.DNA))
	}
	if o.noCheck {
		opts = append(opts, assembly.WithoutCheck())
	}

	// 2. Load reads
	set, err := load(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintln(stderr, "assemble:", err)
		return exitError
	}
	defer func() {
		if cerr := set.Close(); cerr != nil {
			warnf(stderr, o.quiet, "%v", cerr)
		}
	}()
	if set.Len() == 0 {
		warnf(stderr, o.quiet, "no reads in input")
	}

	// 3. Assemble
	rep, err := assembly.AssembleWithReport(o.k, set.Reads, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "assemble:", err)
		return exitError
	}
	fmt.Fprintln(stdout, rep.Sequence)

	if o.stats {
		fmt.Fprintf(stderr, "reads=%d vertices=%d edges=%d length=%d steps=%d max_depth=%d circuit=%t fingerprint=%016x\n",
			set.Len(), rep.Vertices, rep.Edges, len(rep.Sequence), rep.Steps, rep.MaxDepth, rep.Circuit, rep.Fingerprint)
	}

	return exitOK
}

// load maps path, or reads stdin when path is "" or "-".
func load(path string, stdin io.Reader) (*readset.Set, error) {
	if path != "" && path != "-" {
		return readset.Load(path)
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return readset.FromBytes(b), nil
}

// warnf writes a WARN line unless quiet.
func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
