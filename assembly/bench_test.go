package assembly_test

import (
	"testing"

	"github.com/katalvlaran/eulerasm/assembly"
	"github.com/katalvlaran/eulerasm/kmer"
)

// BenchmarkAssemble_Fine measures build + traversal on 10,000 reads with
// k = 31, d = 32.
func BenchmarkAssemble_Fine(b *testing.B) {
	s := uniqueDNA(1, 10_031, 31)
	reads := slide(s, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = assembly.Assemble(31, reads)
	}
}

// BenchmarkAssemble_Schemes compares the O(1) rolling update against
// per-window xxh3 and murmur3 for long windows.
func BenchmarkAssemble_Schemes(b *testing.B) {
	s := uniqueDNA(2, 5_063, 63)
	reads := slide(s, 64)
	for _, sc := range []kmer.Scheme{kmer.SchemeRolling, kmer.SchemeXXH3, kmer.SchemeMurmur3} {
		b.Run(sc.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = assembly.Assemble(63, reads, assembly.WithScheme(sc), assembly.WithoutCheck())
			}
		})
	}
}
