package debruijn_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/eulerasm/debruijn"
	"github.com/katalvlaran/eulerasm/kmer"
)

// constHasher maps every window to the same fingerprint, forcing every
// lookup through the value-equality fallback.
type constHasher struct{}

func (constHasher) Hash(string, int) uint64 { return 7 }
func (constHasher) Sum(string) uint64       { return 7 }

var overlapReads = []string{"ACTG", "CTGA", "TGAC"}

// BuildSuite covers construction for both strategies.
type BuildSuite struct {
	suite.Suite
}

// TestFineGrained verifies vertex dedup, edge count, in-degrees and labels.
func (s *BuildSuite) TestFineGrained() {
	g, err := debruijn.Build(3, overlapReads)
	require.NoError(s.T(), err)

	// Windows: ACT CTG | CTG TGA | TGA GAC → 4 distinct k-mers.
	require.Equal(s.T(), 4, g.VertexCount())
	require.Equal(s.T(), 3, g.EdgeCount())
	require.Equal(s.T(), 3, g.PayloadLen())
	require.Equal(s.T(), debruijn.FineGrained, g.Strategy())
	require.Equal(s.T(), 3, g.K())

	act, ok := g.Lookup("ACT")
	require.True(s.T(), ok)
	gac, ok := g.Lookup("GAC")
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, g.OutDegree(act))
	require.Equal(s.T(), 0, g.InDegree(act))
	require.Equal(s.T(), 0, g.OutDegree(gac))
	require.Equal(s.T(), 1, g.InDegree(gac))

	e, ok := g.PopEdge(act)
	require.True(s.T(), ok)
	ctg, _ := g.Lookup("CTG")
	require.Equal(s.T(), ctg, e.To)
	require.Equal(s.T(), "G", e.Label)
}

// TestCoarseGrained verifies one edge per read labeled with read[k:].
func (s *BuildSuite) TestCoarseGrained() {
	reads := []string{"ACGTTG", "TTGCAA"}
	g, err := debruijn.Build(3, reads, debruijn.WithStrategy(debruijn.CoarseGrained))
	require.NoError(s.T(), err)

	// Vertices: ACG, TTG, CAA (TTG shared).
	require.Equal(s.T(), 3, g.VertexCount())
	require.Equal(s.T(), 2, g.EdgeCount())
	require.Equal(s.T(), 6, g.PayloadLen())

	acg, _ := g.Lookup("ACG")
	e, ok := g.PopEdge(acg)
	require.True(s.T(), ok)
	require.Equal(s.T(), "TTG", e.Label)
	require.Equal(s.T(), "TTG", g.Key(e.To).Value)
}

// TestDedupAcrossReads checks that equal windows from different reads and
// offsets collapse to one vertex and that in-degree counts every insertion.
func (s *BuildSuite) TestDedupAcrossReads() {
	g, err := debruijn.Build(2, []string{"AAC", "GAA", "AAC"})
	require.NoError(s.T(), err)

	// AA, AC, GA
	require.Equal(s.T(), 3, g.VertexCount())
	require.Equal(s.T(), 3, g.EdgeCount())
	ac, _ := g.Lookup("AC")
	require.Equal(s.T(), 2, g.InDegree(ac))
	aa, _ := g.Lookup("AA")
	require.Equal(s.T(), 2, g.OutDegree(aa))
	require.Equal(s.T(), 1, g.InDegree(aa))
}

// TestHashCollisions builds with a constant hasher: value equality must
// still separate distinct k-mers.
func (s *BuildSuite) TestHashCollisions() {
	want, err := debruijn.Build(3, overlapReads)
	require.NoError(s.T(), err)

	g, err := debruijn.Build(3, overlapReads, debruijn.WithHasher(constHasher{}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), want.VertexCount(), g.VertexCount())
	require.Equal(s.T(), want.EdgeCount(), g.EdgeCount())

	_, ok := g.Lookup("TGA")
	require.True(s.T(), ok)
	_, ok = g.Lookup("AAA")
	require.False(s.T(), ok)
	_, ok = g.Lookup("TG")
	require.False(s.T(), ok, "wrong-length window never matches")
}

// TestSchemes verifies that every hashing scheme produces the same graph shape.
func (s *BuildSuite) TestSchemes() {
	for _, sc := range []kmer.Scheme{kmer.SchemeRolling, kmer.SchemeXXH3, kmer.SchemeMurmur3} {
		g, err := debruijn.Build(3, overlapReads, debruijn.WithScheme(sc))
		require.NoError(s.T(), err, sc.String())
		require.Equal(s.T(), 4, g.VertexCount(), sc.String())
		require.Equal(s.T(), 3, g.EdgeCount(), sc.String())
		_, ok := g.Lookup("CTG")
		require.True(s.T(), ok, sc.String())
	}
}

// TestHooks checks hook order and abort semantics.
func (s *BuildSuite) TestHooks() {
	var created []string
	var labels []string
	_, err := debruijn.Build(3, overlapReads,
		debruijn.WithOnVertex(func(id int, key kmer.Key) error {
			created = append(created, key.Value)
			return nil
		}),
		debruijn.WithOnEdge(func(from, to int, label string) error {
			labels = append(labels, label)
			return nil
		}),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"ACT", "CTG", "TGA", "GAC"}, created)
	require.Equal(s.T(), []string{"G", "A", "C"}, labels)

	stop := errors.New("stop")
	_, err = debruijn.Build(3, overlapReads, debruijn.WithOnEdge(func(int, int, string) error {
		return stop
	}))
	require.ErrorIs(s.T(), err, stop)
}

// TestPopEdgeDrains verifies LIFO draining and the Remaining counter.
func (s *BuildSuite) TestPopEdgeDrains() {
	g, err := debruijn.Build(2, []string{"AAC", "AAG"})
	require.NoError(s.T(), err)
	aa, _ := g.Lookup("AA")
	require.Equal(s.T(), 2, g.Remaining())

	e, ok := g.PopEdge(aa)
	require.True(s.T(), ok)
	require.Equal(s.T(), "G", e.Label, "last inserted edge pops first")
	e, ok = g.PopEdge(aa)
	require.True(s.T(), ok)
	require.Equal(s.T(), "C", e.Label)
	_, ok = g.PopEdge(aa)
	require.False(s.T(), ok)
	require.Equal(s.T(), 0, g.Remaining())
	require.Equal(s.T(), 2, g.EdgeCount(), "EdgeCount is not affected by draining")
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestBuild_Validation(t *testing.T) {
	cases := []struct {
		name  string
		k     int
		reads []string
		want  error
	}{
		{"zero k", 0, overlapReads, debruijn.ErrBadK},
		{"negative k", -1, overlapReads, debruijn.ErrBadK},
		{"no reads", 3, nil, debruijn.ErrNoReads},
		{"short read", 5, overlapReads, debruijn.ErrReadTooShort},
		{"mixed lengths", 2, []string{"ACGT", "ACG"}, debruijn.ErrReadLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := debruijn.Build(tc.k, tc.reads)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := debruijn.Build(3, overlapReads, debruijn.WithStrategy(debruijn.Strategy(9)))
	assert.ErrorIs(t, err, debruijn.ErrUnknownStrategy)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { debruijn.WithHasher(nil) })
	assert.Panics(t, func() { debruijn.WithOnVertex(nil) })
	assert.Panics(t, func() { debruijn.WithOnEdge(nil) })
}

func TestParseStrategy(t *testing.T) {
	s, err := debruijn.ParseStrategy("Coarse")
	require.NoError(t, err)
	assert.Equal(t, debruijn.CoarseGrained, s)

	s, err = debruijn.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, debruijn.FineGrained, s)

	_, err = debruijn.ParseStrategy("medium")
	assert.ErrorIs(t, err, debruijn.ErrUnknownStrategy)
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name  string
		k     int
		reads []string
		want  error
	}{
		{"path", 3, overlapReads, nil},
		{"circuit", 2, []string{"ABAB"}, nil},
		{"single repeated k-mer", 3, []string{"ACT", "ACT"}, nil},
		{"two sources", 2, []string{"AAC", "GGT"}, debruijn.ErrUnbalanced},
		{"skewed", 2, []string{"AAC", "AAC", "AAC", "CCA"}, debruijn.ErrUnbalanced},
		{"two circuits", 2, []string{"ABAB", "CDCD"}, debruijn.ErrDisconnected},
		{"isolated k-mers", 3, []string{"ACT", "GGA"}, debruijn.ErrDisconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := debruijn.Build(tc.k, tc.reads)
			require.NoError(t, err)
			err = debruijn.Check(g)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBalance(t *testing.T) {
	g, err := debruijn.Build(3, overlapReads)
	require.NoError(t, err)
	d := debruijn.Balance(g)
	act, _ := g.Lookup("ACT")
	gac, _ := g.Lookup("GAC")
	assert.Equal(t, []int{act}, d.Sources)
	assert.Equal(t, []int{gac}, d.Sinks)
	assert.Empty(t, d.Skewed)
	assert.True(t, d.Balanced())
}

// TestFingerprint_PermutationInvariant shuffles the reads and expects the
// same vertex set, the same edge count and the same fingerprint.
func TestFingerprint_PermutationInvariant(t *testing.T) {
	reads := []string{"ACGTA", "CGTAC", "GTACG", "TACGG", "ACGGA", "CGGAT"}
	base, err := debruijn.Build(4, reads)
	require.NoError(t, err)
	want := debruijn.Fingerprint(base)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		perm := append([]string(nil), reads...)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

		g, err := debruijn.Build(4, perm)
		require.NoError(t, err)
		assert.Equal(t, base.VertexCount(), g.VertexCount())
		assert.Equal(t, base.EdgeCount(), g.EdgeCount())
		for id := 0; id < base.VertexCount(); id++ {
			_, ok := g.Lookup(base.Key(id).Value)
			assert.True(t, ok, base.Key(id).Value)
		}
		assert.Equal(t, want, debruijn.Fingerprint(g))
	}

	other, err := debruijn.Build(4, reads[:3])
	require.NoError(t, err)
	assert.NotEqual(t, want, debruijn.Fingerprint(other))
}
