package similarity

import (
	"testing"

	"github.com/kmerbbh/bbhfinder/genome"
	"github.com/kmerbbh/bbhfinder/kmer"
)

func gene(seq string, k int, mapper *kmer.Mapper) *genome.Gene {
	g := &genome.Gene{Sequence: []byte(seq)}
	g.BuildKmers(k, mapper)
	return g
}

func TestScoreIdenticalIsOne(t *testing.T) {
	mapper := kmer.NewMapper(16)
	g := gene("AAAA", 2, mapper)

	if s := Score(g, g); s != 1 {
		t.Fatalf("Score(g,g) = %v, want 1", s)
	}
}

func TestScoreSymmetric(t *testing.T) {
	mapper := kmer.NewMapper(16)
	a := gene("ABCABC", 3, mapper)
	b := gene("ABCXYZ", 3, mapper)

	if Score(a, b) != Score(b, a) {
		t.Fatalf("Score not symmetric: %v != %v", Score(a, b), Score(b, a))
	}
}

func TestScoreLengthFilter(t *testing.T) {
	mapper := kmer.NewMapper(4)
	a := gene(seqOfLen(100), 4, mapper)
	b := gene(seqOfLen(49), 4, mapper)

	if s := Score(a, b); s != 0 {
		t.Fatalf("Score = %v, want 0 (length filter)", s)
	}
}

func TestScoreDisjointAlphabets(t *testing.T) {
	mapper := kmer.NewMapper(4)
	a := gene("AAAAA", 3, mapper)
	b := gene("CCCCC", 3, mapper)

	if s := Score(a, b); s != 0 {
		t.Fatalf("Score = %v, want 0 (disjoint)", s)
	}
}

func TestScorePartialOverlap(t *testing.T) {
	mapper := kmer.NewMapper(8)
	a := gene("ABCABC", 3, mapper)
	b := gene("ABCXYZ", 3, mapper)

	got := Score(a, b)
	want := 1.0 / 7.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Score = %v, want %v", got, want)
	}
}

func TestScoreBounds(t *testing.T) {
	mapper := kmer.NewMapper(16)
	a := gene("ABCABCXYZ", 3, mapper)
	b := gene("ABCXYZQRS", 3, mapper)

	s := Score(a, b)
	if s < 0 || s > 1 {
		t.Fatalf("Score = %v, out of [0,1]", s)
	}
}

func seqOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[i%4]
	}
	return string(b)
}
