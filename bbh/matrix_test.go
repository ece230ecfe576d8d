package bbh

import (
	"testing"

	"github.com/kmerbbh/bbhfinder/genome"
)

// Invariant 6: after the row phase, candidates[r].Best equals the max score
// on row r, and Columns is exactly the set of columns attaining it.
func TestRowPhaseCandidateInvariant(t *testing.T) {
	r := newResolver(t, 3)
	rowGenes := []genome.Gene{
		{FilePosition: 0, Sequence: []byte("ABCABCXYZ")},
	}
	colGenes := []genome.Gene{
		{FilePosition: 1, Sequence: []byte("ABCABCXYZ")}, // identical
		{FilePosition: 2, Sequence: []byte("QQQQQQQQQ")}, // disjoint
	}
	for i := range rowGenes {
		rowGenes[i].BuildKmers(3, r.Mapper)
	}
	for i := range colGenes {
		colGenes[i].BuildKmers(3, r.Mapper)
	}

	matrix := NewScoreMatrix(len(rowGenes), len(colGenes))
	candidates := NewCandidatesContainer(len(rowGenes))
	r.fillRows(rowGenes, colGenes, &matrix, &candidates, false)

	wantBest := 0.0
	var wantCols []int
	for c := 0; c < matrix.Cols(); c++ {
		s := matrix.At(0, c)
		if s > wantBest {
			wantBest = s
			wantCols = []int{c}
		} else if s == wantBest && s > 0 {
			wantCols = append(wantCols, c)
		}
	}

	if candidates.Sets[0].Best != wantBest {
		t.Fatalf("Best = %v, want %v", candidates.Sets[0].Best, wantBest)
	}
	if len(candidates.Sets[0].Columns) != len(wantCols) {
		t.Fatalf("Columns = %v, want %v", candidates.Sets[0].Columns, wantCols)
	}
}
