package bbh

import (
	"sort"
	"testing"

	"github.com/kmerbbh/bbhfinder/genome"
)

type edge struct {
	row, col int
	score    float64
}

func collectEdges(t *testing.T, r *Resolver, g *genome.Container) []edge {
	t.Helper()
	var edges []edge
	r.Run(g, func(row, col *genome.Gene, score float64) {
		edges = append(edges, edge{row.FilePosition, col.FilePosition, score})
	})
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].row != edges[j].row {
			return edges[i].row < edges[j].row
		}
		return edges[i].col < edges[j].col
	})
	return edges
}

func newResolver(t *testing.T, k int) *Resolver {
	t.Helper()
	r, err := NewResolver(k, 4, Lazy)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(r.Close)
	return r
}

// S1 - trivial identical genes.
func TestScenarioIdenticalGenesSameGenome(t *testing.T) {
	r := newResolver(t, 2)
	g := &genome.Container{Genomes: []genome.Genome{
		{ID: 0, Genes: []genome.Gene{
			{FilePosition: 0, Sequence: []byte("AAAA")},
			{FilePosition: 1, Sequence: []byte("AAAA")},
		}},
	}}

	edges := collectEdges(t, r, g)
	if len(edges) != 1 || edges[0] != (edge{0, 1, 1}) {
		t.Fatalf("edges = %+v, want [{0 1 1}]", edges)
	}
}

// S5 - BBH tie-breaking: both ties on one side are emitted. y1 and y2 are
// also identical to each other, so the same-genome pass over genome 1 adds
// its own (1,2,1) edge on top of the two cross-genome ties: that third edge
// is expected too, not a bug.
func TestScenarioTieBreaking(t *testing.T) {
	r := newResolver(t, 3)
	g := &genome.Container{Genomes: []genome.Genome{
		{ID: 0, Genes: []genome.Gene{
			{FilePosition: 0, Sequence: []byte("ABCABC")}, // x
		}},
		{ID: 1, Genes: []genome.Gene{
			{FilePosition: 1, Sequence: []byte("ABCABC")}, // y1, identical to x
			{FilePosition: 2, Sequence: []byte("ABCABC")}, // y2, identical to x
		}},
	}}

	edges := collectEdges(t, r, g)
	if len(edges) != 3 {
		t.Fatalf("edges = %+v, want 3 tied BBH edges", edges)
	}
	for _, e := range edges {
		if e.score != 1 {
			t.Fatalf("unexpected edge %+v", e)
		}
	}
}

// S6 - column best mismatch: only the column's true best partner is BBH.
// a and b are both in genome 0, so the same-genome pass also resolves their
// own (mutually-best, since it's the only pair in that genome) BBH edge:
// Score(a,b) = 7/9 (7 shared "AAA" 3-mers out of a union of 9). That edge is
// asserted alongside the cross-genome one so the column-best check has two
// real row candidates (a, b) to discriminate between for column c.
func TestScenarioColumnBestMismatch(t *testing.T) {
	r := newResolver(t, 3)
	// a shares more of c's content than b does, so c's column-best is a.
	g := &genome.Container{Genomes: []genome.Genome{
		{ID: 0, Genes: []genome.Gene{
			{FilePosition: 0, Sequence: []byte("AAAAAAAAAA")}, // a
			{FilePosition: 1, Sequence: []byte("AAAAAAAAAC")}, // b
		}},
		{ID: 1, Genes: []genome.Gene{
			{FilePosition: 2, Sequence: []byte("AAAAAAAAAA")}, // c
		}},
	}}

	edges := collectEdges(t, r, g)
	want := []edge{{0, 1, 7.0 / 9.0}, {0, 2, 1}}
	if len(edges) != len(want) {
		t.Fatalf("edges = %+v, want %+v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("edges = %+v, want %+v", edges, want)
		}
	}
}

// S2/S3 - no edges when similarity is always zero.
func TestScenarioNoEdgesWhenDisjoint(t *testing.T) {
	r := newResolver(t, 3)
	g := &genome.Container{Genomes: []genome.Genome{
		{ID: 0, Genes: []genome.Gene{{FilePosition: 0, Sequence: []byte("AAAAA")}}},
		{ID: 1, Genes: []genome.Gene{{FilePosition: 1, Sequence: []byte("CCCCC")}}},
	}}

	if edges := collectEdges(t, r, g); len(edges) != 0 {
		t.Fatalf("edges = %+v, want none", edges)
	}
}

func TestSameGenomeNoSelfPairsAndNoDuplicates(t *testing.T) {
	r := newResolver(t, 3)
	genes := make([]genome.Gene, 5)
	for i := range genes {
		genes[i] = genome.Gene{FilePosition: i, Sequence: []byte("ACGTACGTAC")}
	}
	g := &genome.Container{Genomes: []genome.Genome{{ID: 0, Genes: genes}}}

	edges := collectEdges(t, r, g)
	seen := make(map[[2]int]bool)
	for _, e := range edges {
		if e.row == e.col {
			t.Fatalf("self-pair emitted: %+v", e)
		}
		key := [2]int{e.row, e.col}
		if seen[key] {
			t.Fatalf("duplicate pair emitted: %+v", e)
		}
		seen[key] = true
	}
}

func TestLazyAndEagerProduceSameEdgeSet(t *testing.T) {
	build := func() *genome.Container {
		return &genome.Container{Genomes: []genome.Genome{
			{ID: 0, Genes: []genome.Gene{
				{FilePosition: 0, Sequence: []byte("ABCABCXYZ")},
				{FilePosition: 1, Sequence: []byte("ABCXYZQRS")},
			}},
			{ID: 1, Genes: []genome.Gene{
				{FilePosition: 2, Sequence: []byte("ABCABCXYZ")},
				{FilePosition: 3, Sequence: []byte("QRSQRSQRS")},
			}},
		}}
	}

	rLazy, err := NewResolver(3, 4, Lazy)
	if err != nil {
		t.Fatal(err)
	}
	defer rLazy.Close()
	rEager, err := NewResolver(3, 4, Eager)
	if err != nil {
		t.Fatal(err)
	}
	defer rEager.Close()

	lazyEdges := collectEdges(t, rLazy, build())
	eagerEdges := collectEdges(t, rEager, build())

	if len(lazyEdges) != len(eagerEdges) {
		t.Fatalf("lazy=%v eager=%v", lazyEdges, eagerEdges)
	}
	for i := range lazyEdges {
		if lazyEdges[i] != eagerEdges[i] {
			t.Fatalf("edge sets differ at %d: %+v vs %+v", i, lazyEdges[i], eagerEdges[i])
		}
	}
}

func TestNewResolverRejectsInvalidConfig(t *testing.T) {
	if _, err := NewResolver(0, 4, Lazy); err == nil {
		t.Fatal("expected error for k=0")
	}
	if _, err := NewResolver(3, 0, Lazy); err == nil {
		t.Fatal("expected error for threadCount=0")
	}
}
