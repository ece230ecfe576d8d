// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package bbh

import (
	"fmt"

	"github.com/kmerbbh/bbhfinder/genome"
	"github.com/kmerbbh/bbhfinder/kmer"
	"github.com/kmerbbh/bbhfinder/output"
	"github.com/kmerbbh/bbhfinder/similarity"
	"github.com/kmerbbh/bbhfinder/workerpool"
)

// Mode selects the resolver driver's k-mer lifecycle shape. The inner
// row/column algorithms are identical in both modes.
type Mode int

const (
	// Lazy builds k-mer containers just before use and releases them
	// immediately after each pair - two genomes' worth of k-mers resident
	// at any time.
	Lazy Mode = iota
	// Eager builds every genome's k-mers up front; faster on small inputs,
	// unbounded peak memory.
	Eager
)

// OnEdge is invoked for every emitted BBH edge, with the row and column
// genes already resolved. The default CLI wiring writes
// "<row.FilePosition>,<col.FilePosition>,<score>" to an output.Writer; tests
// substitute a recording callback.
type OnEdge func(row, col *genome.Gene, score float64)

// Resolver drives k-mer construction and the row/column BBH phases over an
// ordered list of genomes, using a fixed-size worker pool.
type Resolver struct {
	K      int
	Mode   Mode
	Pool   *workerpool.Pool
	Mapper *kmer.Mapper

	// OnPairDone, if set, is invoked once after each same- or
	// different-genome pair has been fully resolved (row phase, column
	// phase, and emission all complete). Used by the CLI to drive a
	// progress bar; optional for library callers.
	OnPairDone func()
}

// NewResolver validates k and threadCount and returns a ready Resolver.
func NewResolver(k, threadCount int, mode Mode) (*Resolver, error) {
	if k <= 0 {
		return nil, fmt.Errorf("invalid k-mer length: %d, must be positive", k)
	}
	if threadCount < 1 {
		return nil, fmt.Errorf("invalid thread count: %d, must be >= 1", threadCount)
	}
	return &Resolver{
		K:      k,
		Mode:   mode,
		Pool:   workerpool.New(threadCount),
		Mapper: kmer.NewMapper(1 << 16),
	}, nil
}

// Close stops the resolver's worker pool.
func (r *Resolver) Close() {
	r.Pool.Stop()
}

// Run computes BBH edges for every ordered pair (i<=j) of genomes in g and
// emits them through emit. It never returns edges for i>j and de-duplicates
// same-genome pairs (only r<c within one genome is ever emitted).
func (r *Resolver) Run(g *genome.Container, emit OnEdge) {
	genomes := g.Genomes

	if r.Mode == Eager {
		for i := range genomes {
			genomes[i].BuildKmers(r.K, r.Mapper)
		}
	}

	for i := range genomes {
		rowGenome := &genomes[i]
		if r.Mode == Lazy {
			rowGenome.BuildKmers(r.K, r.Mapper)
		}

		r.resolveSameGenome(rowGenome, emit)
		r.notifyPairDone()

		for j := i + 1; j < len(genomes); j++ {
			colGenome := &genomes[j]
			if r.Mode == Lazy {
				colGenome.BuildKmers(r.K, r.Mapper)
			}

			r.resolvePair(rowGenome, colGenome, emit)
			r.notifyPairDone()

			if r.Mode == Lazy {
				colGenome.ReleaseKmers()
			}
		}

		rowGenome.ReleaseKmers()
	}
}

func (r *Resolver) notifyPairDone() {
	if r.OnPairDone != nil {
		r.OnPairDone()
	}
}

// PairCount returns the number of ordered genome-pair comparisons
// (including same-genome pairs) Run will perform over n genomes.
func PairCount(n int) int64 {
	return int64(n) + int64(n*(n-1)/2)
}

// resolvePair computes BBH edges between two distinct genomes: row = rowGenome's
// genes, col = colGenome's genes.
func (r *Resolver) resolvePair(rowGenome, colGenome *genome.Genome, emit OnEdge) {
	rowGenes := rowGenome.Genes
	colGenes := colGenome.Genes

	matrix := NewScoreMatrix(len(rowGenes), len(colGenes))
	candidates := NewCandidatesContainer(len(rowGenes))

	r.fillRows(rowGenes, colGenes, &matrix, &candidates, false)
	r.invertAndEmit(rowGenes, colGenes, &matrix, &candidates, false, emit)
}

// resolveSameGenome computes BBH edges within one genome, restricted to the
// strict upper triangle (col > row) to avoid self-pairs and duplicate
// unordered pairs.
func (r *Resolver) resolveSameGenome(g *genome.Genome, emit OnEdge) {
	genes := g.Genes

	matrix := NewScoreMatrix(len(genes), len(genes))
	candidates := NewCandidatesContainer(len(genes))

	r.fillRows(genes, genes, &matrix, &candidates, true)
	r.invertAndEmit(genes, genes, &matrix, &candidates, true, emit)
}

// fillRows is the row phase: one task per row, each writing a disjoint row
// of matrix and a disjoint CandidateSet. same restricts each row r to
// columns c > r.
func (r *Resolver) fillRows(rowGenes, colGenes []genome.Gene, matrix *ScoreMatrix, candidates *CandidatesContainer, same bool) {
	for row := 0; row < len(rowGenes); row++ {
		row := row
		r.Pool.Submit(func() {
			start := 0
			if same {
				start = row + 1
			}
			for col := start; col < len(colGenes); col++ {
				s := similarity.Score(&rowGenes[row], &colGenes[col])
				matrix.Set(row, col, s)
				candidates.Sets[row].Update(col, s)
			}
		})
	}
	r.Pool.Wait()
}

// invertAndEmit is the column phase: invert candidates by column, then for
// each column find its best-scoring rows and emit an edge for every row
// that is mutually best. same restricts the column scan to rows r < c, the
// same upper triangle (c > r) that fillRows writes, so each unordered pair is
// considered exactly once in total.
func (r *Resolver) invertAndEmit(rowGenes, colGenes []genome.Gene, matrix *ScoreMatrix, candidates *CandidatesContainer, same bool, emit OnEdge) {
	columns := candidates.Invert()

	for _, col := range columns {
		col := col
		r.Pool.Submit(func() {
			limit := len(rowGenes)
			if same {
				limit = col
			}

			colBest := -1.0
			var colBestRows []int
			for row := 0; row < limit; row++ {
				s := matrix.At(row, col)
				switch {
				case s > colBest:
					colBest = s
					colBestRows = append(colBestRows[:0], row)
				case s == colBest:
					colBestRows = append(colBestRows, row)
				}
			}

			if colBest <= 0 {
				return
			}

			for _, row := range colBestRows {
				if colBest == candidates.BestScore(row) {
					emit(&rowGenes[row], &colGenes[col], colBest)
				}
			}
		})
	}
	r.Pool.Wait()
}

// DefaultEmit returns an OnEdge that formats "<row>,<col>,<score>" and
// writes it to w, logging and continuing on write error.
func DefaultEmit(w *output.Writer, onError func(error)) OnEdge {
	return func(row, col *genome.Gene, score float64) {
		line := fmt.Sprintf("%d,%d,%g", row.FilePosition, col.FilePosition, score)
		if err := w.Write(line); err != nil && onError != nil {
			onError(err)
		}
	}
}
