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

import "github.com/twotwotwo/sorts/sortutil"

// CandidateSet tracks the best score observed so far on one row and every
// column index attaining it.
//
// invariant: either Best == 0 and Columns is empty, or Best > 0 and Columns
// is non-empty with every member tied at Best.
type CandidateSet struct {
	Best    float64
	Columns []int
}

// Update folds in a newly observed (col, score) pair for this row.
func (c *CandidateSet) Update(col int, score float64) {
	switch {
	case score > c.Best:
		c.Best = score
		c.Columns = append(c.Columns[:0], col)
	case score == c.Best && c.Best > 0:
		c.Columns = append(c.Columns, col)
	}
}

// CandidatesContainer holds one CandidateSet per row.
type CandidatesContainer struct {
	Sets []CandidateSet
}

// NewCandidatesContainer allocates rows empty CandidateSets.
func NewCandidatesContainer(rows int) CandidatesContainer {
	return CandidatesContainer{Sets: make([]CandidateSet, rows)}
}

// BestScore returns the best score recorded for row r.
func (c *CandidatesContainer) BestScore(r int) float64 {
	return c.Sets[r].Best
}

// Invert collects every column that is one of some row's best-scoring
// columns - the only columns the driver's column phase needs to visit at
// all, since any other column can hold no BBH edge. The result is sorted for
// a deterministic column processing order.
func (c *CandidatesContainer) Invert() []int {
	seen := make(map[int]bool)
	for r := range c.Sets {
		for _, col := range c.Sets[r].Columns {
			seen[col] = true
		}
	}
	cols := make([]int, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sortutil.Ints(cols)
	return cols
}
