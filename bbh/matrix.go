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

// Package bbh computes Bidirectional Best Hits from a per-pair score matrix
// via a two-phase row-fill / column-invert resolver.
package bbh

// ScoreMatrix is a dense, row-major matrix of similarity scores for one
// genome pair. Cells are written exactly once during the row phase and read
// during the column phase; for same-genome comparisons only the strict
// upper triangle (col > row) is ever written.
type ScoreMatrix struct {
	rows, cols int
	data       []float64
}

// NewScoreMatrix allocates a zeroed R x C matrix.
func NewScoreMatrix(rows, cols int) ScoreMatrix {
	return ScoreMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// At returns the score at (row, col).
func (m *ScoreMatrix) At(row, col int) float64 {
	return m.data[row*m.cols+col]
}

// Set stores score at (row, col).
func (m *ScoreMatrix) Set(row, col int, score float64) {
	m.data[row*m.cols+col] = score
}

// Rows returns the number of rows.
func (m *ScoreMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *ScoreMatrix) Cols() int { return m.cols }
