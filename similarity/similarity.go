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

// Package similarity computes the Generalized (weighted) Jaccard score
// between two genes' k-mer multisets.
package similarity

import (
	"github.com/kmerbbh/bbhfinder/genome"
	"github.com/kmerbbh/bbhfinder/kmer"
)

// Score returns the Generalized Jaccard similarity between a and b's k-mer
// multisets, in [0,1]. Both genes must already have their k-mer containers
// built. Returns 0 if either container is empty.
func Score(a, b *genome.Gene) float64 {
	la, lb := len(a.Sequence), len(b.Sequence)

	// Length filter: at this disparity the Jaccard upper bound is trivially
	// small, so skip the merge entirely.
	if la < lb/2 || lb < la/2 {
		return 0
	}

	ca, cb := a.Kmers, b.Kmers
	if ca == nil || cb == nil || ca.Empty() || cb.Empty() {
		return 0
	}

	// Canonical ordering: short has fewer distinct k-mers, minimising the
	// swept set.
	short, long := ca, cb
	if short.DistinctCount > long.DistinctCount {
		short, long = long, short
	}

	return merge(short, long)
}

// merge streams two sorted k-mer multisets and returns the Generalized
// Jaccard score, terminating early once short's cursor passes long's largest
// key.
func merge(short, long *kmer.Container) float64 {
	var num, den int
	var matchedShort, matchedLong int

	i, j := 0, 0
	se, le := short.Entries, long.Entries

	for i < len(se) && j < len(le) {
		sk, lk := se[i].Key, le[j].Key

		if sk > long.LargestKey {
			break
		}

		switch {
		case sk < lk:
			i++
		case sk > lk:
			j++
		default:
			a, b := se[i].Multiplicity, le[j].Multiplicity
			if a < b {
				num += a
				den += b
			} else {
				num += b
				den += a
			}
			matchedShort += a
			matchedLong += b
			i++
			j++
		}
	}

	unmatchedShort := short.TotalMultiplicity - matchedShort
	unmatchedLong := long.TotalMultiplicity - matchedLong

	divisor := den + unmatchedShort + unmatchedLong
	if divisor == 0 {
		return 0
	}
	return float64(num) / float64(divisor)
}
