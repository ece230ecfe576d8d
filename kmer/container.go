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

package kmer

import "sort"

// Entry is one (key, multiplicity) pair in a gene's k-mer multiset.
type Entry struct {
	Key        Key
	Multiplicity int
}

// Container is the sparse, key-sorted multiset of k-mers for one gene.
//
// invariant: Entries is sorted by Key ascending, keys are distinct, and every
// Multiplicity is > 0. SmallestKey/LargestKey are only meaningful when
// len(Entries) > 0 - querying them on an empty container is a programming
// error, not a recoverable one.
type Container struct {
	Entries           []Entry
	SmallestKey       Key
	LargestKey        Key
	TotalMultiplicity int
	DistinctCount     int
}

// Empty reports whether the container holds no k-mers (gene shorter than k).
func (c *Container) Empty() bool {
	return c.DistinctCount == 0
}

// Build enumerates every length-k window of seq, interns each distinct
// window through mapper, and returns the resulting sorted Container. If
// len(seq) < k the result is an empty Container.
func Build(seq []byte, k int, mapper *Mapper) Container {
	if k <= 0 || len(seq) < k {
		return Container{}
	}

	n := len(seq) - k + 1

	// Local substring -> (key, multiplicity) map avoids re-interning an
	// already-seen window of this gene through the mapper's mutex more
	// than once per distinct substring.
	seen := make(map[string]int, n)
	keys := make(map[string]Key, n)

	for i := 0; i < n; i++ {
		w := string(seq[i : i+k])
		if _, ok := seen[w]; ok {
			seen[w]++
			continue
		}
		seen[w] = 1
		keys[w] = mapper.Intern(w)
	}

	entries := make([]Entry, 0, len(seen))
	for w, mult := range seen {
		entries = append(entries, Entry{Key: keys[w], Multiplicity: mult})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	c := Container{
		Entries:       entries,
		DistinctCount: len(entries),
	}
	if len(entries) > 0 {
		c.SmallestKey = entries[0].Key
		c.LargestKey = entries[len(entries)-1].Key
	}
	total := 0
	for _, e := range entries {
		total += e.Multiplicity
	}
	c.TotalMultiplicity = total

	return c
}
