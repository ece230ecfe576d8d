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

// Package kmer interns k-mer substrings into dense integer keys and builds
// the per-gene sparse multiset used by the similarity engine.
package kmer

import "sync"

// Key is a dense, process-wide, first-seen-order identifier for a distinct
// k-mer substring.
type Key = uint32

// Mapper is a bijective, concurrency-safe substring -> Key table, shared
// across every gene of the genomes being compared in one batch. It outlives
// a single genome-pair cursor and is owned by the batch driver.
type Mapper struct {
	mu    sync.Mutex
	table map[string]Key
}

// NewMapper creates an empty Mapper with room for n distinct k-mers.
func NewMapper(n int) *Mapper {
	return &Mapper{table: make(map[string]Key, n)}
}

// Intern returns the existing key for s if seen before, otherwise assigns
// and returns the next unused key. Safe for concurrent callers.
func (m *Mapper) Intern(s string) Key {
	m.mu.Lock()
	defer m.mu.Unlock()

	if k, ok := m.table[s]; ok {
		return k
	}
	k := Key(len(m.table))
	m.table[s] = k
	return k
}

// Len returns the number of distinct k-mers interned so far.
func (m *Mapper) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.table)
}
