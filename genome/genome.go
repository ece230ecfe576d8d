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

// Package genome holds the Gene/Genome aggregates the core algorithm
// operates on. It never reads files itself - callers (cmd/ingest.go) build a
// Container from parsed sequence records.
package genome

import (
	"sync"

	"github.com/kmerbbh/bbhfinder/kmer"
)

// Gene aggregates a sequence with its on-demand k-mer container.
type Gene struct {
	ID           string
	GenomeID     int
	FilePosition int
	Sequence     []byte

	Kmers *kmer.Container
}

// BuildKmers lazily builds g's k-mer container through mapper. Concurrent
// calls for distinct genes are safe; mapper.Intern is internally guarded.
func (g *Gene) BuildKmers(k int, mapper *kmer.Mapper) {
	if g.Kmers != nil {
		return
	}
	c := kmer.Build(g.Sequence, k, mapper)
	g.Kmers = &c
}

// ReleaseKmers drops the k-mer container, allowing the backing array to be
// garbage collected before the next genome pair is processed.
func (g *Gene) ReleaseKmers() {
	g.Kmers = nil
}

// Genome is an ordered list of genes sharing a genome id.
type Genome struct {
	ID    int
	Genes []Gene
}

// Size returns the number of genes in the genome.
func (g *Genome) Size() int { return len(g.Genes) }

// BuildKmers builds k-mer containers for every gene concurrently, using one
// goroutine per gene. The shared mapper serialises interning internally.
func (g *Genome) BuildKmers(k int, mapper *kmer.Mapper) {
	var wg sync.WaitGroup
	wg.Add(len(g.Genes))
	for i := range g.Genes {
		go func(i int) {
			defer wg.Done()
			g.Genes[i].BuildKmers(k, mapper)
		}(i)
	}
	wg.Wait()
}

// ReleaseKmers releases every gene's k-mer container.
func (g *Genome) ReleaseKmers() {
	for i := range g.Genes {
		g.Genes[i].ReleaseKmers()
	}
}

// Container is an ordered collection of genomes under comparison in one run.
type Container struct {
	Genomes []Genome
}

// GenomeCount returns the number of genomes in the container.
func (c *Container) GenomeCount() int { return len(c.Genomes) }
