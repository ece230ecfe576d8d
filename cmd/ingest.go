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

package cmd

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"

	"github.com/kmerbbh/bbhfinder/genome"
)

// genomeFilesFrom reads one genome file path per line from path (which may
// itself be gzip-compressed). Blank lines and "#"-prefixed comment lines are
// skipped.
func genomeFilesFrom(path string) ([]string, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var files []string
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// loadGenomes reads one FASTA/FASTQ file per genome and builds a
// genome.Container. Genome id is the 0-based file ordinal; gene
// filePosition is the 0-based record ordinal within its file.
func loadGenomes(files []string) (*genome.Container, error) {
	seq.ValidateSeq = false

	container := &genome.Container{Genomes: make([]genome.Genome, len(files))}

	for gi, file := range files {
		reader, err := fastx.NewReader(nil, file, "")
		if err != nil {
			return nil, err
		}

		var genes []genome.Gene
		pos := 0
		for {
			record, err := reader.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				reader.Close()
				return nil, err
			}

			genes = append(genes, genome.Gene{
				ID:           string(record.ID),
				GenomeID:     gi,
				FilePosition: pos,
				Sequence:     append([]byte(nil), bytes.ToUpper(record.Seq.Seq)...),
			})
			pos++
		}
		reader.Close()

		container.Genomes[gi] = genome.Genome{ID: gi, Genes: genes}
	}

	return container, nil
}
