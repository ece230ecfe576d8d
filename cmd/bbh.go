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
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/kmerbbh/bbhfinder/bbh"
	"github.com/kmerbbh/bbhfinder/output"
)

var bbhCmd = &cobra.Command{
	Use:   "bbh",
	Short: "compute Bidirectional Best Hits across genomes",
	Long: `compute Bidirectional Best Hits across genomes

Each positional argument is a (gzipped) FASTA/FASTQ file holding one
genome's genes. Output is a ".net" file of "row,col,score" lines, one per
BBH edge.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		var fhLog *os.File
		if opt.Log2File {
			fhLog = addLog(opt.LogFile, opt.Verbose)
		}
		outputLog := opt.Verbose || opt.Log2File

		timeStart := time.Now()
		defer func() {
			if outputLog {
				log.Info()
				log.Infof("elapsed time: %s", time.Since(timeStart))
			}
			if opt.Log2File {
				fhLog.Close()
			}
		}()

		if listFile := getFlagString(cmd, "genome-files-from"); listFile != "" {
			files, err := genomeFilesFrom(expandPath(listFile))
			checkError(err)
			args = append(append([]string{}, args...), files...)
		}
		if len(args) == 0 {
			checkError(fmt.Errorf("at least one genome file is required"))
		}

		k := getFlagPositiveInt(cmd, "kmer-len")
		outPrefix := expandPath(getFlagString(cmd, "out-prefix"))
		if outPrefix == "" {
			checkError(fmt.Errorf("flag -o/--out-prefix needed"))
		}
		outFile := outPrefix + ".net"
		checkOutFile(outFile, getFlagBool(cmd, "force"))

		modeStr := getFlagString(cmd, "mode")
		var mode bbh.Mode
		switch modeStr {
		case "lazy":
			mode = bbh.Lazy
		case "eager":
			mode = bbh.Eager
		default:
			checkError(fmt.Errorf("invalid --mode %q, must be lazy or eager", modeStr))
		}

		if outputLog {
			log.Infof("loading %d genome file(s)", len(args))
		}
		genomes, err := loadGenomes(args)
		checkError(err)

		writer, err := output.New(outFile)
		checkError(err)
		defer writer.Close()

		resolver, err := bbh.NewResolver(k, opt.NumCPUs, mode)
		checkError(err)
		defer resolver.Close()

		emit := bbh.DefaultEmit(writer, func(err error) {
			log.Warningf("failed to write BBH edge: %s", err)
		})

		var bar *mpb.Bar
		var pbs *mpb.Progress
		if opt.Verbose {
			total := bbh.PairCount(genomes.GenomeCount())
			pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
			bar = pbs.AddBar(total,
				mpb.PrependDecorators(
					decor.Name("genome pairs: ", decor.WC{W: len("genome pairs: "), C: decor.DindentRight}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
					decor.EwmaETA(decor.ET_STYLE_GO, 10),
					decor.OnComplete(decor.Name(""), ". done"),
				),
			)
			resolver.OnPairDone = func() { bar.Increment() }
		}

		resolver.Run(genomes, emit)

		if pbs != nil {
			pbs.Wait()
		}

		if outputLog {
			log.Infof("BBH results written to: %s", outFile)
		}
	},
}

func init() {
	RootCmd.AddCommand(bbhCmd)

	bbhCmd.Flags().IntP("kmer-len", "k", 12,
		formatFlagUsage(`K-mer length.`))
	bbhCmd.Flags().StringP("out-prefix", "o", "",
		formatFlagUsage(`Output path prefix; ".net" is appended.`))
	bbhCmd.Flags().StringP("mode", "m", "lazy",
		formatFlagUsage(`K-mer lifecycle: "lazy" (recompute per pair) or "eager" (precompute once).`))
	bbhCmd.Flags().BoolP("force", "f", false,
		formatFlagUsage(`Overwrite the output file if it already exists.`))
	bbhCmd.Flags().String("genome-files-from", "",
		formatFlagUsage(`Read genome file paths, one per line, from this file (appended after any positional args).`))

	bbhCmd.SetUsageTemplate(usageTemplate("-k <kmer-len> -o <out-prefix> genome1.fa genome2.fa ..."))
}
