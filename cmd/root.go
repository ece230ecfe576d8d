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

// Package cmd implements the bbhfinder CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the entry point of the bbhfinder CLI.
var RootCmd = &cobra.Command{
	Use:   "bbhfinder",
	Short: "compute pairwise Bidirectional Best Hits between genomes",
	Long: `bbhfinder computes pairwise Bidirectional Best Hits (BBH) between
genes across one or more genomes, using a k-mer-based Generalized Jaccard
similarity.
`,
}

// Execute runs the CLI and exits the process with a non-zero status on
// error.
func Execute() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().IntP("threads", "j", 0,
		formatFlagUsage(`Number of worker threads. 0 for all available CPUs.`))
	RootCmd.PersistentFlags().BoolP("quiet", "q", false,
		formatFlagUsage(`Suppress progress and info logging.`))
	RootCmd.PersistentFlags().StringP("log", "", "",
		formatFlagUsage(`Log file, in addition to stderr.`))
}

func formatFlagUsage(s string) string {
	return s
}

func usageTemplate(extra string) string {
	return fmt.Sprintf(`Usage:{{if .Runnable}}
  {{.UseLine}} %s{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`, extra)
}
