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
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
)

func getFlagString(cmd *cobra.Command, name string) string {
	s, err := cmd.Flags().GetString(name)
	checkError(err)
	return s
}

func getFlagBool(cmd *cobra.Command, name string) bool {
	b, err := cmd.Flags().GetBool(name)
	checkError(err)
	return b
}

func getFlagInt(cmd *cobra.Command, name string) int {
	i, err := cmd.Flags().GetInt(name)
	checkError(err)
	return i
}

func getFlagNonNegativeInt(cmd *cobra.Command, name string) int {
	i := getFlagInt(cmd, name)
	if i < 0 {
		checkError(fmt.Errorf("value of flag --%s should be >= 0", name))
	}
	return i
}

func getFlagPositiveInt(cmd *cobra.Command, name string) int {
	i := getFlagInt(cmd, name)
	if i <= 0 {
		checkError(fmt.Errorf("value of flag --%s should be > 0", name))
	}
	return i
}

// expandPath expands a leading ~ to the user's home directory, following
// the teacher's use of mitchellh/go-homedir for path-valued flags.
func expandPath(path string) string {
	p, err := homedir.Expand(path)
	checkError(errors.Wrap(err, path))
	return p
}

// isStdin reports whether file denotes stdin.
func isStdin(file string) bool {
	return file == "-"
}

// checkOutFile ensures outFile can be written: it must not already exist
// unless force is set, in which case the existing file is removed, and its
// parent directory must exist.
func checkOutFile(outFile string, force bool) {
	if isStdin(outFile) {
		return
	}

	ok, err := pathutil.Exists(outFile)
	checkError(errors.Wrap(err, outFile))
	if ok && !force {
		checkError(fmt.Errorf("output file %s already exists, use --force to overwrite", outFile))
	}
	if ok && force {
		checkError(errors.Wrap(os.Remove(outFile), outFile))
	}

	dir := filepath.Dir(outFile)
	if dir != "." && dir != "" {
		if ok, err := pathutil.DirExists(dir); err != nil || !ok {
			checkError(fmt.Errorf("output directory does not exist: %s", dir))
		}
	}
}
