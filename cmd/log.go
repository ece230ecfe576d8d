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
	"os"

	"github.com/mattn/go-colorable"
	logging "github.com/shenwei356/go-logging"
)

var log = logging.MustGetLogger("bbhfinder")

var logFormat = logging.MustStringFormatter(
	`%{color}[%{level:.4s}]%{color:reset} %{message}`,
)

func init() {
	backend := logging.NewLogBackend(colorable.NewColorableStderr(), "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFormat)
	logging.SetBackend(backendFormatter)
}

// addLog tees subsequent log output to file, in addition to stderr, and
// returns the open file handle for the caller to close at shutdown.
func addLog(file string, verbose bool) *os.File {
	fh, err := os.Create(file)
	checkError(err)

	backendFile := logging.NewLogBackend(fh, "", 0)
	backendFileFormatter := logging.NewBackendFormatter(backendFile, logFormat)

	backendStderr := logging.NewLogBackend(colorable.NewColorableStderr(), "", 0)
	backendStderrFormatter := logging.NewBackendFormatter(backendStderr, logFormat)
	backendStderrLeveled := logging.AddModuleLevel(backendStderrFormatter)
	if !verbose {
		backendStderrLeveled.SetLevel(logging.ERROR, "")
	}

	logging.SetBackend(backendFileFormatter, backendStderrLeveled)
	return fh
}

// checkError logs a fatal configuration or initialisation error and exits
// with a non-zero status. Only initialisation-time errors are surfaced this
// way; errors inside worker tasks are logged and swallowed instead (see
// bbh.Resolver and output.Writer).
func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
