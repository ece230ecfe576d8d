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

// Package output implements the append-only, thread-safe edge sink the BBH
// resolver's column phase writes to.
package output

import (
	"bufio"
	"os"
	"sync"
)

// Writer appends lines to a file opened in append mode. Write is safe for
// concurrent callers; there is no ordering guarantee between concurrent
// writes, only per-line atomicity.
//
// The teacher's github.com/shenwei356/xopen only opens files for
// transparent-compression reads or truncating writes; it has no append mode,
// so the underlying *os.File is opened directly with O_APPEND here (see
// DESIGN.md).
type Writer struct {
	mu sync.Mutex
	f  *os.File
	bw *bufio.Writer
}

// New opens path in append mode (creating it if necessary) and returns a
// Writer over it.
func New(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, bw: bufio.NewWriter(f)}, nil
}

// Write appends line followed by a newline. Errors are returned to the
// caller, which for the BBH resolver's column-phase tasks means: log and
// keep going, a lost line is tolerable for this offline analysis.
func (w *Writer) Write(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.bw.WriteString(line); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	return w.bw.Flush()
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.bw.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
