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

// Package workerpool provides a fixed-size worker pool with an unbounded
// task queue and a completion fence, the rendezvous point the BBH resolver
// uses between its row and column phases.
package workerpool

import (
	"log"
	"sync"
)

// Task is a fire-and-forget unit of work. Errors must be handled (typically
// logged) by the task itself; a panicking task is recovered and logged by
// the pool, and does not poison the pool.
type Task func()

// Pool is a fixed-size set of worker goroutines draining an unbounded FIFO
// queue. Submit never blocks the caller on queue capacity.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	pending int // queued + currently executing
	closed  bool
	wg      sync.WaitGroup
}

// New starts a Pool with n worker goroutines. n is clamped to at least 1.
func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 && p.closed {
			p.mu.Unlock()
			return
		}
		t := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.run(t)

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
		p.mu.Unlock()
	}
}

func (p *Pool) run(t Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("workerpool: task panicked: %v", r)
		}
	}()
	t()
}

// Submit enqueues task for execution by some worker. Safe for concurrent
// callers.
func (p *Pool) Submit(task Task) {
	p.mu.Lock()
	p.queue = append(p.queue, task)
	p.pending++
	p.cond.Broadcast()
	p.mu.Unlock()
}

// Wait blocks until every submitted task (up to the point of the call) has
// finished executing and the queue is empty. This is the inter-phase fence:
// callers proceed only once all previously submitted tasks have run.
func (p *Pool) Wait() {
	p.mu.Lock()
	for p.pending != 0 {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// Stop signals workers to exit once the queue drains and blocks until they
// have. Safe to call once at shutdown.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}
