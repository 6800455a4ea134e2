// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package taskgroup provides a bounded, single-use group of parallel tasks
// with a barrier. A Group is created for one phase of work, tasks are
// spawned onto it, and Wait blocks until every one of them has returned.
//
// Unlike a persistent pool, nothing outlives the phase: there is no queue,
// no work stealing and no cancellation of running tasks. A task that
// panics is captured as a *PanicError and surfaced by Wait, so the failure
// lands in the goroutine that owns the data instead of crashing the process
// from a worker.
//
// Usage:
//
//	g := taskgroup.New(len(chunks))
//	for _, c := range chunks {
//	    g.Go(func() {
//	        process(c)
//	    })
//	}
//	if err := g.Wait(); err != nil {
//	    // at least one task panicked
//	}
package taskgroup

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Group runs tasks on at most Limit() goroutines at a time.
// A Group must not be reused after Wait returns.
type Group struct {
	limit int
	eg    errgroup.Group
}

// New creates a group running at most limit tasks concurrently.
// If limit <= 0, uses GOMAXPROCS.
func New(limit int) *Group {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g := &Group{limit: limit}
	g.eg.SetLimit(limit)
	return g
}

// Limit returns the maximum number of tasks running at the same time.
func (g *Group) Limit() int {
	return g.limit
}

// Go starts fn on its own goroutine. It blocks while Limit() tasks are
// already running.
func (g *Group) Go(fn func()) {
	g.eg.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
		fn()
		return nil
	})
}

// Wait blocks until every task started with Go has returned. It returns the
// first captured *PanicError, or nil if all tasks completed normally.
func (g *Group) Wait() error {
	return g.eg.Wait()
}

// Run executes every task on a fresh group of the given limit and waits
// for all of them. If limit <= 0, uses GOMAXPROCS.
func Run(limit int, tasks ...func()) error {
	if len(tasks) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g := New(min(limit, len(tasks)))
	for _, task := range tasks {
		g.Go(task)
	}
	return g.Wait()
}

// PanicError records a panic raised by a task.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the stack trace of the panicking goroutine.
	Stack []byte
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Unwrap returns Value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
