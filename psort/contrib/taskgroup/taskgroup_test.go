// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package taskgroup

import (
	"errors"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	g := New(4)
	if g.Limit() != 4 {
		t.Errorf("Limit() = %d, want 4", g.Limit())
	}
	if err := g.Wait(); err != nil {
		t.Errorf("Wait() on empty group = %v, want nil", err)
	}
}

func TestNewDefault(t *testing.T) {
	g := New(0)
	if g.Limit() != runtime.GOMAXPROCS(0) {
		t.Errorf("Limit() = %d, want %d", g.Limit(), runtime.GOMAXPROCS(0))
	}
}

func TestGoDisjointWrites(t *testing.T) {
	g := New(4)

	n := 100
	results := make([]int, n)
	chunk := 10
	for start := 0; start < n; start += chunk {
		g.Go(func() {
			for i := start; i < start+chunk; i++ {
				results[i] = i * 2
			}
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestWaitIsBarrier(t *testing.T) {
	g := New(8)
	var done atomic.Int32
	for range 8 {
		g.Go(func() {
			time.Sleep(5 * time.Millisecond)
			done.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if done.Load() != 8 {
		t.Errorf("Wait returned with %d/8 tasks done", done.Load())
	}
}

func TestLimitRespected(t *testing.T) {
	g := New(2)
	var running, peak atomic.Int32
	for range 10 {
		g.Go(func() {
			cur := running.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			running.Add(-1)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if peak.Load() > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak.Load())
	}
}

func TestPanicCaptured(t *testing.T) {
	g := New(4)
	var completed atomic.Int32
	for i := range 4 {
		g.Go(func() {
			if i == 2 {
				panic("chunk exploded")
			}
			completed.Add(1)
		})
	}
	err := g.Wait()
	if err == nil {
		t.Fatal("Wait() = nil, want *PanicError")
	}
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("Wait() = %T, want *PanicError", err)
	}
	if pe.Value != "chunk exploded" {
		t.Errorf("PanicError.Value = %v, want %q", pe.Value, "chunk exploded")
	}
	if len(pe.Stack) == 0 {
		t.Error("PanicError.Stack is empty")
	}
	if !strings.Contains(pe.Error(), "chunk exploded") {
		t.Errorf("Error() = %q, want it to mention the panic value", pe.Error())
	}
	// Other tasks still ran to completion before Wait returned.
	if completed.Load() != 3 {
		t.Errorf("completed = %d, want 3", completed.Load())
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	sentinel := errors.New("boom")
	err := Run(2, func() { panic(sentinel) })
	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is(%v, sentinel) = false, want true", err)
	}
}

func TestRun(t *testing.T) {
	if err := Run(4); err != nil {
		t.Errorf("Run with no tasks = %v, want nil", err)
	}

	var count atomic.Int32
	tasks := make([]func(), 7)
	for i := range tasks {
		tasks[i] = func() { count.Add(1) }
	}
	if err := Run(0, tasks...); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if count.Load() != 7 {
		t.Errorf("count = %d, want 7", count.Load())
	}
}

func BenchmarkRun(b *testing.B) {
	tasks := make([]func(), 16)
	for i := range tasks {
		tasks[i] = func() {
			for j := range 1000 {
				_ = j * j
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Run(runtime.GOMAXPROCS(0), tasks...)
	}
}
