// Copyright 2025 go-parsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mergesort

import (
	"context"

	"github.com/parsort/go-parsort/psort"
	"github.com/parsort/go-parsort/psort/contrib/taskgroup"
	"golang.org/x/sys/cpu"
)

// chunkBuffer is the private working memory of one sort-phase worker.
// Padded so that neighbouring workers never share a cache line.
type chunkBuffer[T psort.Number] struct {
	_       cpu.CacheLinePad
	local   []T
	scratch []T
	_       cpu.CacheLinePad
}

// ParallelSort sorts seq in place using up to numThreads workers (see
// EffectiveWorkers for the cap actually applied). It returns once seq is
// completely sorted.
//
// numThreads <= 1 sorts on the calling goroutine with Sort.
//
// If a worker panics, ParallelSort panics on the calling goroutine with the
// *taskgroup.PanicError after the remaining workers of that phase have
// returned. The content of seq is then unspecified.
func ParallelSort[T psort.Number](seq []T, numThreads int) {
	if err := ParallelSortContext(context.Background(), seq, numThreads); err != nil {
		panic(err)
	}
}

// ParallelSortContext is like ParallelSort but reports a worker panic as a
// *taskgroup.PanicError instead of panicking.
//
// ctx is checked once, after the sort phase barrier: if it is done by then
// the merge phase is skipped and ctx.Err() is returned, leaving every chunk
// sorted but the slice as a whole unsorted. Running workers are never
// interrupted.
func ParallelSortContext[T psort.Number](ctx context.Context, seq []T, numThreads int) error {
	n := len(seq)
	if n == 0 {
		return nil
	}

	if numThreads <= 1 {
		Sort(seq)
		return nil
	}

	chunks, chunkSize := Partition(n, numThreads)
	if err := sortChunks(seq, chunks); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	scratch := make([]T, n)
	return mergeRuns(seq, MergePasses(n, chunkSize), len(chunks), scratch)
}

// sortChunks sorts every chunk of seq on its own worker and waits for all
// of them. Each worker writes only seq[c.Start:c.End+1].
func sortChunks[T psort.Number](seq []T, chunks []Chunk) error {
	buffers := make([]chunkBuffer[T], len(chunks))

	g := taskgroup.New(len(chunks))
	for i, c := range chunks {
		buf := &buffers[i]
		dst := seq[c.Start : c.End+1]
		g.Go(func() {
			buf.local = make([]T, len(dst))
			buf.scratch = make([]T, len(dst))
			copy(buf.local, dst)
			SequentialSort(buf.local, 0, len(buf.local)-1, buf.scratch)
			copy(dst, buf.local)
			buf.local, buf.scratch = nil, nil
		})
	}
	return g.Wait()
}

// mergeRuns executes the merge schedule. Steps of a pass run concurrently on
// up to workers goroutines sharing scratch (each step only touches
// scratch[Left..Right]); the next pass starts only after the whole pass has
// finished.
func mergeRuns[T psort.Number](seq []T, passes [][]MergeStep, workers int, scratch []T) error {
	for _, pass := range passes {
		g := taskgroup.New(min(workers, len(pass)))
		for _, s := range pass {
			g.Go(func() {
				Merge(seq, s.Left, s.Mid, s.Right, scratch)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}
