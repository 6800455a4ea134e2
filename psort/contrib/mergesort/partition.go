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

import "github.com/parsort/go-parsort/psort"

// Chunk is a contiguous, inclusive index range [Start, End] handed to
// exactly one worker during the sort phase.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of elements in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start + 1
}

// EffectiveWorkers returns the number of workers actually used to sort n
// elements when w are requested: min(w, n, psort.MaxWorkers), and never
// less than 1 for a non-empty input.
func EffectiveWorkers(n, w int) int {
	if n <= 0 {
		return 0
	}
	return max(min(w, n, psort.MaxWorkers), 1)
}

// Partition splits [0, n) into contiguous chunks of chunkSize =
// ceil(n / EffectiveWorkers(n, w)) elements; the last chunk holds the
// remainder. Chunks that would start at or past n are not created, so
// fewer than EffectiveWorkers chunks may be returned.
//
// The chunks tile [0, n) exactly: chunks[i].End+1 == chunks[i+1].Start.
func Partition(n, w int) (chunks []Chunk, chunkSize int) {
	workers := EffectiveWorkers(n, w)
	if workers == 0 {
		return nil, 0
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize = (n + workers - 1) / workers

	chunks = make([]Chunk, 0, workers)
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			// No work for this worker
			break
		}
		chunks = append(chunks, Chunk{
			Start: start,
			End:   min(start+chunkSize, n) - 1,
		})
	}
	return chunks, chunkSize
}

// MergeStep is one pairwise merge of the runs [Left..Mid] and
// [Mid+1..Right].
type MergeStep struct {
	Left  int
	Mid   int
	Right int
}

// MergePasses returns the merge schedule for n elements whose runs of
// width runSize are already sorted. Each pass merges adjacent pairs of runs
// and doubles the run width; passes stop once a run covers all n elements.
//
// Steps within one pass touch disjoint ranges. Pass k+1 requires every step
// of pass k to have completed.
func MergePasses(n, runSize int) [][]MergeStep {
	if n <= 1 || runSize <= 0 {
		return nil
	}

	var passes [][]MergeStep
	for width := runSize; width < n; width *= 2 {
		var pass []MergeStep
		for i := 0; i < n; i += 2 * width {
			mid := min(i+width-1, n-1)
			right := min(i+2*width-1, n-1)
			if mid < right {
				pass = append(pass, MergeStep{Left: i, Mid: mid, Right: right})
			}
		}
		passes = append(passes, pass)
	}
	return passes
}
