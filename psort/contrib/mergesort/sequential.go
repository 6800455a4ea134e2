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

// Sort sorts seq in place on the calling goroutine.
// It allocates one scratch buffer of len(seq) elements.
func Sort[T psort.Number](seq []T) {
	n := len(seq)
	if n <= 1 {
		return
	}
	scratch := make([]T, n)
	SequentialSort(seq, 0, n-1, scratch)
}

// SequentialSort sorts seq[left..right] (inclusive) in place using
// top-down recursive merge sort. Ranges with left >= right are already
// sorted and left untouched.
//
// scratch must be addressable at [left..right]; its content there is
// unspecified after the call.
func SequentialSort[T psort.Number](seq []T, left, right int, scratch []T) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	SequentialSort(seq, left, mid, scratch)
	SequentialSort(seq, mid+1, right, scratch)
	Merge(seq, left, mid, right, scratch)
}
