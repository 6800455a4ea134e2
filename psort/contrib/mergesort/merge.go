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

// Merge merges the sorted runs seq[left..mid] and seq[mid+1..right]
// (both bounds inclusive) into a single sorted run seq[left..right].
//
// Ties take the element from the left run first, so the merge is stable.
//
// scratch must be addressable at [left..right]; those positions are
// overwritten and hold no meaningful data after the call. Merge does not
// validate its arguments: left <= mid < right and right < len(seq) are the
// caller's responsibility.
func Merge[T psort.Number](seq []T, left, mid, right int, scratch []T) {
	// Runs already in order.
	if seq[mid] <= seq[mid+1] {
		return
	}

	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		if seq[i] <= seq[j] {
			scratch[k] = seq[i]
			i++
		} else {
			scratch[k] = seq[j]
			j++
		}
		k++
	}

	// At most one of the two runs has a tail left.
	k += copy(scratch[k:], seq[i:mid+1])
	copy(scratch[k:], seq[j:right+1])

	copy(seq[left:right+1], scratch[left:right+1])
}
