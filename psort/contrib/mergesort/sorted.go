package mergesort

import "github.com/parsort/go-parsort/psort"

// IsSorted reports whether seq is in non-decreasing order.
// Empty and single-element slices are sorted.
func IsSorted[T psort.Number](seq []T) bool {
	return FirstUnsorted(seq) < 0
}

// FirstUnsorted returns the smallest index i such that seq[i] < seq[i-1],
// or -1 if seq is sorted.
func FirstUnsorted[T psort.Number](seq []T) int {
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return i
		}
	}
	return -1
}
