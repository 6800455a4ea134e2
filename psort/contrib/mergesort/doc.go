// Package mergesort provides an in-place parallel merge sort for numeric
// slices.
//
// # Algorithm
//
// ParallelSort works in two phases separated by a barrier:
//   - Sort phase: the slice is split into at most psort.MaxWorkers
//     contiguous chunks of ceil(n/workers) elements. Each chunk is copied
//     into a private buffer, merge sorted there, and copied back into its
//     own disjoint sub-slice.
//   - Merge phase: adjacent runs are merged pairwise, starting at the chunk
//     width and doubling after every pass until one run covers the slice.
//     Merges of one pass touch disjoint ranges and run concurrently; a pass
//     finishes completely before the next one starts.
//
// With one worker, or for tiny inputs, the work happens on the calling
// goroutine through the same recursive merge sort used inside each chunk.
//
// # Supported Types
//
// Any type satisfying psort.Number: signed and unsigned integers, float32
// and float64. NaN values do not have a defined position in the output.
//
// # Example Usage
//
//	import "github.com/parsort/go-parsort/psort/contrib/mergesort"
//
//	func Process(data []float64) {
//	    mergesort.ParallelSort(data, 4) // In-place ascending sort
//	}
//
//	func Check(data []float64) bool {
//	    return mergesort.IsSorted(data)
//	}
//
// The sort is stable: equal elements keep their relative order.
package mergesort
