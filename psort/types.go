// Package psort holds the shared building blocks of go-parsort: the numeric
// element constraints accepted by the sorters and the runtime detection of
// how much hardware parallelism is worth asking for.
//
// The sorting engine itself lives in psort/contrib/mergesort:
//
//	import "github.com/parsort/go-parsort/psort/contrib/mergesort"
//
//	data := []int64{5, 4, 3, 2, 1}
//	mergesort.ParallelSort(data, psort.DefaultWorkers())
//	mergesort.IsSorted(data) // true
package psort

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for every element type the sorters accept.
// All of them are totally ordered by <, except for NaN floats.
type Number interface {
	Floats | Integers
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}
