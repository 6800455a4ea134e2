package arrayio

import (
	"github.com/gravitational/trace"
	"github.com/parsort/go-parsort/psort"
)

// convert turns a decoded MessagePack number into T.
func convert[T psort.Number](item any) (T, error) {
	switch v := item.(type) {
	case int64:
		return fromInt[T](v)
	case int:
		return fromInt[T](int64(v))
	case int32:
		return fromInt[T](int64(v))
	case int16:
		return fromInt[T](int64(v))
	case int8:
		return fromInt[T](int64(v))
	case uint64:
		return fromUint[T](v)
	case uint:
		return fromUint[T](uint64(v))
	case uint32:
		return fromUint[T](uint64(v))
	case uint16:
		return fromUint[T](uint64(v))
	case uint8:
		return fromUint[T](uint64(v))
	case float64:
		return fromFloat[T](v)
	case float32:
		return fromFloat[T](float64(v))
	}
	var zero T
	return zero, trace.BadParameter("non-numeric value of type %T", item)
}

func fromInt[T psort.Number](v int64) (T, error) {
	t := T(v)
	if psort.IsFloat[T]() {
		return t, nil
	}
	if int64(t) != v || (v < 0) != (t < 0) {
		return 0, trace.BadParameter("integer %d overflows %T", v, t)
	}
	return t, nil
}

func fromUint[T psort.Number](v uint64) (T, error) {
	t := T(v)
	if psort.IsFloat[T]() {
		return t, nil
	}
	if uint64(t) != v || t < 0 {
		return 0, trace.BadParameter("integer %d overflows %T", v, t)
	}
	return t, nil
}

func fromFloat[T psort.Number](v float64) (T, error) {
	if !psort.IsFloat[T]() {
		var zero T
		return zero, trace.BadParameter("non-integer value %v for %T", v, zero)
	}
	return T(v), nil
}
