// Package mathutil contains width-agnostic integer helpers shared by the 24-bit types.
package mathutil

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// InRange reports whether lo <= v <= hi, comparing mathematical values.
// lo must not exceed hi.
func InRange[T constraints.Integer](v T, lo, hi int64) bool {
	if IsSigned[T]() {
		x := int64(v)
		return lo <= x && x <= hi
	}
	if hi < 0 {
		return false
	}
	x := uint64(v)
	if lo > 0 && x < uint64(lo) {
		return false
	}
	return x <= uint64(hi)
}

// Clamp saturates v to [lo, hi].
func Clamp[T constraints.Integer](v T, lo, hi int64) int64 {
	if IsSigned[T]() {
		x := int64(v)
		switch {
		case x < lo:
			return lo
		case x > hi:
			return hi
		}
		return x
	}
	x := uint64(v)
	switch {
	case hi < 0 || x > uint64(hi):
		return hi
	case lo > 0 && x < uint64(lo):
		return lo
	}
	return int64(x)
}

// IntegralFloat returns f as an int64 if f holds an integer value within int64 range.
func IntegralFloat[F constraints.Float](f F) (int64, bool) {
	x := float64(f)
	// -2^63 is exact, 2^63 is the first value past the range.
	if x != math.Trunc(x) || x < math.MinInt64 || x >= -math.MinInt64 {
		return 0, false
	}
	return int64(x), true
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
