// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int24

import "cmp"

// Comparisons promote both operands to a common wide type, so they compare
// mathematical values, never stored bit patterns.
// Cmp* methods return -1, 0 or +1 and order a NaN before every number,
// as cmp.Compare does. Eq* methods follow IEEE 754, a NaN is never equal.
// Narrower native types can be passed to the 64-bit variants without loss.

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Int24) Cmp(other Int24) int {
	return cmp.Compare(v.Int32(), other.Int32())
}

// Eq returns v == other.
func (v Int24) Eq(other Int24) bool {
	return v == other
}

// Less returns v < other.
func (v Int24) Less(other Int24) bool {
	return v.Int32() < other.Int32()
}

// CmpUInt24 compares v with an unsigned value.
func (v Int24) CmpUInt24(other UInt24) int {
	return cmp.Compare(v.Int64(), other.Int64())
}

// EqUInt24 returns true if v and other hold the same number.
func (v Int24) EqUInt24(other UInt24) bool {
	return v.Int64() == other.Int64()
}

// CmpInt64 compares v with x.
func (v Int24) CmpInt64(x int64) int {
	return cmp.Compare(v.Int64(), x)
}

// EqInt64 returns v == x.
func (v Int24) EqInt64(x int64) bool {
	return v.Int64() == x
}

// CmpUint64 compares v with x.
func (v Int24) CmpUint64(x uint64) int {
	if v.stored&SignBit != 0 {
		return -1
	}
	return cmp.Compare(uint64(v.stored), x)
}

// EqUint64 returns v == x.
func (v Int24) EqUint64(x uint64) bool {
	return v.CmpUint64(x) == 0
}

// CmpFloat64 compares v with f.
func (v Int24) CmpFloat64(f float64) int {
	return cmp.Compare(v.Float64(), f)
}

// EqFloat64 returns v == f.
func (v Int24) EqFloat64(f float64) bool {
	return v.Float64() == f
}

// CmpFloat32 compares v with f.
func (v Int24) CmpFloat32(f float32) int {
	return v.CmpFloat64(float64(f))
}

// EqFloat32 returns v == f.
func (v Int24) EqFloat32(f float32) bool {
	return v.EqFloat64(float64(f))
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v UInt24) Cmp(other UInt24) int {
	return cmp.Compare(v.stored, other.stored)
}

// Eq returns v == other.
func (v UInt24) Eq(other UInt24) bool {
	return v == other
}

// Less returns v < other.
func (v UInt24) Less(other UInt24) bool {
	return v.stored < other.stored
}

// CmpInt24 compares v with a signed value.
func (v UInt24) CmpInt24(other Int24) int {
	return -other.CmpUInt24(v)
}

// EqInt24 returns true if v and other hold the same number.
func (v UInt24) EqInt24(other Int24) bool {
	return other.EqUInt24(v)
}

// CmpInt64 compares v with x.
func (v UInt24) CmpInt64(x int64) int {
	return cmp.Compare(v.Int64(), x)
}

// EqInt64 returns v == x.
func (v UInt24) EqInt64(x int64) bool {
	return v.Int64() == x
}

// CmpUint64 compares v with x.
func (v UInt24) CmpUint64(x uint64) int {
	return cmp.Compare(v.Uint64(), x)
}

// EqUint64 returns v == x.
func (v UInt24) EqUint64(x uint64) bool {
	return v.Uint64() == x
}

// CmpFloat64 compares v with f.
func (v UInt24) CmpFloat64(f float64) int {
	return cmp.Compare(v.Float64(), f)
}

// EqFloat64 returns v == f.
func (v UInt24) EqFloat64(f float64) bool {
	return v.Float64() == f
}

// CmpFloat32 compares v with f.
func (v UInt24) CmpFloat32(f float32) int {
	return v.CmpFloat64(float64(f))
}

// EqFloat32 returns v == f.
func (v UInt24) EqFloat32(f float32) bool {
	return v.EqFloat64(float64(f))
}
