// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int24

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/avdva/int24/internal/mathutil"

	"golang.org/x/exp/constraints"
)

// UInt24 is a 24-bit unsigned integer.
// The zero value is 0. Values are immutable and can be compared with ==.
type UInt24 struct {
	stored uint32
}

func inUint24Range(v uint64) bool {
	return v <= MaxUint24
}

// NewUInt24 returns a UInt24 for v. It panics if v is outside [0, MaxUint24].
func NewUInt24[T constraints.Integer](v T) UInt24 {
	if !mathutil.InRange(v, 0, MaxUint24) {
		panic(fmt.Errorf("%w: %d is outside the representable range of UInt24 (0...%d)", ErrRange, v, MaxUint24))
	}
	return UInt24{stored: uint32(v)}
}

// UInt24Exactly returns a UInt24 for v, or false if v is out of range.
func UInt24Exactly[T constraints.Integer](v T) (UInt24, bool) {
	if !mathutil.InRange(v, 0, MaxUint24) {
		return UInt24{}, false
	}
	return UInt24{stored: uint32(v)}, true
}

// UInt24Truncating keeps the low 24 bits of v.
func UInt24Truncating[T constraints.Integer](v T) UInt24 {
	return UInt24{stored: uint32(v) & Mask}
}

// UInt24Clamping returns v saturated to [0, MaxUint24].
func UInt24Clamping[T constraints.Integer](v T) UInt24 {
	return UInt24{stored: uint32(mathutil.Clamp(v, 0, MaxUint24))}
}

// UInt24FromFloat rounds f to the nearest integer, halfway cases away from zero.
// It panics if the rounded value is outside [0, MaxUint24], or f is NaN.
func UInt24FromFloat[F constraints.Float](f F) UInt24 {
	r := math.Round(float64(f))
	if !(r >= 0 && r <= MaxUint24) {
		panic(fmt.Errorf("%w: %v is outside the representable range of UInt24 (0...%d)", ErrRange, f, MaxUint24))
	}
	return UInt24{stored: uint32(r)}
}

// UInt24ExactlyFloat returns a UInt24 for f if f is an integer within range.
func UInt24ExactlyFloat[F constraints.Float](f F) (UInt24, bool) {
	i, ok := mathutil.IntegralFloat(f)
	if !ok {
		return UInt24{}, false
	}
	return UInt24Exactly(i)
}

// UInt24FromBits reinterprets the bits of i as an unsigned value.
func UInt24FromBits(i Int24) UInt24 {
	return UInt24{stored: i.stored}
}

// ParseUInt24 parses a string into a UInt24.
// It accepts Go integer literals, like "0xff_ffff", and integral floats, like "1e3".
func ParseUInt24(s string) (UInt24, error) {
	i, err := parseInteger(s)
	if err != nil {
		return UInt24{}, err
	}
	v, ok := UInt24Exactly(i)
	if !ok {
		return UInt24{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	return v, nil
}

// MustParseUInt24 is like ParseUInt24, but panics on error.
func MustParseUInt24(s string) UInt24 {
	v, err := ParseUInt24(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Uint32 returns the value as a uint32.
func (v UInt24) Uint32() uint32 {
	return v.stored
}

// Uint64 returns the value as a uint64.
func (v UInt24) Uint64() uint64 {
	return uint64(v.stored)
}

// Int32 returns the value as an int32. The conversion is exact.
func (v UInt24) Int32() int32 {
	return int32(v.stored)
}

// Int64 returns the value as an int64.
func (v UInt24) Int64() int64 {
	return int64(v.stored)
}

// Int returns the value as an int.
func (v UInt24) Int() int {
	return int(v.stored)
}

// Float64 returns the value as a float64. The conversion is exact.
func (v UInt24) Float64() float64 {
	return float64(v.stored)
}

// Raw returns the stored 24-bit pattern.
func (v UInt24) Raw() uint32 {
	return v.stored
}

// Magnitude returns v.
func (v UInt24) Magnitude() UInt24 {
	return v
}

// Words returns the value as limbs, least significant first.
func (v UInt24) Words() []uint {
	return []uint{uint(v.stored)}
}

// IsSigned returns false.
func (v UInt24) IsSigned() bool {
	return false
}

// BitWidth returns 24.
func (v UInt24) BitWidth() int {
	return BitWidth
}

// String returns the decimal representation of v.
func (v UInt24) String() string {
	return strconv.FormatUint(v.Uint64(), 10)
}

// AddOverflow returns v+other and true if the sum exceeds MaxUint24.
// The sum is wrapped on overflow.
func (v UInt24) AddOverflow(other UInt24) (UInt24, bool) {
	return UInt24{stored: (v.stored + other.stored) & Mask}, v.stored > MaxUint24-other.stored
}

// SubOverflow returns v-other and true if other > v.
// The difference is wrapped on overflow.
func (v UInt24) SubOverflow(other UInt24) (UInt24, bool) {
	return UInt24{stored: (v.stored - other.stored) & Mask}, v.stored < other.stored
}

// MulOverflow returns v*other and true if the product exceeds MaxUint24.
// The product is truncated to 24 bits on overflow.
func (v UInt24) MulOverflow(other UInt24) (UInt24, bool) {
	p := uint64(v.stored) * uint64(other.stored)
	return UInt24{stored: uint32(p) & Mask}, p > MaxUint24
}

// DivOverflow returns v/other. Only division by zero overflows, it returns (0, true).
func (v UInt24) DivOverflow(other UInt24) (UInt24, bool) {
	if other.stored == 0 {
		return UInt24{}, true
	}
	return UInt24{stored: v.stored / other.stored}, false
}

// RemOverflow returns v%other. Only division by zero overflows, it returns (0, true).
func (v UInt24) RemOverflow(other UInt24) (UInt24, bool) {
	if other.stored == 0 {
		return UInt24{}, true
	}
	return UInt24{stored: v.stored % other.stored}, false
}

// Add returns v+other. It panics on overflow.
func (v UInt24) Add(other UInt24) UInt24 {
	r, overflow := v.AddOverflow(other)
	if overflow {
		panic(overflowError("addition", v, "+", other))
	}
	return r
}

// Sub returns v-other. It panics if other > v.
func (v UInt24) Sub(other UInt24) UInt24 {
	r, overflow := v.SubOverflow(other)
	if overflow {
		panic(overflowError("subtraction", v, "-", other))
	}
	return r
}

// Mul returns v*other. It panics on overflow.
func (v UInt24) Mul(other UInt24) UInt24 {
	r, overflow := v.MulOverflow(other)
	if overflow {
		panic(overflowError("multiplication", v, "*", other))
	}
	return r
}

// Div returns v/other. It panics if other is zero.
func (v UInt24) Div(other UInt24) UInt24 {
	r, overflow := v.DivOverflow(other)
	if overflow {
		panic(divisionError("division", v, "/", other, true))
	}
	return r
}

// Rem returns v%other. It panics if other is zero.
func (v UInt24) Rem(other UInt24) UInt24 {
	r, overflow := v.RemOverflow(other)
	if overflow {
		panic(divisionError("remainder", v, "%", other, true))
	}
	return r
}

// QuoRem returns v/other and v%other. It panics if other is zero.
func (v UInt24) QuoRem(other UInt24) (quo, rem UInt24) {
	return v.Div(other), v.Rem(other)
}

// DivideFullWidth divides the 48-bit value hi<<24 | lo by v.
// It panics if v is zero, or if the quotient does not fit 24 bits.
func (v UInt24) DivideFullWidth(hi UInt24, lo UInt24) (quo, rem UInt24) {
	if v.stored == 0 {
		panic(fmt.Errorf("full-width division (%v, %v) / 0: %w", hi, lo, ErrDivisionByZero))
	}
	dividend := hi.Uint64()<<BitWidth | lo.Uint64()
	q, r := dividend/v.Uint64(), dividend%v.Uint64()
	if !inUint24Range(q) || !inUint24Range(r) {
		panic(fmt.Errorf("%w in full-width division (%d / %v = %d, remainder %d)", ErrOverflow, dividend, v, q, r))
	}
	return UInt24{stored: uint32(q)}, UInt24{stored: uint32(r)}
}

// IsMultipleOf reports whether v is a multiple of other.
// Zero is the only multiple of zero.
func (v UInt24) IsMultipleOf(other UInt24) bool {
	if other.stored == 0 {
		return v.stored == 0
	}
	return v.stored%other.stored == 0
}

// Sign returns 0 if v == 0, 1 otherwise.
func (v UInt24) Sign() int {
	if v.stored == 0 {
		return 0
	}
	return 1
}

// Signum returns Sign as a UInt24.
func (v UInt24) Signum() UInt24 {
	return UInt24{stored: uint32(v.Sign())}
}

// And returns v & other.
func (v UInt24) And(other UInt24) UInt24 {
	return UInt24{stored: v.stored & other.stored}
}

// Or returns v | other.
func (v UInt24) Or(other UInt24) UInt24 {
	return UInt24{stored: v.stored | other.stored}
}

// Xor returns v ^ other.
func (v UInt24) Xor(other UInt24) UInt24 {
	return UInt24{stored: v.stored ^ other.stored}
}

// AndNot returns v &^ other.
func (v UInt24) AndNot(other UInt24) UInt24 {
	return UInt24{stored: v.stored &^ other.stored}
}

// Not returns ^v.
func (v UInt24) Not() UInt24 {
	return UInt24{stored: ^v.stored & Mask}
}

// Lsh returns v << n, truncated to 24 bits.
func (v UInt24) Lsh(n uint) UInt24 {
	if n == 0 {
		return v
	}
	return UInt24{stored: v.stored << n & Mask}
}

// Rsh returns v >> n.
func (v UInt24) Rsh(n uint) UInt24 {
	if n == 0 {
		return v
	}
	return UInt24{stored: v.stored >> n}
}

// LshAssign sets v to v << n. It panics unless 0 <= n < 24.
func (v *UInt24) LshAssign(n int) {
	checkShift(n)
	*v = v.Lsh(uint(n))
}

// RshAssign sets v to v >> n. It panics unless 0 <= n < 24.
func (v *UInt24) RshAssign(n int) {
	checkShift(n)
	*v = v.Rsh(uint(n))
}

// TrailingZeros returns the number of trailing zero bits, 24 for zero.
func (v UInt24) TrailingZeros() int {
	if v.stored == 0 {
		return BitWidth
	}
	return bits.TrailingZeros32(v.stored)
}

// LeadingZeros returns the number of leading zero bits.
func (v UInt24) LeadingZeros() int {
	return bits.LeadingZeros32(v.stored) - hostExtra
}

// OnesCount returns the number of one bits.
func (v UInt24) OnesCount() int {
	return bits.OnesCount32(v.stored)
}

// ReverseBytes returns v with its three bytes in reversed order.
func (v UInt24) ReverseBytes() UInt24 {
	return UInt24{stored: reverseBytes(v.stored)}
}
