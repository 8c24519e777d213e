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

// Int24 is a 24-bit two's complement signed integer.
// The zero value is 0. Values are immutable and can be compared with ==.
type Int24 struct {
	stored uint32
}

// signExtend returns the value of a stored 24-bit pattern.
func signExtend(stored uint32) int32 {
	return int32(stored^SignBit) - SignBit
}

func int24FromInt32(v int32) Int24 {
	return Int24{stored: uint32(v) & Mask}
}

func inInt24Range(v int64) bool {
	return MinInt24 <= v && v <= MaxInt24
}

// NewInt24 returns an Int24 for v. It panics if v is outside [MinInt24, MaxInt24].
func NewInt24[T constraints.Integer](v T) Int24 {
	if !mathutil.InRange(v, MinInt24, MaxInt24) {
		panic(fmt.Errorf("%w: %d is outside the representable range of Int24 (%d...%d)", ErrRange, v, MinInt24, MaxInt24))
	}
	return Int24{stored: uint32(v) & Mask}
}

// Int24Exactly returns an Int24 for v, or false if v is out of range.
func Int24Exactly[T constraints.Integer](v T) (Int24, bool) {
	if !mathutil.InRange(v, MinInt24, MaxInt24) {
		return Int24{}, false
	}
	return Int24{stored: uint32(v) & Mask}, true
}

// Int24Truncating keeps the low 24 bits of v and reinterprets them as a signed value.
func Int24Truncating[T constraints.Integer](v T) Int24 {
	return Int24{stored: uint32(v) & Mask}
}

// Int24Clamping returns v saturated to [MinInt24, MaxInt24].
func Int24Clamping[T constraints.Integer](v T) Int24 {
	return Int24{stored: uint32(mathutil.Clamp(v, MinInt24, MaxInt24)) & Mask}
}

// Int24FromFloat rounds f to the nearest integer, halfway cases away from zero.
// It panics if the rounded value is outside [MinInt24, MaxInt24], or f is NaN.
func Int24FromFloat[F constraints.Float](f F) Int24 {
	r := math.Round(float64(f))
	if !(r >= MinInt24 && r <= MaxInt24) {
		panic(fmt.Errorf("%w: %v is outside the representable range of Int24 (%d...%d)", ErrRange, f, MinInt24, MaxInt24))
	}
	return int24FromInt32(int32(r))
}

// Int24ExactlyFloat returns an Int24 for f if f is an integer within range.
func Int24ExactlyFloat[F constraints.Float](f F) (Int24, bool) {
	i, ok := mathutil.IntegralFloat(f)
	if !ok {
		return Int24{}, false
	}
	return Int24Exactly(i)
}

// Int24FromBits reinterprets the bits of u as a signed value.
func Int24FromBits(u UInt24) Int24 {
	return Int24{stored: u.stored}
}

// ParseInt24 parses a string into an Int24.
// It accepts Go integer literals, like "-0x7f_ffff", and integral floats, like "1e3".
func ParseInt24(s string) (Int24, error) {
	i, err := parseInteger(s)
	if err != nil {
		return Int24{}, err
	}
	v, ok := Int24Exactly(i)
	if !ok {
		return Int24{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	return v, nil
}

// MustParseInt24 is like ParseInt24, but panics on error.
func MustParseInt24(s string) Int24 {
	v, err := ParseInt24(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Int32 returns the value as an int32.
func (v Int24) Int32() int32 {
	return signExtend(v.stored)
}

// Int64 returns the value as an int64.
func (v Int24) Int64() int64 {
	return int64(v.Int32())
}

// Int returns the value as an int.
func (v Int24) Int() int {
	return int(v.Int32())
}

// Float64 returns the value as a float64. The conversion is exact.
func (v Int24) Float64() float64 {
	return float64(v.Int32())
}

// Raw returns the stored 24-bit pattern.
func (v Int24) Raw() uint32 {
	return v.stored
}

// Magnitude returns the absolute value. It is defined for Int24Min.
func (v Int24) Magnitude() UInt24 {
	return UInt24{stored: uint32(mathutil.AbsInt64(v.Int64()))}
}

// Words returns the value as two's complement limbs, least significant first.
func (v Int24) Words() []uint {
	return []uint{uint(v.Int())}
}

// IsSigned returns true.
func (v Int24) IsSigned() bool {
	return true
}

// BitWidth returns 24.
func (v Int24) BitWidth() int {
	return BitWidth
}

// String returns the decimal representation of v.
func (v Int24) String() string {
	return strconv.FormatInt(v.Int64(), 10)
}

// AddOverflow returns v+other and true if the sum does not fit 24 bits.
// The sum is wrapped on overflow.
func (v Int24) AddOverflow(other Int24) (Int24, bool) {
	r := (v.stored + other.stored) & Mask
	// same sign operands, result of a different sign.
	overflow := (v.stored^other.stored)&SignBit == 0 && (v.stored^r)&SignBit != 0
	return Int24{stored: r}, overflow
}

// SubOverflow returns v-other and true if the difference does not fit 24 bits.
// The difference is wrapped on overflow.
func (v Int24) SubOverflow(other Int24) (Int24, bool) {
	r := (v.stored - other.stored) & Mask
	// operands of different signs, result sign differs from v's.
	overflow := (v.stored^other.stored)&SignBit != 0 && (v.stored^r)&SignBit != 0
	return Int24{stored: r}, overflow
}

// MulOverflow returns v*other and false if the product fits 24 bits.
// On overflow it returns (0, true).
func (v Int24) MulOverflow(other Int24) (Int24, bool) {
	lhs, rhs := v.Int32(), other.Int32()
	if lhs == 0 || rhs == 0 {
		return Int24{}, false
	}
	var overflow bool
	if mathutil.SameSign(int64(lhs), int64(rhs)) {
		overflow = lhs > 0 && lhs > MaxInt24/rhs || lhs < 0 && lhs < MaxInt24/rhs
	} else {
		overflow = lhs > 0 && lhs > MinInt24/rhs || lhs < 0 && lhs < MinInt24/rhs
	}
	if overflow {
		return Int24{}, true
	}
	return int24FromInt32(lhs * rhs), false
}

// DivOverflow returns v/other truncated toward zero.
// Division by zero returns (0, true). Int24Min / -1 returns (Int24Min, true).
func (v Int24) DivOverflow(other Int24) (Int24, bool) {
	if other.stored == 0 {
		return Int24{}, true
	}
	return int24FromInt32(v.Int32() / other.Int32()), v.isMinDivMinusOne(other)
}

// RemOverflow returns v%other, which has the sign of v.
// Division by zero returns (0, true). Int24Min % -1 returns (0, true),
// the same condition DivOverflow reports.
func (v Int24) RemOverflow(other Int24) (Int24, bool) {
	if other.stored == 0 {
		return Int24{}, true
	}
	return int24FromInt32(v.Int32() % other.Int32()), v.isMinDivMinusOne(other)
}

func (v Int24) isMinDivMinusOne(other Int24) bool {
	return v.stored == SignBit && other.stored == Mask
}

// Add returns v+other. It panics on overflow.
func (v Int24) Add(other Int24) Int24 {
	r, overflow := v.AddOverflow(other)
	if overflow {
		panic(overflowError("addition", v, "+", other))
	}
	return r
}

// Sub returns v-other. It panics on overflow.
func (v Int24) Sub(other Int24) Int24 {
	r, overflow := v.SubOverflow(other)
	if overflow {
		panic(overflowError("subtraction", v, "-", other))
	}
	return r
}

// Mul returns v*other. It panics on overflow.
func (v Int24) Mul(other Int24) Int24 {
	r, overflow := v.MulOverflow(other)
	if overflow {
		panic(overflowError("multiplication", v, "*", other))
	}
	return r
}

// Div returns v/other. It panics if other is zero, or on Int24Min / -1.
func (v Int24) Div(other Int24) Int24 {
	r, overflow := v.DivOverflow(other)
	if overflow {
		panic(divisionError("division", v, "/", other, other.stored == 0))
	}
	return r
}

// Rem returns v%other. It panics if other is zero, or on Int24Min % -1.
func (v Int24) Rem(other Int24) Int24 {
	r, overflow := v.RemOverflow(other)
	if overflow {
		panic(divisionError("remainder", v, "%", other, other.stored == 0))
	}
	return r
}

// QuoRem returns v/other and v%other. It panics whenever Div does.
func (v Int24) QuoRem(other Int24) (quo, rem Int24) {
	return v.Div(other), v.Rem(other)
}

// DivideFullWidth divides the 48-bit value hi<<24 | lo by v.
// It panics if v is zero, or if the quotient does not fit 24 bits.
func (v Int24) DivideFullWidth(hi Int24, lo UInt24) (quo, rem Int24) {
	if v.stored == 0 {
		panic(fmt.Errorf("full-width division (%v, %v) / 0: %w", hi, lo, ErrDivisionByZero))
	}
	dividend := hi.Int64()<<BitWidth | int64(lo.stored)
	q, r := dividend/v.Int64(), dividend%v.Int64()
	if !inInt24Range(q) || !inInt24Range(r) {
		panic(fmt.Errorf("%w in full-width division (%d / %v = %d, remainder %d)", ErrOverflow, dividend, v, q, r))
	}
	return int24FromInt32(int32(q)), int24FromInt32(int32(r))
}

// IsMultipleOf reports whether v is a multiple of other.
// Zero is the only multiple of zero.
func (v Int24) IsMultipleOf(other Int24) bool {
	switch other.stored {
	case 0:
		return v.stored == 0
	case Mask: // -1, avoids Int24Min % -1.
		return true
	}
	return v.Int32()%other.Int32() == 0
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Int24) Sign() int {
	return mathutil.Int64Sign(v.Int64())
}

// Signum returns Sign as an Int24.
func (v Int24) Signum() Int24 {
	return int24FromInt32(int32(v.Sign()))
}

// NegOverflow returns -v, and true for Int24Min.
func (v Int24) NegOverflow() (Int24, bool) {
	return Int24{}.SubOverflow(v)
}

// Neg returns -v. It panics for Int24Min.
func (v Int24) Neg() Int24 {
	return Int24{}.Sub(v)
}

// Abs returns |v|. It panics for Int24Min, use Magnitude instead.
func (v Int24) Abs() Int24 {
	if v.stored&SignBit != 0 {
		return v.Neg()
	}
	return v
}

// And returns v & other.
func (v Int24) And(other Int24) Int24 {
	return Int24{stored: v.stored & other.stored}
}

// Or returns v | other.
func (v Int24) Or(other Int24) Int24 {
	return Int24{stored: v.stored | other.stored}
}

// Xor returns v ^ other.
func (v Int24) Xor(other Int24) Int24 {
	return Int24{stored: v.stored ^ other.stored}
}

// AndNot returns v &^ other.
func (v Int24) AndNot(other Int24) Int24 {
	return Int24{stored: v.stored &^ other.stored}
}

// Not returns ^v.
func (v Int24) Not() Int24 {
	return Int24{stored: ^v.stored & Mask}
}

// Lsh returns v << n, computed in 32 bits and truncated to 24.
func (v Int24) Lsh(n uint) Int24 {
	if n == 0 {
		return v
	}
	return int24FromInt32(v.Int32() << n)
}

// Rsh returns v >> n. The shift is arithmetic.
func (v Int24) Rsh(n uint) Int24 {
	if n == 0 {
		return v
	}
	return int24FromInt32(v.Int32() >> n)
}

// LshAssign sets v to v << n. It panics unless 0 <= n < 24.
func (v *Int24) LshAssign(n int) {
	checkShift(n)
	*v = v.Lsh(uint(n))
}

// RshAssign sets v to v >> n. It panics unless 0 <= n < 24.
func (v *Int24) RshAssign(n int) {
	checkShift(n)
	*v = v.Rsh(uint(n))
}

// TrailingZeros returns the number of trailing zero bits, 24 for zero.
func (v Int24) TrailingZeros() int {
	if v.stored == 0 {
		return BitWidth
	}
	return bits.TrailingZeros32(v.stored)
}

// LeadingZeros returns the number of leading zero bits, 0 for negative values.
func (v Int24) LeadingZeros() int {
	if v.stored&SignBit != 0 {
		return 0
	}
	return bits.LeadingZeros32(v.stored) - hostExtra
}

// OnesCount returns the number of one bits in the 24-bit pattern.
func (v Int24) OnesCount() int {
	return bits.OnesCount32(v.stored)
}

// ReverseBytes returns v with its three bytes in reversed order.
func (v Int24) ReverseBytes() Int24 {
	return Int24{stored: reverseBytes(v.stored)}
}
