// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package int24 implements 24-bit signed and unsigned integers.
//
// Both types keep their value in the low 24 bits of a 32-bit word:
//   31      23                      0
//   ________|_______________________
//   00000000vvvvvvvvvvvvvvvvvvvvvvvv
//
// The upper byte is always zero in storage. Int24 recovers its value by
// sign-extending bit 23, UInt24 uses the stored bits as is.
//
// Arithmetic comes in two families. Methods with the Overflow suffix return a
// partial result and a flag, the rest panic on overflow like a failed
// precondition would, they never wrap silently.
package int24

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avdva/int24/internal/mathutil"
)

const (
	// BitWidth is the number of bits in Int24 and UInt24.
	BitWidth = 24
	// Mask selects the stored bits of a host word.
	Mask = 1<<BitWidth - 1
	// SignBit is the sign bit of an Int24.
	SignBit = 1 << (BitWidth - 1)

	// MinInt24 is the smallest Int24 value.
	MinInt24 = -1 << (BitWidth - 1)
	// MaxInt24 is the largest Int24 value.
	MaxInt24 = 1<<(BitWidth-1) - 1
	// MaxUint24 is the largest UInt24 value.
	MaxUint24 = 1<<BitWidth - 1

	hostWidth = 32
	// hostExtra is the number of host word bits above the 24-bit value.
	hostExtra = hostWidth - BitWidth
)

var (
	// Int24Min is the smallest Int24.
	Int24Min = Int24{stored: SignBit}
	// Int24Max is the largest Int24.
	Int24Max = Int24{stored: SignBit - 1}
	// UInt24Min is the smallest UInt24.
	UInt24Min = UInt24{}
	// UInt24Max is the largest UInt24.
	UInt24Max = UInt24{stored: Mask}
)

var (
	// ErrRange is reported when a value does not fit the target type.
	ErrRange = errors.New("value out of range")
	// ErrOverflow is reported when an arithmetic result does not fit 24 bits.
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero is reported by full-width division by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrShift is reported for shift amounts outside [0, 24).
	ErrShift = errors.New("shift amount out of bounds")
	// ErrShortBuffer is reported when a buffer holds less than 3 bytes.
	ErrShortBuffer = errors.New("buffer too short")
	// ErrSyntax is reported for unparsable input.
	ErrSyntax = errors.New("invalid syntax")
)

// Integer is the set of operations shared by Int24 and UInt24.
// It is closed: the two 24-bit types are its only members.
type Integer[T any] interface {
	Int24 | UInt24

	AddOverflow(T) (T, bool)
	SubOverflow(T) (T, bool)
	MulOverflow(T) (T, bool)
	DivOverflow(T) (T, bool)
	RemOverflow(T) (T, bool)
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Rem(T) T
	QuoRem(T) (T, T)
	DivideFullWidth(hi T, lo UInt24) (T, T)
	IsMultipleOf(T) bool

	And(T) T
	Or(T) T
	Xor(T) T
	AndNot(T) T
	Not() T
	Lsh(uint) T
	Rsh(uint) T
	TrailingZeros() int
	LeadingZeros() int
	OnesCount() int
	ReverseBytes() T

	Cmp(T) int
	Eq(T) bool
	Less(T) bool
	CmpInt64(int64) int
	CmpUint64(uint64) int
	CmpFloat64(float64) int

	Sign() int
	Signum() T
	Magnitude() UInt24
	Raw() uint32
	Int64() int64
	Float64() float64
	Words() []uint
	IsSigned() bool
	String() string
}

func assertInteger[T Integer[T]]() {}

var (
	_ = assertInteger[Int24]
	_ = assertInteger[UInt24]
)

func overflowError(op string, lhs any, sym string, rhs any) error {
	return fmt.Errorf("%w in %s (%v %s %v)", ErrOverflow, op, lhs, sym, rhs)
}

func divisionError(op string, lhs any, sym string, rhs any, byZero bool) error {
	err := overflowError(op, lhs, sym, rhs)
	if byZero {
		err = fmt.Errorf("%w: %w", err, ErrDivisionByZero)
	}
	return err
}

func checkShift(n int) {
	if n < 0 || n >= BitWidth {
		panic(fmt.Errorf("%w: %d is not in [0, %d)", ErrShift, n, BitWidth))
	}
}

// reverseBytes swaps bytes 0 and 2 of a 24-bit pattern.
func reverseBytes(x uint32) uint32 {
	return x&0xFF<<16 | x&0xFF00 | x>>16&0xFF
}

// parseInteger parses Go integer literals and integral floats.
func parseInteger(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("parsing failed: empty input: %w", ErrSyntax)
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return i, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	// could still be a float
	f, fltErr := strconv.ParseFloat(s, 64)
	if fltErr != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
	}
	if i, ok := mathutil.IntegralFloat(f); ok {
		return i, nil
	}
	if f == math.Trunc(f) { // infinities and huge integers
		return 0, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	return 0, fmt.Errorf("parsing %q: not an integer: %w", s, ErrSyntax)
}
