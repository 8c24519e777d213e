// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int24

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Size is the number of bytes in an encoded value.
const Size = 3

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeNumber
)

const (
	// JSONModeNumber marshals values as json numbers, like `-1234`.
	JSONModeNumber = iota
	// JSONModeString marshals values as strings, like `"-1234"`.
	JSONModeString
)

func putBigEndian(b []byte, u uint32) {
	_ = b[2] // early bounds check
	b[0] = byte(u >> 16)
	b[1] = byte(u >> 8)
	b[2] = byte(u)
}

func putLittleEndian(b []byte, u uint32) {
	_ = b[2] // early bounds check
	b[0] = byte(u)
	b[1] = byte(u >> 8)
	b[2] = byte(u >> 16)
}

func bigEndian(b []byte) (uint32, error) {
	if len(b) < Size {
		return 0, fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, Size, len(b))
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

func littleEndian(b []byte) (uint32, error) {
	if len(b) < Size {
		return 0, fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, Size, len(b))
	}
	return uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0]), nil
}

func unmarshalBinary(data []byte) (uint32, error) {
	if len(data) > Size {
		return 0, fmt.Errorf("%w: binary data of %d bytes, want %d", ErrSyntax, len(data), Size)
	}
	return bigEndian(data)
}

func appendJSON(b []byte, i int64) []byte {
	if JSONMode == JSONModeString {
		b = append(b, '"')
		b = strconv.AppendInt(b, i, 10)
		return append(b, '"')
	}
	return strconv.AppendInt(b, i, 10)
}

// unquoteJSON returns the contents of a json number or string.
// ok is false for null.
func unquoteJSON(data []byte) (s string, ok bool, err error) {
	if len(data) == 0 {
		return "", false, fmt.Errorf("empty json: %w", ErrSyntax)
	}
	s = string(data)
	switch {
	case s == "null":
		return "", false, nil
	case s[0] == '"':
		if s, err = strconv.Unquote(s); err != nil {
			return "", false, fmt.Errorf("bad json string %s: %w", data, ErrSyntax)
		}
	}
	return s, true, nil
}

func decimalInRange(d decimal.Decimal, lo, hi int64) (int64, bool) {
	if !d.Equal(d.Truncate(0)) {
		return 0, false
	}
	if d.LessThan(decimal.NewFromInt(lo)) || d.GreaterThan(decimal.NewFromInt(hi)) {
		return 0, false
	}
	return d.IntPart(), true
}

// PutBigEndian writes v into b, most significant byte first. It panics if len(b) < 3.
func (v Int24) PutBigEndian(b []byte) {
	putBigEndian(b, v.stored)
}

// PutLittleEndian writes v into b, least significant byte first. It panics if len(b) < 3.
func (v Int24) PutLittleEndian(b []byte) {
	putLittleEndian(b, v.stored)
}

// AppendBigEndian appends the big-endian encoding of v to b.
func (v Int24) AppendBigEndian(b []byte) []byte {
	return append(b, byte(v.stored>>16), byte(v.stored>>8), byte(v.stored))
}

// AppendLittleEndian appends the little-endian encoding of v to b.
func (v Int24) AppendLittleEndian(b []byte) []byte {
	return append(b, byte(v.stored), byte(v.stored>>8), byte(v.stored>>16))
}

// Int24FromBigEndian decodes the first 3 bytes of b.
func Int24FromBigEndian(b []byte) (Int24, error) {
	u, err := bigEndian(b)
	return Int24{stored: u}, err
}

// Int24FromLittleEndian decodes the first 3 bytes of b.
func Int24FromLittleEndian(b []byte) (Int24, error) {
	u, err := littleEndian(b)
	return Int24{stored: u}, err
}

// MarshalBinary encodes v into 3 big-endian bytes.
func (v Int24) MarshalBinary() ([]byte, error) {
	return v.AppendBigEndian(make([]byte, 0, Size)), nil
}

// UnmarshalBinary decodes 3 big-endian bytes.
func (v *Int24) UnmarshalBinary(data []byte) error {
	u, err := unmarshalBinary(data)
	if err != nil {
		return err
	}
	v.stored = u
	return nil
}

// MarshalText returns the decimal representation of v.
func (v Int24) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, v.Int64(), 10), nil
}

// UnmarshalText parses text with ParseInt24.
func (v *Int24) UnmarshalText(text []byte) error {
	value, err := ParseInt24(string(text))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
func (v Int24) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, v.Int64()), nil
}

// UnmarshalJSON unmarshals a number or a string. null is a no-op.
func (v *Int24) UnmarshalJSON(data []byte) error {
	s, ok, err := unquoteJSON(data)
	if !ok {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// Format implements fmt.Formatter. Integer verbs format the value, not the stored bits,
// %s is an alias for %d.
func (v Int24) Format(f fmt.State, verb rune) {
	if verb == 's' {
		verb = 'd'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.Int32())
}

// Decimal returns v as a decimal.
func (v Int24) Decimal() decimal.Decimal {
	return decimal.NewFromInt32(v.Int32())
}

// Int24FromDecimal returns an Int24 for d if d is an integer within range.
func Int24FromDecimal(d decimal.Decimal) (Int24, bool) {
	i, ok := decimalInRange(d, MinInt24, MaxInt24)
	if !ok {
		return Int24{}, false
	}
	return int24FromInt32(int32(i)), true
}

// Big returns v as a big.Int.
func (v Int24) Big() *big.Int {
	return big.NewInt(v.Int64())
}

// Int24FromBig returns an Int24 for b if b is within range.
func Int24FromBig(b *big.Int) (Int24, bool) {
	if !b.IsInt64() {
		return Int24{}, false
	}
	return Int24Exactly(b.Int64())
}

// PutBigEndian writes v into b, most significant byte first. It panics if len(b) < 3.
func (v UInt24) PutBigEndian(b []byte) {
	putBigEndian(b, v.stored)
}

// PutLittleEndian writes v into b, least significant byte first. It panics if len(b) < 3.
func (v UInt24) PutLittleEndian(b []byte) {
	putLittleEndian(b, v.stored)
}

// AppendBigEndian appends the big-endian encoding of v to b.
func (v UInt24) AppendBigEndian(b []byte) []byte {
	return append(b, byte(v.stored>>16), byte(v.stored>>8), byte(v.stored))
}

// AppendLittleEndian appends the little-endian encoding of v to b.
func (v UInt24) AppendLittleEndian(b []byte) []byte {
	return append(b, byte(v.stored), byte(v.stored>>8), byte(v.stored>>16))
}

// UInt24FromBigEndian decodes the first 3 bytes of b.
func UInt24FromBigEndian(b []byte) (UInt24, error) {
	u, err := bigEndian(b)
	return UInt24{stored: u}, err
}

// UInt24FromLittleEndian decodes the first 3 bytes of b.
func UInt24FromLittleEndian(b []byte) (UInt24, error) {
	u, err := littleEndian(b)
	return UInt24{stored: u}, err
}

// MarshalBinary encodes v into 3 big-endian bytes.
func (v UInt24) MarshalBinary() ([]byte, error) {
	return v.AppendBigEndian(make([]byte, 0, Size)), nil
}

// UnmarshalBinary decodes 3 big-endian bytes.
func (v *UInt24) UnmarshalBinary(data []byte) error {
	u, err := unmarshalBinary(data)
	if err != nil {
		return err
	}
	v.stored = u
	return nil
}

// MarshalText returns the decimal representation of v.
func (v UInt24) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, v.Uint64(), 10), nil
}

// UnmarshalText parses text with ParseUInt24.
func (v *UInt24) UnmarshalText(text []byte) error {
	value, err := ParseUInt24(string(text))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
func (v UInt24) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, v.Int64()), nil
}

// UnmarshalJSON unmarshals a number or a string. null is a no-op.
func (v *UInt24) UnmarshalJSON(data []byte) error {
	s, ok, err := unquoteJSON(data)
	if !ok {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// Format implements fmt.Formatter. %s is an alias for %d.
func (v UInt24) Format(f fmt.State, verb rune) {
	if verb == 's' {
		verb = 'd'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.stored)
}

// Decimal returns v as a decimal.
func (v UInt24) Decimal() decimal.Decimal {
	return decimal.NewFromInt(v.Int64())
}

// UInt24FromDecimal returns a UInt24 for d if d is an integer within range.
func UInt24FromDecimal(d decimal.Decimal) (UInt24, bool) {
	i, ok := decimalInRange(d, 0, MaxUint24)
	if !ok {
		return UInt24{}, false
	}
	return UInt24{stored: uint32(i)}, true
}

// Big returns v as a big.Int.
func (v UInt24) Big() *big.Int {
	return new(big.Int).SetUint64(v.Uint64())
}

// UInt24FromBig returns a UInt24 for b if b is within range.
func UInt24FromBig(b *big.Int) (UInt24, bool) {
	if b.Sign() < 0 || !b.IsUint64() {
		return UInt24{}, false
	}
	return UInt24Exactly(b.Uint64())
}
