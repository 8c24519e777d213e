// Package bitfmt renders 24-bit patterns for debugging.
package bitfmt

import (
	"strconv"
	"strings"
)

const (
	width = 24
	group = 4
	sep   = '_'
)

// Pattern is anything holding a 24-bit pattern, like int24.Int24 and int24.UInt24.
type Pattern interface {
	Raw() uint32
}

// Hex returns the pattern as 6 uppercase hex digits, grouped by 4 from the right.
//
//	Hex(int24.NewUInt24(0x123456)) == "12_3456"
func Hex(v Pattern) string {
	s := strconv.FormatUint(uint64(v.Raw()&(1<<width-1)), 16)
	return grouped(strings.ToUpper(pad(s, width/4)))
}

// Bin returns the pattern as 24 binary digits, grouped by 4.
func Bin(v Pattern) string {
	s := strconv.FormatUint(uint64(v.Raw()&(1<<width-1)), 2)
	return grouped(pad(s, width))
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

func grouped(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/group)
	first := len(s) % group
	if first == 0 {
		first = group
	}
	b.WriteString(s[:first])
	for i := first; i < len(s); i += group {
		b.WriteByte(sep)
		b.WriteString(s[i : i+group])
	}
	return b.String()
}
