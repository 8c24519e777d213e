// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int24

import (
	"encoding/json"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestByteOrder(t *testing.T) {
	a := assert.New(t)
	v := NewInt24(0x123456)
	a.Equal([]byte{0x12, 0x34, 0x56}, v.AppendBigEndian(nil))
	a.Equal([]byte{0xAA, 0x56, 0x34, 0x12}, v.AppendLittleEndian([]byte{0xAA}))

	buf := make([]byte, 4)
	NewInt24(-2).PutBigEndian(buf)
	a.Equal([]byte{0xFF, 0xFF, 0xFE, 0}, buf)
	NewUInt24(0xABCDEF).PutLittleEndian(buf[1:])
	a.Equal([]byte{0xFF, 0xEF, 0xCD, 0xAB}, buf)
	a.Panics(func() { v.PutBigEndian(make([]byte, 2)) })
	a.Panics(func() { UInt24Max.PutLittleEndian(nil) })

	s, err := Int24FromBigEndian([]byte{0x80, 0, 0, 0xFF})
	a.NoError(err)
	a.Equal(Int24Min, s)
	s, err = Int24FromLittleEndian([]byte{0, 0, 0x80})
	a.NoError(err)
	a.Equal(Int24Min, s)
	u, err := UInt24FromBigEndian([]byte{0xFF, 0xFF, 0xFF})
	a.NoError(err)
	a.Equal(UInt24Max, u)
	u, err = UInt24FromLittleEndian([]byte{0x56, 0x34, 0x12})
	a.NoError(err)
	a.Equal(uint32(0x123456), u.Uint32())

	_, err = Int24FromBigEndian([]byte{1, 2})
	a.ErrorIs(err, ErrShortBuffer)
	_, err = UInt24FromLittleEndian(nil)
	a.ErrorIs(err, ErrShortBuffer)

	r := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		s := Int24Truncating(r.Uint32())
		be, le := s.AppendBigEndian(nil), s.AppendLittleEndian(nil)
		fromBE, _ := Int24FromBigEndian(be)
		fromLE, _ := Int24FromLittleEndian(le)
		a.Equal(s, fromBE)
		a.Equal(s, fromLE)
		swapped, _ := Int24FromBigEndian(le)
		a.Equal(s.ReverseBytes(), swapped)
	}
}

func TestBinary(t *testing.T) {
	a := assert.New(t)
	data, err := NewInt24(-2).MarshalBinary()
	a.NoError(err)
	a.Equal([]byte{0xFF, 0xFF, 0xFE}, data)
	var s Int24
	a.NoError(s.UnmarshalBinary(data))
	a.Equal(int32(-2), s.Int32())

	var u UInt24
	a.NoError(u.UnmarshalBinary(data))
	a.Equal(uint32(0xFFFFFE), u.Uint32())
	data, err = u.MarshalBinary()
	a.NoError(err)
	a.Equal([]byte{0xFF, 0xFF, 0xFE}, data)

	a.ErrorIs(s.UnmarshalBinary([]byte{1}), ErrShortBuffer)
	a.ErrorIs(u.UnmarshalBinary([]byte{1, 2, 3, 4}), ErrSyntax)
	a.Equal(uint32(0xFFFFFE), u.Uint32())
	a.ErrorIs(s.UnmarshalBinary(make([]byte, Size+1)), ErrSyntax)
	a.Equal(int32(-2), s.Int32())
}

func TestJSON(t *testing.T) {
	type doc struct {
		S Int24  `json:"s"`
		U UInt24 `json:"u"`
	}
	tests := []struct {
		mode int
		d    doc
		res  string
	}{
		{mode: JSONModeNumber, d: doc{}, res: `{"s":0,"u":0}`},
		{mode: JSONModeNumber, d: doc{S: Int24Min, U: UInt24Max}, res: `{"s":-8388608,"u":16777215}`},
		{mode: JSONModeString, d: doc{S: NewInt24(-5), U: NewUInt24(5)}, res: `{"s":"-5","u":"5"}`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			JSONMode = test.mode
			defer func() { JSONMode = JSONModeNumber }()
			data, err := json.Marshal(test.d)
			if a.NoError(err) {
				a.Equal(test.res, string(data))
			}
			var d doc
			if a.NoError(json.Unmarshal(data, &d)) {
				a.Equal(test.d, d)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		data string
		s    int32
		err  error
	}{
		{data: `{"s":"0x10"}`, s: 16},
		{data: `{"s":1e2}`, s: 100},
		{data: `{"s":-8388608}`, s: MinInt24},
		{data: `{"s":" -1 "}`, s: -1},
		{data: `{"s":null}`, s: 7},
		{data: `{}`, s: 7},
		{data: `{"s":8388608}`, err: ErrRange},
		{data: `{"s":"8388608"}`, err: ErrRange},
		{data: `{"s":1.5}`, err: ErrSyntax},
		{data: `{"s":true}`, err: ErrSyntax},
		{data: `{"s":""}`, err: ErrSyntax},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			d := struct {
				S Int24 `json:"s"`
			}{S: NewInt24(7)}
			err := json.Unmarshal([]byte(test.data), &d)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.s, d.S.Int32())
			}
		})
	}
}

func TestUnmarshalJSONUnsigned(t *testing.T) {
	a := assert.New(t)
	var u UInt24
	a.NoError(json.Unmarshal([]byte(`"0xff_ffff"`), &u))
	a.Equal(UInt24Max, u)
	a.ErrorIs(json.Unmarshal([]byte(`-1`), &u), ErrRange)
	a.Equal(UInt24Max, u)
	a.ErrorIs(u.UnmarshalJSON(nil), ErrSyntax)
	a.ErrorIs(u.UnmarshalJSON([]byte(`"unterminated`)), ErrSyntax)
}

func TestText(t *testing.T) {
	a := assert.New(t)
	data, err := json.Marshal(map[UInt24]Int24{NewUInt24(7): NewInt24(-7)})
	a.NoError(err)
	a.Equal(`{"7":-7}`, string(data))
	var m map[Int24]UInt24
	a.NoError(json.Unmarshal([]byte(`{"-3":3}`), &m))
	a.Equal(map[Int24]UInt24{NewInt24(-3): NewUInt24(3)}, m)

	text, err := Int24Min.MarshalText()
	a.NoError(err)
	a.Equal("-8388608", string(text))
	var s Int24
	a.NoError(s.UnmarshalText(text))
	a.Equal(Int24Min, s)
	a.ErrorIs(s.UnmarshalText([]byte("nope")), ErrSyntax)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		v      any
		res    string
	}{
		{format: "%v", v: NewInt24(-42), res: "-42"},
		{format: "%d", v: UInt24Max, res: "16777215"},
		{format: "%s", v: NewInt24(-42), res: "-42"},
		{format: "%06d", v: NewInt24(-42), res: "-00042"},
		{format: "%+d", v: NewInt24(5), res: "+5"},
		{format: "%x", v: NewInt24(-255), res: "-ff"},
		{format: "%X", v: NewUInt24(0xabc), res: "ABC"},
		{format: "%#x", v: UInt24Max, res: "0xffffff"},
		{format: "%b", v: NewUInt24(5), res: "101"},
		{format: "%5d|", v: NewUInt24(5), res: "    5|"},
		{format: "%v", v: struct{ S Int24 }{Int24Min}, res: "{-8388608}"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert.Equal(t, test.res, fmt.Sprintf(test.format, test.v))
		})
	}
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	a.Equal("-42", NewInt24(-42).Decimal().String())
	a.Equal("16777215", UInt24Max.Decimal().String())
	a.True(Int24Min.Decimal().Equal(decimal.NewFromInt(MinInt24)))

	tests := []struct {
		s      string
		signed bool
		res    int64
		ok     bool
	}{
		{s: "8388607", signed: true, res: MaxInt24, ok: true},
		{s: "-8388608.000", signed: true, res: MinInt24, ok: true},
		{s: "8388608", signed: true},
		{s: "1.5", signed: true},
		{s: "16777215", res: MaxUint24, ok: true},
		{s: "16777216"},
		{s: "-1"},
		{s: "0.0001"},
		{s: "1e6", res: 1000000, ok: true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := decimal.RequireFromString(test.s)
			var (
				res int64
				ok  bool
			)
			if test.signed {
				var v Int24
				v, ok = Int24FromDecimal(d)
				res = v.Int64()
			} else {
				var v UInt24
				v, ok = UInt24FromDecimal(d)
				res = v.Int64()
			}
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.res, res)
		})
	}
}

func TestBig(t *testing.T) {
	a := assert.New(t)
	a.Equal("-8388608", Int24Min.Big().String())
	a.Equal("16777215", UInt24Max.Big().String())

	v, ok := Int24FromBig(big.NewInt(MinInt24))
	a.True(ok)
	a.Equal(Int24Min, v)
	_, ok = Int24FromBig(big.NewInt(MaxInt24 + 1))
	a.False(ok)
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	_, ok = Int24FromBig(huge)
	a.False(ok)

	u, ok := UInt24FromBig(big.NewInt(MaxUint24))
	a.True(ok)
	a.Equal(UInt24Max, u)
	_, ok = UInt24FromBig(big.NewInt(-1))
	a.False(ok)
	_, ok = UInt24FromBig(huge)
	a.False(ok)
}

func BenchmarkMarshalJSON(b *testing.B) {
	v := NewInt24(-1234567)
	for i := 0; i < b.N; i++ {
		v.MarshalJSON()
	}
}
