package mathutil

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSigned(t *testing.T) {
	a := assert.New(t)
	a.True(IsSigned[int8]())
	a.True(IsSigned[int]())
	a.True(IsSigned[int64]())
	a.False(IsSigned[uint8]())
	a.False(IsSigned[uint]())
	a.False(IsSigned[uintptr]())
}

func TestInRange(t *testing.T) {
	a := assert.New(t)
	const lo, hi = -8388608, 8388607
	a.True(InRange(int8(-128), lo, hi))
	a.True(InRange(int32(hi), lo, hi))
	a.False(InRange(int32(hi+1), lo, hi))
	a.True(InRange(int64(lo), lo, hi))
	a.False(InRange(int64(lo-1), lo, hi))
	a.True(InRange(uint32(hi), lo, hi))
	a.False(InRange(uint64(math.MaxUint64), lo, hi))
	a.False(InRange(uint8(0), 1, 10))
	a.True(InRange(uint8(1), 1, 10))
	a.False(InRange(uint8(0), -10, -1))
	a.False(InRange(int64(math.MinInt64), 0, 1<<24-1))
}

func TestClamp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		got, want int64
	}{
		{Clamp(int64(math.MinInt64), -8, 7), -8},
		{Clamp(int64(math.MaxInt64), -8, 7), 7},
		{Clamp(int8(-3), -8, 7), -3},
		{Clamp(uint64(math.MaxUint64), -8, 7), 7},
		{Clamp(uint16(3), -8, 7), 3},
		{Clamp(uint16(0), 2, 7), 2},
		{Clamp(int32(-1), 0, 1<<24-1), 0},
		{Clamp(uint32(math.MaxUint32), 0, 1<<24-1), 1<<24 - 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.want, test.got)
		})
	}
}

func TestIntegralFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f  float64
		v  int64
		ok bool
	}{
		{0, 0, true},
		{math.Copysign(0, -1), 0, true},
		{-12, -12, true},
		{1e18, 1e18, true},
		{0.5, 0, false},
		{-1.25, 0, false},
		{math.MinInt64, math.MinInt64, true},
		{-math.MinInt64, 0, false},
		{math.Inf(1), 0, false},
		{math.Inf(-1), 0, false},
		{math.NaN(), 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, ok := IntegralFloat(test.f)
			a.Equal(test.ok, ok)
			a.Equal(test.v, v)
		})
	}
	v, ok := IntegralFloat(float32(-3))
	a.True(ok)
	a.Equal(int64(-3), v)
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	for i := 0; i < 1000; i++ {
		v := rand.Int63n(1<<40) - 1<<39
		if v < 0 {
			a.Equal(-v, AbsInt64(v))
		} else {
			a.Equal(v, AbsInt64(v))
		}
	}
	a.True(SameSign(-1, -5))
	a.True(SameSign(0, 5))
	a.False(SameSign(-1, 5))
}

func BenchmarkInt64Sign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Int64Sign(int64(i)) + Int64Sign(int64(-i)) + Int64Sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkIfSign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += sign(int64(i)) + sign(int64(-i)) + sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func sign(i int64) int {
	if i == 0 {
		return 0
	}
	if i > 0 {
		return 1
	}
	return -1
}
