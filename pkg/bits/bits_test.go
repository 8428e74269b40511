package bits

import (
	"math/bits"
	"testing"
)

func TestHighBit(t *testing.T) {
	tests := []struct {
		x    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{0b1011, 0b1000},
		{1 << 63, 1 << 63},
		{^uint64(0), 1 << 63},
		{0x0000102004080000, 1 << 44},
	}

	for _, tt := range tests {
		if got := HighBit(tt.x); got != tt.want {
			t.Errorf("HighBit(%#x)=%#x, want=%#x", tt.x, got, tt.want)
		}
	}
}

func TestHighBitMatchesLeadingZeros(t *testing.T) {
	for i := 0; i < 64; i++ {
		x := uint64(1)<<i | (uint64(1)<<i - 1)
		want := uint64(1) << (63 - bits.LeadingZeros64(x))
		if got := HighBit(x); got != want {
			t.Errorf("HighBit(%#x)=%#x, want=%#x", x, got, want)
		}
	}
}

func TestNonZero(t *testing.T) {
	if NonZero(0) != 0 {
		t.Error("NonZero(0) should be 0")
	}

	for i := 0; i < 64; i++ {
		if v := NonZero(1 << i); v != 1 {
			t.Errorf("NonZero(1<<%d)=%d, want=1", i, v)
		}
	}

	if NonZero(^uint64(0)) != 1 {
		t.Error("NonZero(max) should be 1")
	}
}

var result uint64

func BenchmarkHighBit(b *testing.B) {
	var r uint64
	for i := 0; i < b.N; i++ {
		r = HighBit(uint64(i))
	}
	result = r
}

func BenchmarkHighBitLeadingZeros(b *testing.B) {
	var r uint64
	for i := 0; i < b.N; i++ {
		r = uint64(1) << (63 - bits.LeadingZeros64(uint64(i)|1))
	}
	result = r
}
