package float16

import (
	"math"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		bits uint16
		want float64
	}{
		{"one", 0x3C00, 1.0},
		{"one and a half", 0x3E00, 1.5},
		{"minus two", 0xC000, -2.0},
		{"half", 0x3800, 0.5},
		{"max finite", 0x7BFF, 65504},
		{"two-k from carry", 0x6800, 2048},
		{"smallest subnormal", 0x0001, math.Ldexp(1, -24)},
		{"largest subnormal", 0x03FF, math.Ldexp(1023.0/1024, -14)},
		{"smallest normal", 0x0400, math.Ldexp(1, -14)},
		{"zero", 0x0000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.bits)
			if got != tt.want {
				t.Errorf("Decode(%#04x) = %v, want %v", tt.bits, got, tt.want)
			}
		})
	}
}

func TestDecodeSpecials(t *testing.T) {
	if v := Decode(0x7C00); !math.IsInf(v, 1) {
		t.Errorf("Decode(0x7C00) = %v, want +Inf", v)
	}
	if v := Decode(0xFC00); !math.IsInf(v, -1) {
		t.Errorf("Decode(0xFC00) = %v, want -Inf", v)
	}
	if v := Decode(0x7E00); !math.IsNaN(v) {
		t.Errorf("Decode(0x7E00) = %v, want NaN", v)
	}
	if v := Decode(0x7C01); !math.IsNaN(v) {
		t.Errorf("Decode(0x7C01) = %v, want NaN", v)
	}
	if v := Decode(0xFFFF); !math.IsNaN(v) {
		t.Errorf("Decode(0xFFFF) = %v, want NaN", v)
	}

	v := Decode(0x8000)
	if v != 0 || !math.Signbit(v) {
		t.Errorf("Decode(0x8000) = %v (signbit %v), want -0.0", v, math.Signbit(v))
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want uint16
	}{
		{"one", 1.0, 0x3C00},
		{"one and a half", 1.5, 0x3E00},
		{"minus two", -2.0, 0xC000},
		{"half", 0.5, 0x3800},
		{"zero", 0, 0x0000},
		{"max finite", 65504, 0x7BFF},
		{"overflow saturates", 65520, 0x7C00},
		{"negative overflow saturates", -65520, 0xFC00},
		{"huge saturates", 1e300, 0x7C00},
		{"mantissa carry bumps exponent", 2047.5, 0x6800},
		{"smallest subnormal", math.Ldexp(1, -24), 0x0001},
		{"largest subnormal", math.Ldexp(1023.0/1024, -14), 0x03FF},
		{"smallest normal", math.Ldexp(1, -14), 0x0400},
		{"subnormal carry to normal", math.Ldexp(1, -14) * (1 - 1e-9), 0x0400},
		{"below half subnormal rounds to zero", math.Ldexp(1, -26), 0x0000},
		{"round half away from zero", math.Ldexp(1, -25), 0x0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.v)
			if got != tt.want {
				t.Errorf("Encode(%v) = %#04x, want %#04x", tt.v, got, tt.want)
			}
		})
	}
}

func TestEncodeSpecials(t *testing.T) {
	if got := Encode(math.NaN()); got != 0x7E00 {
		t.Errorf("Encode(NaN) = %#04x, want 0x7E00", got)
	}
	if got := Encode(math.Inf(1)); got != 0x7C00 {
		t.Errorf("Encode(+Inf) = %#04x, want 0x7C00", got)
	}
	if got := Encode(math.Inf(-1)); got != 0xFC00 {
		t.Errorf("Encode(-Inf) = %#04x, want 0xFC00", got)
	}
	// Sign of zero is dropped on encode.
	if got := Encode(math.Copysign(0, -1)); got != 0x0000 {
		t.Errorf("Encode(-0.0) = %#04x, want 0x0000", got)
	}
}

// Every finite binary16 pattern must survive a decode/encode round trip,
// except -0.0 which canonicalizes to +0.0.
func TestRoundTripAllFinite(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		bits := uint16(i)
		exp := (bits >> 10) & 0x1F
		if exp == 0x1F {
			continue // non-finite
		}
		got := Encode(Decode(bits))
		want := bits
		if bits == 0x8000 {
			want = 0x0000
		}
		if got != want {
			t.Errorf("round trip %#04x = %#04x, want %#04x", bits, got, want)
		}
	}
}

// 2047.5 is exactly between two representable values; rounding away from
// zero lands on 2048 in both directions.
func TestHalfwayRounding(t *testing.T) {
	bits := Encode(2047.5)
	if bits != 0x6800 {
		t.Fatalf("Encode(2047.5) = %#04x, want 0x6800", bits)
	}
	if v := Decode(bits); v != 2048 {
		t.Errorf("Decode(0x6800) = %v, want 2048", v)
	}
	if bits := Encode(-2047.5); bits != 0xE800 {
		t.Errorf("Encode(-2047.5) = %#04x, want 0xE800", bits)
	}
}
