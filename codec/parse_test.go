package codec

import (
	"math"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0", "0", true},
		{"42", "42", true},
		{"-42", "-42", true},
		{"0x2A", "42", true},
		{"0X2a", "42", true},
		{"-0x2A", "-42", true},
		{"0b101", "5", true},
		{"0B101", "5", true},
		{"0o17", "15", true},
		{"0O17", "15", true},
		{"  42  ", "42", true},
		{"0xDEADBEEFDEADBEEFDEADBEEF", "0xDEADBEEFDEADBEEFDEADBEEF", true},
		{"", "", false},
		{"-", "", false},
		{"0x", "", false},
		{"0xZZ", "", false},
		{"1_000", "", false},
		{"0x1_0", "", false},
		{"+5", "", false},
		{"0x-10", "", false},
		{"--5", "", false},
		{"3.5", "", false},
		{"12pm", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseInt(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseInt(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got.Cmp(mustBig(t, tt.want)) != 0 {
				t.Errorf("ParseInt(%q) = %v, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"1.5", 1.5, true},
		{"-1.5", -1.5, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"1.5e-2", 0.015, true},
		{"1E3", 1000, true},
		{"0x10", 16, true},
		{"0b11", 3, true},
		{"-0o10", -8, true},
		{"", 0, false},
		{".", 0, false},
		{"e3", 0, false},
		{"1e", 0, false},
		{"1e+", 0, false},
		{"NaN", 0, false},
		{"nan", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
		{"Infinity", 0, false},
		{"0x1p2", 0, false},
		{"1_000.5", 0, false},
		{"fast", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFloat(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseFloat(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// A finite literal whose value overflows float64 keeps the IEEE overflow
// result instead of being rejected.
func TestParseFloatOverflow(t *testing.T) {
	got, ok := ParseFloat("1e999")
	if !ok || !math.IsInf(got, 1) {
		t.Errorf("ParseFloat(1e999) = (%v, %v), want (+Inf, true)", got, ok)
	}
	got, ok = ParseFloat("-1e999")
	if !ok || !math.IsInf(got, -1) {
		t.Errorf("ParseFloat(-1e999) = (%v, %v), want (-Inf, true)", got, ok)
	}
}

func TestLiteralPredicates(t *testing.T) {
	if !IsIntLiteral("0xFF") || IsIntLiteral("0xFG") {
		t.Error("IsIntLiteral misjudged hex forms")
	}
	if !IsFloatLiteral("2.5e1") || IsFloatLiteral("NaN") {
		t.Error("IsFloatLiteral misjudged decimal forms")
	}
	if !IsFloatLiteral("0x10") {
		t.Error("IsFloatLiteral should accept integer literals")
	}
	if IsIntLiteral("2.5") {
		t.Error("IsIntLiteral should reject fractions")
	}
}
