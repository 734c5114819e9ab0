package codec

import (
	"math"
	"math/big"
	"testing"

	"github.com/hexwire/regkit/register"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		t.Fatalf("bad test literal %q", s)
	}
	return v
}

func enumField(msb, lsb int) register.FieldDef {
	return register.FieldDef{
		Name: "MODE", MSB: msb, LSB: lsb, Kind: register.KindEnum,
		Enum: []register.EnumValue{
			{Value: big.NewInt(0), Name: "IDLE"},
			{Value: big.NewInt(1), Name: "RUN"},
			{Value: big.NewInt(1), Name: "RUN_ALIAS"},
			{Value: big.NewInt(3), Name: "HALT"},
		},
	}
}

func TestDecodeFlag(t *testing.T) {
	f := register.FieldDef{Name: "EN", MSB: 3, LSB: 2, Kind: register.KindFlag}

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"clear", "0x0", false},
		{"low bit of window", "0x4", true},
		{"high bit of window", "0x8", true},
		{"outside window only", "0x13", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Decode(mustBig(t, tt.raw), f)
			if v.Bool != tt.want {
				t.Errorf("Decode(%s).Bool = %v, want %v", tt.raw, v.Bool, tt.want)
			}
		})
	}
}

func TestDecodeEnum(t *testing.T) {
	f := enumField(5, 4)

	v := Decode(mustBig(t, "0x10"), f)
	if !v.Resolved || v.EnumName != "RUN" {
		t.Errorf("Decode(1) = (%q, %v), want first match RUN", v.EnumName, v.Resolved)
	}
	if v.String() != "RUN (1)" {
		t.Errorf("String() = %q, want \"RUN (1)\"", v.String())
	}

	v = Decode(mustBig(t, "0x20"), f)
	if v.Resolved {
		t.Errorf("value 2 should be unresolved, got %q", v.EnumName)
	}
	if v.String() != "2" {
		t.Errorf("unresolved String() = %q, want \"2\"", v.String())
	}
}

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		name    string
		sign    register.SignMode
		raw     string
		want    string
		negZero bool
	}{
		{"unsigned", register.Unsigned, "0xFF", "255", false},
		{"twos complement negative", register.TwosComplement, "0xFF", "-1", false},
		{"twos complement most negative", register.TwosComplement, "0x80", "-128", false},
		{"twos complement positive", register.TwosComplement, "0x7F", "127", false},
		{"sign magnitude positive", register.SignMagnitude, "0x03", "3", false},
		{"sign magnitude negative", register.SignMagnitude, "0x83", "-3", false},
		{"sign magnitude max negative", register.SignMagnitude, "0xFF", "-127", false},
		{"sign magnitude negative zero", register.SignMagnitude, "0x80", "0", true},
		{"sign magnitude positive zero", register.SignMagnitude, "0x00", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := register.FieldDef{Name: "N", MSB: 7, LSB: 0, Kind: register.KindInt, Sign: tt.sign}
			v := Decode(mustBig(t, tt.raw), f)
			if v.Int.Cmp(mustBig(t, tt.want)) != 0 {
				t.Errorf("Int = %v, want %s", v.Int, tt.want)
			}
			if v.NegZero != tt.negZero {
				t.Errorf("NegZero = %v, want %v", v.NegZero, tt.negZero)
			}
		})
	}
}

// The sign-magnitude negative zero is a distinct state: same numeric value
// as zero, different pattern and different rendering.
func TestNegativeZeroDistinct(t *testing.T) {
	f := register.FieldDef{Name: "N", MSB: 7, LSB: 0, Kind: register.KindInt, Sign: register.SignMagnitude}

	plain := Decode(new(big.Int), f)
	negz := Decode(mustBig(t, "0x80"), f)

	if plain.NegZero || !negz.NegZero {
		t.Fatalf("NegZero flags = (%v, %v), want (false, true)", plain.NegZero, negz.NegZero)
	}
	if plain.String() != "0" || negz.String() != "-0" {
		t.Errorf("renderings = (%q, %q), want (\"0\", \"-0\")", plain.String(), negz.String())
	}
	if plain.Int.Cmp(negz.Int) != 0 {
		t.Errorf("numeric values should both be zero")
	}
}

func TestDecodeFloat(t *testing.T) {
	tests := []struct {
		name string
		prec register.FloatPrec
		msb  int
		raw  string
		want float64
	}{
		{"single 1.5", register.Single, 31, "0x3FC00000", 1.5},
		{"single -2", register.Single, 31, "0xC0000000", -2},
		{"double 1.5", register.Double, 63, "0x3FF8000000000000", 1.5},
		{"half 1.5", register.Half, 15, "0x3E00", 1.5},
		{"half 2048", register.Half, 15, "0x6800", 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := register.FieldDef{Name: "F", MSB: tt.msb, LSB: 0, Kind: register.KindFloat, Prec: tt.prec}
			v := Decode(mustBig(t, tt.raw), f)
			if v.Float != tt.want {
				t.Errorf("Float = %v, want %v", v.Float, tt.want)
			}
		})
	}

	f := register.FieldDef{Name: "F", MSB: 15, LSB: 0, Kind: register.KindFloat, Prec: register.Half}
	if v := Decode(mustBig(t, "0x7E00"), f); !math.IsNaN(v.Float) {
		t.Errorf("half NaN pattern decoded to %v", v.Float)
	}
}

// Float windows away from bit 0 decode from their own bits, not the
// register's low bits.
func TestDecodeFloatShiftedWindow(t *testing.T) {
	f := register.FieldDef{Name: "F", MSB: 47, LSB: 16, Kind: register.KindFloat, Prec: register.Single}
	raw := mustBig(t, "0x3FC00000_0000") // 1.5 pattern shifted left 16
	if v := Decode(raw, f); v.Float != 1.5 {
		t.Errorf("Float = %v, want 1.5", v.Float)
	}
}

func TestDecodeFixed(t *testing.T) {
	f := register.FieldDef{Name: "G", MSB: 7, LSB: 0, Kind: register.KindFixed, IntBits: 4, FracBits: 4}

	tests := []struct {
		raw  string
		want float64
	}{
		{"0x18", 1.5},
		{"0xF0", -1.0},
		{"0x80", -8.0},
	}

	for _, tt := range tests {
		if v := Decode(mustBig(t, tt.raw), f); v.Float != tt.want {
			t.Errorf("Decode(%s).Float = %v, want %v", tt.raw, v.Float, tt.want)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"flag true", Value{Kind: register.KindFlag, Bool: true}, "true"},
		{"flag false", Value{Kind: register.KindFlag}, "false"},
		{"int exact decimal", Value{Kind: register.KindInt, Int: mustBigStr("123456789012345678901")}, "123456789012345678901"},
		{"int negative zero", Value{Kind: register.KindInt, Int: new(big.Int), NegZero: true}, "-0"},
		{"float six digits", Value{Kind: register.KindFloat, Float: 3.14159265}, "3.14159"},
		{"float short", Value{Kind: register.KindFloat, Float: 1.5}, "1.5"},
		{"float nan", Value{Kind: register.KindFloat, Float: math.NaN()}, "NaN"},
		{"float plus inf", Value{Kind: register.KindFloat, Float: math.Inf(1)}, "+Inf"},
		{"float minus inf", Value{Kind: register.KindFloat, Float: math.Inf(-1)}, "-Inf"},
		{"fixed four places", Value{Kind: register.KindFixed, Float: 1.5}, "1.5000"},
		{"fixed negative", Value{Kind: register.KindFixed, Float: -0.0625}, "-0.0625"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func mustBigStr(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 0)
	return v
}

func TestEncodeFlag(t *testing.T) {
	f := register.FieldDef{Name: "EN", MSB: 0, LSB: 0, Kind: register.KindFlag}

	tests := []struct {
		name  string
		input any
		want  int64
	}{
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"string true", "true", 1},
		{"string false", "false", 0},
		{"nonzero number", 7, 1},
		{"zero number", 0, 0},
		{"fractional number", 0.4, 1},
		{"numeric string", "0x1", 1},
		{"garbage", "maybe", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input, f)
			if got.Cmp(big.NewInt(tt.want)) != 0 {
				t.Errorf("Encode(%v) = %v, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeEnum(t *testing.T) {
	f := enumField(7, 0)

	tests := []struct {
		name  string
		input any
		want  int64
	}{
		{"by name", "HALT", 3},
		{"first name wins", "RUN", 1},
		{"alias name", "RUN_ALIAS", 1},
		{"by number", 3, 3},
		{"by numeric string", "0b11", 3},
		{"unknown name falls back", "SPIN", 0},
		{"unknown value passes through", 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input, f)
			if got.Cmp(big.NewInt(tt.want)) != 0 {
				t.Errorf("Encode(%v) = %v, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeInt(t *testing.T) {
	tests := []struct {
		name  string
		sign  register.SignMode
		input any
		want  string
	}{
		{"unsigned plain", register.Unsigned, 5, "0x05"},
		{"unsigned masks", register.Unsigned, "0x1FF", "0xFF"},
		{"twos complement minus one", register.TwosComplement, "-1", "0xFF"},
		{"twos complement minus 128", register.TwosComplement, -128, "0x80"},
		{"sign magnitude minus three", register.SignMagnitude, -3, "0x83"},
		{"sign magnitude plus three", register.SignMagnitude, 3, "0x03"},
		{"float input rounds", register.Unsigned, 3.5, "0x04"},
		{"hex string", register.Unsigned, "0x2A", "0x2A"},
		{"binary string", register.Unsigned, "0b1010", "0x0A"},
		{"octal string", register.Unsigned, "0o17", "0x0F"},
		{"negative hex string", register.TwosComplement, "-0x2", "0xFE"},
		{"garbage falls back", register.Unsigned, "12pm", "0x00"},
		{"float string rejected for int", register.Unsigned, "3.5", "0x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := register.FieldDef{Name: "N", MSB: 7, LSB: 0, Kind: register.KindInt, Sign: tt.sign}
			got := Encode(tt.input, f)
			if got.Cmp(mustBig(t, tt.want)) != 0 {
				t.Errorf("Encode(%v) = %#x, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeFloat(t *testing.T) {
	tests := []struct {
		name  string
		prec  register.FloatPrec
		msb   int
		input any
		want  string
	}{
		{"single 1.5", register.Single, 31, 1.5, "0x3FC00000"},
		{"single from string", register.Single, 31, "1.5", "0x3FC00000"},
		{"single from int literal", register.Single, 31, "2", "0x40000000"},
		{"double 1.5", register.Double, 63, 1.5, "0x3FF8000000000000"},
		{"half max", register.Half, 15, 65504, "0x7BFF"},
		{"half saturates", register.Half, 15, 65520, "0x7C00"},
		{"half nan", register.Half, 15, math.NaN(), "0x7E00"},
		{"garbage falls back", register.Single, 31, "fast", "0x0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := register.FieldDef{Name: "F", MSB: tt.msb, LSB: 0, Kind: register.KindFloat, Prec: tt.prec}
			got := Encode(tt.input, f)
			if got.Cmp(mustBig(t, tt.want)) != 0 {
				t.Errorf("Encode(%v) = %#x, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeFixed(t *testing.T) {
	f := register.FieldDef{Name: "G", MSB: 7, LSB: 0, Kind: register.KindFixed, IntBits: 4, FracBits: 4}

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"one and a half", 1.5, "0x18"},
		{"minus one", -1.0, "0xF0"},
		{"from string", "1.5", "0x18"},
		{"garbage falls back", "slow", "0x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input, f)
			if got.Cmp(mustBig(t, tt.want)) != 0 {
				t.Errorf("Encode(%v) = %#x, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	f := register.FieldDef{Name: "MID", MSB: 11, LSB: 4, Kind: register.KindInt, Sign: register.Unsigned}
	raw := mustBig(t, "0xF00F")

	got := Apply(raw, f, "0xAB")
	if got.Cmp(mustBig(t, "0xFABF")) != 0 {
		t.Errorf("Apply = %#x, want 0xFABF", got)
	}
	if raw.Cmp(mustBig(t, "0xF00F")) != 0 {
		t.Errorf("Apply mutated its input: %#x", raw)
	}

	// Malformed input zeroes the field, not the register.
	got = Apply(raw, f, "nope")
	if got.Cmp(mustBig(t, "0xF00F")) != 0 {
		t.Errorf("Apply with bad input = %#x, want 0xF00F", got)
	}
}

// Encode then Decode is identity for representable values of every kind.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	intField := register.FieldDef{Name: "N", MSB: 15, LSB: 0, Kind: register.KindInt, Sign: register.TwosComplement}
	for _, want := range []int64{0, 1, -1, 1000, -32768, 32767} {
		v := Decode(Encode(want, intField), intField)
		if v.Int.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("int round trip of %d = %v", want, v.Int)
		}
	}

	halfField := register.FieldDef{Name: "H", MSB: 15, LSB: 0, Kind: register.KindFloat, Prec: register.Half}
	for _, want := range []float64{0, 1, 1.5, -2048, 65504} {
		v := Decode(Encode(want, halfField), halfField)
		if v.Float != want {
			t.Errorf("half round trip of %v = %v", want, v.Float)
		}
	}

	fixedField := register.FieldDef{Name: "Q", MSB: 7, LSB: 0, Kind: register.KindFixed, IntBits: 4, FracBits: 4}
	for _, want := range []float64{0, 1.5, -1.0, 7.9375, -8.0} {
		v := Decode(Encode(want, fixedField), fixedField)
		if v.Float != want {
			t.Errorf("fixed round trip of %v = %v", want, v.Float)
		}
	}
}
