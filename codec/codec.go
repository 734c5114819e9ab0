package codec

import (
	"math"
	"math/big"
	"strings"

	"github.com/hexwire/regkit/bitfield"
	"github.com/hexwire/regkit/codec/internal/fixpoint"
	"github.com/hexwire/regkit/codec/internal/float16"
	"github.com/hexwire/regkit/register"
)

// Decode extracts field f's window from raw and interprets it.
func Decode(raw *big.Int, f register.FieldDef) Value {
	bits := bitfield.Extract(raw, f.MSB, f.LSB)
	v := Value{Kind: f.Kind, Raw: bits}

	switch f.Kind {
	case register.KindFlag:
		v.Bool = bits.Sign() != 0

	case register.KindEnum:
		v.Int = bits
		for _, e := range f.Enum {
			if e.Value != nil && e.Value.Cmp(bits) == 0 {
				v.EnumName = e.Name
				v.Resolved = true
				break
			}
		}

	case register.KindInt:
		switch f.Sign {
		case register.TwosComplement:
			v.Int = bitfield.FromUnsigned(bits, f.Width())
		case register.SignMagnitude:
			mag, neg := bitfield.SignMagnitude(bits, f.Width())
			switch {
			case neg && mag.Sign() == 0:
				v.NegZero = true
				v.Int = mag
			case neg:
				v.Int = mag.Neg(mag)
			default:
				v.Int = mag
			}
		default:
			v.Int = bits
		}

	case register.KindFloat:
		switch f.Prec {
		case register.Single:
			v.Float = float64(math.Float32frombits(uint32(low64(bits))))
		case register.Double:
			v.Float = math.Float64frombits(low64(bits))
		default:
			v.Float = float16.Decode(uint16(low64(bits)))
		}

	case register.KindFixed:
		v.Float = fixpoint.Decode(bits, f.IntBits, f.FracBits)
	}
	return v
}

// Encode converts untyped input to field f's raw window value, masked to
// the field width. Input that cannot be interpreted for the field's kind
// encodes to zero; Encode never fails.
func Encode(input any, f register.FieldDef) *big.Int {
	width := f.Width()

	switch f.Kind {
	case register.KindFlag:
		if b, ok := toBool(input); ok && b {
			return big.NewInt(1)
		}
		return new(big.Int)

	case register.KindEnum:
		if s, ok := input.(string); ok {
			name := strings.TrimSpace(s)
			for _, e := range f.Enum {
				if e.Name == name && e.Value != nil {
					return bitfield.ToUnsigned(e.Value, width)
				}
			}
		}
		n, ok := toBig(input)
		if !ok {
			return new(big.Int)
		}
		return bitfield.ToUnsigned(n, width)

	case register.KindInt:
		n, ok := toBig(input)
		if !ok {
			return new(big.Int)
		}
		if f.Sign == register.SignMagnitude {
			neg := n.Sign() < 0
			return bitfield.FromSignMagnitude(new(big.Int).Abs(n), neg, width)
		}
		return bitfield.ToUnsigned(n, width)

	case register.KindFloat:
		fv, ok := toFloat(input)
		if !ok {
			return new(big.Int)
		}
		var bits *big.Int
		switch f.Prec {
		case register.Single:
			bits = new(big.Int).SetUint64(uint64(math.Float32bits(float32(fv))))
		case register.Double:
			bits = new(big.Int).SetUint64(math.Float64bits(fv))
		default:
			bits = new(big.Int).SetUint64(uint64(float16.Encode(fv)))
		}
		return bitfield.ToUnsigned(bits, width)

	case register.KindFixed:
		fv, ok := toFloat(input)
		if !ok {
			return new(big.Int)
		}
		return bitfield.ToUnsigned(fixpoint.Encode(fv, f.IntBits, f.FracBits), width)
	}
	return new(big.Int)
}

// Apply encodes input for field f and merges it into raw, leaving bits
// outside the field untouched.
func Apply(raw *big.Int, f register.FieldDef, input any) *big.Int {
	return bitfield.Replace(raw, Encode(input, f), f.MSB, f.LSB)
}

// toBig coerces encode input to an integer. Floats round half away from
// zero; strings must be integer literals.
func toBig(input any) (*big.Int, bool) {
	switch x := input.(type) {
	case *big.Int:
		if x == nil {
			return new(big.Int), true
		}
		return new(big.Int).Set(x), true
	case bool:
		if x {
			return big.NewInt(1), true
		}
		return new(big.Int), true
	case int:
		return big.NewInt(int64(x)), true
	case int8:
		return big.NewInt(int64(x)), true
	case int16:
		return big.NewInt(int64(x)), true
	case int32:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case uint:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint8:
		return big.NewInt(int64(x)), true
	case uint16:
		return big.NewInt(int64(x)), true
	case uint32:
		return big.NewInt(int64(x)), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case float32:
		return floatToBig(float64(x))
	case float64:
		return floatToBig(x)
	case string:
		return ParseInt(x)
	}
	return nil, false
}

func floatToBig(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	i, _ := big.NewFloat(math.Round(f)).Int(nil)
	return i, true
}

// toFloat coerces encode input to a real number; strings may be integer
// or decimal literals.
func toFloat(input any) (float64, bool) {
	switch x := input.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		return ParseFloat(x)
	case *big.Int:
		if x == nil {
			return 0, true
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, _ := toBig(x)
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	}
	return 0, false
}

// toBool coerces encode input for flag fields: booleans directly, numbers
// by non-zero test, strings as "true"/"false" or numeric literals.
func toBool(input any) (bool, bool) {
	switch x := input.(type) {
	case bool:
		return x, true
	case string:
		switch strings.TrimSpace(x) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		if f, ok := ParseFloat(x); ok {
			return f != 0, true
		}
		return false, false
	case *big.Int:
		return x != nil && x.Sign() != 0, true
	}
	// Non-zero test goes through float so fractional inputs stay truthy.
	if f, ok := toFloat(input); ok {
		return f != 0, true
	}
	return false, false
}

// low64 returns the low 64 bits of v as a uint64, defined for any width.
func low64(v *big.Int) uint64 {
	return new(big.Int).And(v, bitfield.Mask(64)).Uint64()
}
