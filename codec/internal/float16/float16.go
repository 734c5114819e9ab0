package float16

import "math"

const (
	signMask = 0x8000
	expBits  = 5
	mantBits = 10
	expMask  = (1 << expBits) - 1  // 0x1F
	mantMask = (1 << mantBits) - 1 // 0x3FF
	expBias  = expMask >> 1        // 15

	// Canonical non-finite encodings.
	quietNaN = 0x7E00
	posInf   = 0x7C00
	negInf   = 0xFC00

	mantScale = 1 << mantBits // 1024
	minExp    = -14
	maxExp    = 15
)

// Decode expands a binary16 bit pattern to float64. Exact for all inputs.
func Decode(bits uint16) float64 {
	neg := bits&signMask != 0
	exp := int(bits>>mantBits) & expMask
	mant := float64(bits & mantMask)

	var v float64
	switch exp {
	case 0:
		v = math.Ldexp(mant/mantScale, minExp)
	case expMask:
		if mant == 0 {
			v = math.Inf(1)
		} else {
			v = math.NaN()
		}
	default:
		v = math.Ldexp(1+mant/mantScale, exp-expBias)
	}
	if neg {
		v = -v
	}
	return v
}

// Encode compresses a float64 to the nearest binary16 bit pattern, rounding
// half away from zero. Values beyond the half-precision range saturate to
// the infinity of matching sign; every NaN becomes the quiet NaN 0x7E00.
func Encode(v float64) uint16 {
	switch {
	case math.IsNaN(v):
		return quietNaN
	case math.IsInf(v, 1):
		return posInf
	case math.IsInf(v, -1):
		return negInf
	case v == 0:
		// -0.0 lands here too and encodes as +0.0.
		return 0
	}

	var sign uint16
	if v < 0 {
		sign = signMask
		v = -v
	}

	exp := int(math.Floor(math.Log2(v)))
	if exp < minExp {
		// Subnormal: mantissa only, exponent field zero. A mantissa that
		// rounds up to 1024 carries into the exponent bit and becomes the
		// smallest normal.
		mant := uint16(math.Round(math.Ldexp(v, -minExp) * mantScale))
		return sign | mant
	}
	if exp > maxExp {
		return sign | posInf
	}

	mant := int(math.Round((math.Ldexp(v, -exp) - 1) * mantScale))
	if mant == mantScale {
		mant = 0
		exp++
	}
	biased := exp + expBias
	if biased > expMask-1 {
		return sign | posInf
	}
	return sign | uint16(biased)<<mantBits | uint16(mant)
}
