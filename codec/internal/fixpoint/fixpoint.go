package fixpoint

import (
	"math"
	"math/big"

	"github.com/hexwire/regkit/bitfield"
)

// Decode interprets the low intBits+fracBits bits of raw as a
// two's-complement integer and scales it by 2^-fracBits. Degenerate
// geometry (non-positive total width) decodes to zero.
func Decode(raw *big.Int, intBits, fracBits int) float64 {
	width := totalWidth(intBits, fracBits)
	if width <= 0 {
		return 0
	}
	signed := bitfield.FromUnsigned(raw, width)
	f, _ := new(big.Float).SetInt(signed).Float64()
	return math.Ldexp(f, -fracBits)
}

// Encode converts v to its Qm.n raw pattern: round(v * 2^fracBits) half
// away from zero, wrapped into intBits+fracBits bits. Out-of-range values
// wrap rather than saturate. Non-finite v encodes to zero.
func Encode(v float64, intBits, fracBits int) *big.Int {
	width := totalWidth(intBits, fracBits)
	if width <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return new(big.Int)
	}
	scaled := math.Round(math.Ldexp(v, fracBits))
	i, _ := big.NewFloat(scaled).Int(nil)
	return bitfield.ToUnsigned(i, width)
}

func totalWidth(intBits, fracBits int) int {
	if intBits < 0 || fracBits < 0 {
		return 0
	}
	return intBits + fracBits
}
