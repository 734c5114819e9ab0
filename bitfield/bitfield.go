package bitfield

import "math/big"

var one = big.NewInt(1)

// norm treats nil as zero so callers can pass unset values safely.
func norm(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// Mask returns 2^width - 1, the all-ones pattern of the given width.
// Non-positive widths yield zero.
func Mask(width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}
	m := new(big.Int).Lsh(one, uint(width))
	return m.Sub(m, one)
}

// Extract returns bits [msb:lsb] of v, right-aligned. An inverted or
// negative window yields zero.
func Extract(v *big.Int, msb, lsb int) *big.Int {
	if msb < lsb || lsb < 0 {
		return new(big.Int)
	}
	r := new(big.Int).Rsh(norm(v), uint(lsb))
	return r.And(r, Mask(msb-lsb+1))
}

// Replace returns v with bits [msb:lsb] replaced by field, which is masked
// to the window width. Bits outside the window are untouched. An inverted
// or negative window returns v unchanged.
func Replace(v, field *big.Int, msb, lsb int) *big.Int {
	if msb < lsb || lsb < 0 {
		return new(big.Int).Set(norm(v))
	}
	window := new(big.Int).Lsh(Mask(msb-lsb+1), uint(lsb))
	r := new(big.Int).AndNot(norm(v), window)
	f := new(big.Int).And(norm(field), Mask(msb-lsb+1))
	f.Lsh(f, uint(lsb))
	return r.Or(r, f)
}

// Get returns bit i of v (0 or 1). Negative indices yield 0.
func Get(v *big.Int, i int) uint {
	if i < 0 {
		return 0
	}
	return norm(v).Bit(i)
}

// Toggle returns v with bit i flipped. Negative indices return v unchanged.
func Toggle(v *big.Int, i int) *big.Int {
	w := norm(v)
	if i < 0 {
		return new(big.Int).Set(w)
	}
	return new(big.Int).SetBit(w, i, w.Bit(i)^1)
}

// ToUnsigned returns the width-bit pattern of v: v mod 2^width. Negative
// values take their two's complement image, so ToUnsigned(-1, 8) is 0xFF.
func ToUnsigned(v *big.Int, width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}
	// big.Int bitwise ops use infinite two's complement for negatives,
	// so a single And is the full mod-2^width reduction.
	return new(big.Int).And(norm(v), Mask(width))
}

// FromUnsigned interprets a width-bit pattern as a two's-complement signed
// integer: patterns with the top bit set come back negative.
func FromUnsigned(u *big.Int, width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}
	p := ToUnsigned(u, width)
	if p.Bit(width-1) == 1 {
		span := new(big.Int).Lsh(one, uint(width))
		p.Sub(p, span)
	}
	return p
}

// SignMagnitude splits a width-bit pattern into its sign-magnitude parts:
// the top bit is the sign, the low width-1 bits the magnitude. neg with a
// zero magnitude is the distinct negative-zero pattern.
func SignMagnitude(v *big.Int, width int) (mag *big.Int, neg bool) {
	if width <= 0 {
		return new(big.Int), false
	}
	p := ToUnsigned(v, width)
	neg = p.Bit(width-1) == 1
	mag = p.And(p, Mask(width-1))
	return mag, neg
}

// FromSignMagnitude builds the width-bit sign-magnitude pattern for the
// given magnitude and sign. The magnitude is masked to width-1 bits.
func FromSignMagnitude(mag *big.Int, neg bool, width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}
	p := new(big.Int).And(norm(mag), Mask(width-1))
	if neg {
		p.SetBit(p, width-1, 1)
	}
	return p
}
