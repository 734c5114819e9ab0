// Package fixpoint implements the Qm.n fixed-point format: an m+n bit
// two's-complement integer scaled by 2^-n, giving m integer bits (including
// the sign) and n fractional bits.
//
//	Q4.4 examples (8 bits total):
//
//	raw   signed   value
//	0x18      24     1.5
//	0xF0     -16    -1.0
//	0x80    -128    -8.0
//
// Encoding rounds half away from zero and wraps on overflow rather than
// saturating; the raw result is always masked to m+n bits.
//
// This package is internal to the codec.
package fixpoint
