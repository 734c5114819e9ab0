// Package bitfield provides bit-window primitives over arbitrary-precision
// integers.
//
// Register values are *big.Int so that widths beyond 64 bits behave exactly
// like narrow ones; nothing in this package wraps at a machine word. All
// functions are pure: inputs are never mutated, results are freshly
// allocated, and a nil *big.Int is treated as zero.
//
// Bit windows are inclusive [msb:lsb] ranges, LSB-0 numbered:
//
//	v        = 0b1011_0110
//	Extract(v, 5, 2)          →  0b1101
//	Replace(v, 0b0000, 5, 2)  →  0b1000_0010
//
// Signedness helpers convert between mathematical integers and their
// fixed-width bit patterns:
//
//	ToUnsigned(-1, 8)       → 0xFF  (two's complement image)
//	FromUnsigned(0xFF, 8)   → -1
//	SignMagnitude(0x80, 8)  → magnitude 0, negative (the -0 pattern)
package bitfield
