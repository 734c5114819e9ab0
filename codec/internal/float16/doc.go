// Package float16 implements the IEEE-754 binary16 interchange format
// (1 sign bit, 5 exponent bits, 10 mantissa bits) in software.
//
// Go has no native half-precision type, so conversion goes through float64.
// Decoding is exact: every binary16 value is representable in float64.
// Encoding rounds half away from zero and saturates overflow to infinity.
//
// Non-finite encodings are canonical: every NaN input encodes to 0x7E00 and
// infinities to 0x7C00/0xFC00. A negative zero input encodes to 0x0000; the
// sign of zero is not preserved in this direction, while 0x8000 still
// decodes to -0.0.
//
// This package is internal to the codec.
package float16
