// Package codec converts between raw register bits and typed field values.
//
// Decode extracts a field's window from a raw register value and interprets
// it by kind; Encode inverts the mapping; Apply merges an encoded field
// back into a register value. All three are total: no input, however
// malformed, produces an error or a panic. Unparsable encode input falls
// back to an all-zero field value, and an enum pattern with no matching
// entry decodes to its bare number.
//
//	kind    decoded as        formatted as
//	-----   ---------------   -------------------------------
//	flag    bool              "true" / "false"
//	enum    name + number     "NAME (value)", bare value when
//	                          unresolved
//	int     *big.Int          exact decimal, "-0" for the
//	                          sign-magnitude negative zero
//	float   float64           6 significant digits, "NaN",
//	                          "+Inf", "-Inf"
//	fixed   float64           4 decimal places
//
// # Interpretation details
//
// A flag is true when any bit of its window is set, not only bit 0. Int
// fields honor their SignMode; sign-magnitude keeps negative zero as a
// state distinct from zero. Float fields reinterpret the window's low
// 16/32/64 bits as IEEE-754 half/single/double. Fixed fields divide the
// window's two's-complement value by 2^FracBits.
//
// # Encode inputs
//
// Encode takes untyped input: bool, any Go integer or float type,
// *big.Int, or a string literal. Strings accept 0x/0b/0o prefixes and an
// optional leading minus for integer forms; float fields additionally
// accept decimal fraction and exponent forms. Enum fields try a name match
// before numeric parsing. Every numeric branch masks to the field width.
package codec
