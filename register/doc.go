// Package register defines the register and field model and its validator.
//
// A RegisterDef is a named bit width with an optional address-map offset
// and a list of FieldDefs. Each field claims an inclusive [MSB:LSB] window
// and a FieldKind that selects its codec:
//
//	kind    parameters           width rule
//	-----   ------------------   -------------------------
//	flag    -                    exactly 1 bit
//	enum    Enum entries         any
//	int     Sign                 any
//	float   Prec                 16, 32 or 64 per Prec
//	fixed   IntBits, FracBits    IntBits + FracBits
//
// # Validation
//
// Validate separates hard errors from warnings. Errors (blank names, bad
// windows, width rule violations, width outside [1, MaxWidth]) mark a
// definition unusable at strict boundaries. Warnings are tolerated: a
// field reaching past the register MSB still decodes and lays out, and
// overlapping fields are reported once per pair but remain fully usable.
//
// # Address arithmetic
//
// UnitSpan and RegisterOverlaps place registers in an address space
// measured in units of a configurable bit size (8 for byte addressing).
// A register covers ceil(width/unitBits) units from its offset; two
// registers overlap when their unit ranges intersect.
package register
