// Package regkit decodes, encodes, validates, and lays out bit-field
// registers of arbitrary width.
//
// Register values are arbitrary-precision integers, so 8-bit peripheral
// registers and 1024-bit device maps go through the same code paths. Field
// windows are inclusive [MSB:LSB] ranges numbered from bit 0, and every
// codec and layout operation is total: malformed input produces a
// deterministic fallback, never a panic or an error.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	regkit/              Root package with shared limits and model aliases
//	├── regset/          Validated ordered register sets with current values
//	├── register/        Definition model, validator, overlap detection
//	├── codec/           Per-field decode/encode/format and literal parsing
//	│   └── internal/
//	│       ├── float16/ IEEE-754 binary16 software codec
//	│       └── fixpoint/ Qm.n fixed-point codec
//	├── bitfield/        Bit window primitives on arbitrary-precision values
//	├── layout/          Bit-grid rows, gap columns, nibble/field spans
//	├── addrmap/         Banded address-map layout with overlap annotation
//	└── errors/          Structured error types for diagnostics
//
// # Quick Start
//
// Define a register, decode a raw value, edit a field:
//
//	def := regkit.RegisterDef{
//	    Name:  "CTRL",
//	    Width: 8,
//	    Fields: []regkit.FieldDef{
//	        {Name: "EN", MSB: 0, LSB: 0, Kind: regkit.KindFlag},
//	        {Name: "MODE", MSB: 3, LSB: 1, Kind: regkit.KindEnum,
//	            Enum: []regkit.EnumValue{
//	                {Value: big.NewInt(0), Name: "OFF"},
//	                {Value: big.NewInt(1), Name: "SLOW"},
//	            }},
//	        {Name: "GAIN", MSB: 7, LSB: 4, Kind: regkit.KindInt,
//	            Sign: regkit.TwosComplement},
//	    },
//	}
//
//	rep := register.Validate(def)
//	if !rep.Valid() {
//	    // rep.Errors, rep.Warnings
//	}
//
//	raw := big.NewInt(0xA3)
//	for _, f := range def.Fields {
//	    fmt.Println(f.Name, codec.Decode(raw, f))
//	}
//	raw = codec.Apply(raw, def.Fields[2], "-3")
//
// Lay the register out as an on-screen bit grid:
//
//	bits := layout.BitsPerRow(containerWidth, def.Width, cell, gap)
//	for _, row := range layout.Rows(def.Width, bits) {
//	    spans := layout.FieldsForRow(def.Fields, row)
//	    // render spans at their StartCol..EndCol grid columns
//	}
//
// # Field Kinds
//
// Five interpretations cover the usual register description vocabulary:
//
//	flag    1-bit boolean (any non-zero window decodes true)
//	enum    named values, first definition-order match wins
//	int     unsigned, two's-complement, or sign-magnitude
//	float   IEEE-754 half, single, or double over the window bits
//	fixed   Qm.n fixed point, two's-complement scaled by 2^-n
//
// # Thread Safety
//
// Everything outside regset is pure functions over immutable inputs and is
// safe for concurrent use. regset.Set guards its mutable state internally.
package regkit
