package register

import "math/big"

// MaxWidth is the widest register definition the library accepts, in bits.
const MaxWidth = 1024

// EnumValue is one named value of an enum field. Earlier entries win when
// several share a value or a name.
type EnumValue struct {
	Value *big.Int
	Name  string
}

// FieldDef names a bit window [MSB:LSB] of a register and describes how to
// interpret it. The window is inclusive and LSB-0 numbered.
//
// Kind-specific parameters: Sign applies to int fields, Prec to float
// fields, IntBits/FracBits to fixed fields, Enum to enum fields. The rest
// are ignored.
type FieldDef struct {
	ID   string
	Name string
	MSB  int
	LSB  int
	Kind FieldKind

	Sign     SignMode
	Prec     FloatPrec
	IntBits  int
	FracBits int
	Enum     []EnumValue
}

// Width returns the number of bits the field covers. Inverted windows give
// a non-positive width.
func (f *FieldDef) Width() int {
	return f.MSB - f.LSB + 1
}

// RangeValid reports whether the bit window is well formed: descending
// from a non-negative LSB.
func (f *FieldDef) RangeValid() bool {
	return f.MSB >= f.LSB && f.LSB >= 0
}

// Covers reports whether the field's window contains the given bit.
func (f *FieldDef) Covers(bit int) bool {
	return f.RangeValid() && bit >= f.LSB && bit <= f.MSB
}

// RegisterDef describes one register: a named bit width, an optional
// location in the address map, and any number of fields.
//
// IDs are opaque strings used to correlate registers and fields across
// decoded values and layout output; they carry no meaning of their own.
type RegisterDef struct {
	ID        string
	Name      string
	Width     int
	Offset    int64
	HasOffset bool
	Fields    []FieldDef
}

// Field returns the field with the given ID, or nil.
func (r *RegisterDef) Field(id string) *FieldDef {
	for i := range r.Fields {
		if r.Fields[i].ID == id {
			return &r.Fields[i]
		}
	}
	return nil
}

// FieldNamed returns the first field with the given name, or nil.
func (r *RegisterDef) FieldNamed(name string) *FieldDef {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}
	return nil
}

// label is the register's display handle for diagnostics: the name when
// present, else the ID, else a generic placeholder.
func (r *RegisterDef) label() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return "register"
}
