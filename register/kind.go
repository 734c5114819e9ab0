package register

import "fmt"

// FieldKind selects how a field's bits are interpreted.
type FieldKind uint8

const (
	KindFlag FieldKind = iota
	KindEnum
	KindInt
	KindFloat
	KindFixed
)

var kindNames = [...]string{
	KindFlag:  "flag",
	KindEnum:  "enum",
	KindInt:   "int",
	KindFloat: "float",
	KindFixed: "fixed",
}

func (k FieldKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// SignMode selects the signed interpretation of an int field's bits.
type SignMode uint8

const (
	Unsigned SignMode = iota
	TwosComplement
	SignMagnitude
)

var signNames = [...]string{
	Unsigned:       "unsigned",
	TwosComplement: "twos-complement",
	SignMagnitude:  "sign-magnitude",
}

func (s SignMode) String() string {
	if int(s) < len(signNames) {
		return signNames[s]
	}
	return "unknown"
}

// FloatPrec selects the IEEE-754 interchange format of a float field.
type FloatPrec uint8

const (
	Half FloatPrec = iota
	Single
	Double
)

var precNames = [...]string{
	Half:   "half",
	Single: "single",
	Double: "double",
}

func (p FloatPrec) String() string {
	if int(p) < len(precNames) {
		return precNames[p]
	}
	return "unknown"
}

// Bits returns the bit width the format requires.
func (p FloatPrec) Bits() int {
	switch p {
	case Half:
		return 16
	case Single:
		return 32
	case Double:
		return 64
	default:
		return 0
	}
}

// TypeLabel is the short human-readable type of a field, e.g. "flag",
// "int sign-magnitude", "float half", "fixed Q4.4".
func (f *FieldDef) TypeLabel() string {
	switch f.Kind {
	case KindInt:
		return fmt.Sprintf("int %s", f.Sign)
	case KindFloat:
		return fmt.Sprintf("float %s", f.Prec)
	case KindFixed:
		return fmt.Sprintf("fixed Q%d.%d", f.IntBits, f.FracBits)
	default:
		return f.Kind.String()
	}
}
