package regkit

import (
	"github.com/hexwire/regkit/addrmap"
	"github.com/hexwire/regkit/register"
)

// MaxRegisterWidth is the widest accepted register definition, in bits.
const MaxRegisterWidth = register.MaxWidth

// Address-map geometry defaults shared by regset and front-ends.
const (
	DefaultUnitBits     = addrmap.DefaultUnitBits
	DefaultUnitsPerBand = addrmap.DefaultUnitsPerBand
)

// Model aliases so front-ends that only build definitions need a single
// import.

type RegisterDef = register.RegisterDef
type FieldDef = register.FieldDef
type EnumValue = register.EnumValue

type FieldKind = register.FieldKind

const (
	KindFlag  = register.KindFlag
	KindEnum  = register.KindEnum
	KindInt   = register.KindInt
	KindFloat = register.KindFloat
	KindFixed = register.KindFixed
)

type SignMode = register.SignMode

const (
	Unsigned       = register.Unsigned
	TwosComplement = register.TwosComplement
	SignMagnitude  = register.SignMagnitude
)

type FloatPrec = register.FloatPrec

const (
	Half   = register.Half
	Single = register.Single
	Double = register.Double
)
