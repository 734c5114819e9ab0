package codec

import (
	"math"
	"math/big"
	"strconv"

	"github.com/hexwire/regkit/register"
)

// Value is a decoded field: a kind tag plus the interpretation that kind
// produces. Raw always holds the extracted window bits.
type Value struct {
	Kind register.FieldKind

	Bool     bool     // flag
	Int      *big.Int // int and enum: the numeric value
	NegZero  bool     // int sign-magnitude: the -0 pattern
	EnumName string   // enum: matched entry name
	Resolved bool     // enum: whether a name matched
	Float    float64  // float and fixed
	Raw      *big.Int // extracted window bits, unmasked by interpretation
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case register.KindFlag:
		return strconv.FormatBool(v.Bool)
	case register.KindEnum:
		if v.Resolved {
			return v.EnumName + " (" + v.intText() + ")"
		}
		return v.intText()
	case register.KindInt:
		if v.NegZero {
			return "-0"
		}
		return v.intText()
	case register.KindFloat:
		switch {
		case math.IsNaN(v.Float):
			return "NaN"
		case math.IsInf(v.Float, 1):
			return "+Inf"
		case math.IsInf(v.Float, -1):
			return "-Inf"
		}
		return strconv.FormatFloat(v.Float, 'g', 6, 64)
	case register.KindFixed:
		return strconv.FormatFloat(v.Float, 'f', 4, 64)
	}
	return "unknown"
}

func (v Value) intText() string {
	if v.Int == nil {
		return "0"
	}
	return v.Int.String()
}
