package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/hexwire/regkit/codec"
	"github.com/hexwire/regkit/errors"
	"github.com/hexwire/regkit/register"
)

// The definition file format belongs to this tool; the library itself has
// no persistence format. Shape:
//
//	{
//	  "registers": [
//	    {
//	      "name": "CTRL", "width": 8, "offset": "0x40",
//	      "fields": [
//	        {"name": "EN", "msb": 0, "lsb": 0, "type": "flag"},
//	        {"name": "GAIN", "msb": 7, "lsb": 4, "type": "int", "sign": "twos"},
//	        {"name": "MODE", "msb": 3, "lsb": 1, "type": "enum",
//	         "enum": [{"value": "0", "name": "OFF"}, {"value": "1", "name": "SLOW"}]}
//	      ]
//	    }
//	  ]
//	}
//
// Offsets and enum values take any integer literal the codec accepts, so
// hex strings are fine; offsets may also be plain JSON numbers.
type defFile struct {
	Registers []regEntry `json:"registers"`
}

type regEntry struct {
	ID     string       `json:"id,omitempty"`
	Name   string       `json:"name"`
	Width  int          `json:"width"`
	Offset *jsonInt     `json:"offset,omitempty"`
	Fields []fieldEntry `json:"fields,omitempty"`
}

type fieldEntry struct {
	ID        string      `json:"id,omitempty"`
	Name      string      `json:"name"`
	MSB       int         `json:"msb"`
	LSB       int         `json:"lsb"`
	Type      string      `json:"type"`
	Sign      string      `json:"sign,omitempty"`
	Precision string      `json:"precision,omitempty"`
	IntBits   int         `json:"intBits,omitempty"`
	FracBits  int         `json:"fracBits,omitempty"`
	Enum      []enumEntry `json:"enum,omitempty"`
}

type enumEntry struct {
	Value jsonInt `json:"value"`
	Name  string  `json:"name"`
}

// jsonInt accepts a JSON number or a quoted integer literal ("64", "0x40").
type jsonInt struct {
	value *big.Int
}

func (j *jsonInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	v, ok := codec.ParseInt(s)
	if !ok {
		return errors.BadLiteral(nil, s)
	}
	j.value = v
	return nil
}

var fieldKinds = map[string]register.FieldKind{
	"flag":  register.KindFlag,
	"enum":  register.KindEnum,
	"int":   register.KindInt,
	"float": register.KindFloat,
	"fixed": register.KindFixed,
}

var signModes = map[string]register.SignMode{
	"":                register.Unsigned,
	"unsigned":        register.Unsigned,
	"twos":            register.TwosComplement,
	"twos-complement": register.TwosComplement,
	"sign-magnitude":  register.SignMagnitude,
	"signmag":         register.SignMagnitude,
}

var floatPrecs = map[string]register.FloatPrec{
	"":       register.Single,
	"half":   register.Half,
	"single": register.Single,
	"double": register.Double,
}

// loadDefs reads and maps a definition file onto the register model.
// Validation proper happens in regset; only shape problems (bad JSON,
// unknown type strings, unparsable literals) error here.
func loadDefs(path string) ([]register.RegisterDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	var df defFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "cannot decode definition file")
	}

	defs := make([]register.RegisterDef, 0, len(df.Registers))
	for _, re := range df.Registers {
		def, err := re.toDef()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (re *regEntry) toDef() (register.RegisterDef, error) {
	def := register.RegisterDef{
		ID:    re.ID,
		Name:  re.Name,
		Width: re.Width,
	}
	if re.Offset != nil {
		if !re.Offset.value.IsInt64() {
			return def, errors.InvalidData(errors.PhaseLoad, []string{re.Name}, "offset does not fit an int64")
		}
		def.Offset = re.Offset.value.Int64()
		def.HasOffset = true
	}

	for _, fe := range re.Fields {
		f, err := fe.toField(re.Name)
		if err != nil {
			return def, err
		}
		def.Fields = append(def.Fields, f)
	}
	return def, nil
}

func (fe *fieldEntry) toField(regName string) (register.FieldDef, error) {
	kind, ok := fieldKinds[fe.Type]
	if !ok {
		return register.FieldDef{}, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(regName, fe.Name).Detail("unknown type %q", fe.Type).Value(fe.Type).Build()
	}
	sign, ok := signModes[fe.Sign]
	if !ok {
		return register.FieldDef{}, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(regName, fe.Name).Detail("unknown sign %q", fe.Sign).Value(fe.Sign).Build()
	}
	prec, ok := floatPrecs[fe.Precision]
	if !ok {
		return register.FieldDef{}, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(regName, fe.Name).Detail("unknown precision %q", fe.Precision).Value(fe.Precision).Build()
	}

	f := register.FieldDef{
		ID:       fe.ID,
		Name:     fe.Name,
		MSB:      fe.MSB,
		LSB:      fe.LSB,
		Kind:     kind,
		Sign:     sign,
		Prec:     prec,
		IntBits:  fe.IntBits,
		FracBits: fe.FracBits,
	}
	for _, ee := range fe.Enum {
		f.Enum = append(f.Enum, register.EnumValue{Value: ee.Value.value, Name: ee.Name})
	}
	return f, nil
}
