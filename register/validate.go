package register

import (
	"strings"

	"github.com/hexwire/regkit/errors"
)

// Report collects the outcome of validating one register definition.
// Errors make the definition unusable at a strict boundary; warnings are
// tolerated everywhere, and every codec and layout operation stays defined
// on a definition that only warns.
type Report struct {
	Errors   []*errors.Error
	Warnings []*errors.Error
}

// Valid reports whether the definition carries no hard errors.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Issues returns errors followed by warnings as a single slice.
func (r *Report) Issues() []*errors.Error {
	out := make([]*errors.Error, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

// Validate checks one register definition.
//
// Hard errors: width outside [1, MaxWidth], blank register or field names,
// inverted or negative bit windows, and kind/width mismatches (a flag that
// is not 1 bit, a float that does not match its precision, a fixed field
// whose window is not IntBits+FracBits).
//
// Warnings: a field MSB reaching outside the register, and one warning per
// unordered pair of overlapping fields.
func Validate(def RegisterDef) Report {
	var rep Report
	path := []string{def.label()}

	if def.Width < 1 || def.Width > MaxWidth {
		rep.Errors = append(rep.Errors, errors.WidthOutOfRange(path, def.Width, MaxWidth))
	}
	if strings.TrimSpace(def.Name) == "" {
		rep.Errors = append(rep.Errors, errors.BlankName(path))
	}

	for i := range def.Fields {
		validateField(&def.Fields[i], def.Width, path, &rep)
	}

	for _, ov := range FieldOverlaps(def.Fields) {
		rep.Warnings = append(rep.Warnings,
			errors.FieldOverlap(path, ov.A.Name, ov.B.Name, ov.High, ov.Low))
	}
	return rep
}

func validateField(f *FieldDef, regWidth int, regPath []string, rep *Report) {
	path := append(regPath[:len(regPath):len(regPath)], fieldLabel(f))

	if strings.TrimSpace(f.Name) == "" {
		rep.Errors = append(rep.Errors, errors.BlankName(path))
	}
	if !f.RangeValid() {
		// The remaining checks all depend on a sane window.
		rep.Errors = append(rep.Errors, errors.BitOrder(path, f.MSB, f.LSB))
		return
	}

	switch f.Kind {
	case KindFlag:
		if f.Width() != 1 {
			rep.Errors = append(rep.Errors, errors.WidthMismatch(path, f.TypeLabel(), f.Width(), 1))
		}
	case KindFloat:
		if f.Width() != f.Prec.Bits() {
			rep.Errors = append(rep.Errors, errors.WidthMismatch(path, f.TypeLabel(), f.Width(), f.Prec.Bits()))
		}
	case KindFixed:
		if f.IntBits < 0 || f.FracBits < 0 || f.Width() != f.IntBits+f.FracBits {
			rep.Errors = append(rep.Errors, errors.WidthMismatch(path, f.TypeLabel(), f.Width(), f.IntBits+f.FracBits))
		}
	}

	if f.MSB >= regWidth {
		rep.Warnings = append(rep.Warnings, errors.ExceedsWidth(path, f.MSB, regWidth))
	}
}

func fieldLabel(f *FieldDef) string {
	if f.Name != "" {
		return f.Name
	}
	if f.ID != "" {
		return f.ID
	}
	return "field"
}
