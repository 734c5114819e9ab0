package layout

import (
	"sort"

	"github.com/hexwire/regkit/register"
)

// NibbleSpan is one hex digit of the register laid across a row. High and
// Low are register bit numbers; StartCol and EndCol are the row's grid
// columns (inclusive, left to right). Partial marks a nibble split across
// rows.
type NibbleSpan struct {
	High, Low        int
	StartCol, EndCol int
	Partial          bool
}

// NibblesForRow returns the register's 4-bit nibble groups clipped to one
// row, left to right. Nibbles align to bit 0; the top nibble is clipped
// short at the register MSB when the width is not a multiple of 4, which
// does not count as partial.
func NibblesForRow(registerWidth int, row Row) []NibbleSpan {
	var out []NibbleSpan
	if registerWidth <= 0 {
		return out
	}
	for n := (registerWidth - 1) / 4; n >= 0; n-- {
		high := min(n*4+3, registerWidth-1)
		low := n * 4
		h := min(high, row.High)
		l := max(low, row.Low)
		if h < l {
			continue
		}
		out = append(out, NibbleSpan{
			High:     h,
			Low:      l,
			StartCol: Column(h, row),
			EndCol:   Column(l, row),
			Partial:  h != high || l != low,
		})
	}
	return out
}

// FieldSpan is the part of a field visible in one row. Partial marks a
// field extending outside the row in either direction, including past the
// register MSB.
type FieldSpan struct {
	Field            *register.FieldDef
	High, Low        int
	StartCol, EndCol int
	Partial          bool
}

// FieldsForRow clips fields to one row, ordered MSB-descending (left to
// right). Fields with malformed windows or entirely outside the row are
// skipped.
func FieldsForRow(fields []register.FieldDef, row Row) []FieldSpan {
	var out []FieldSpan
	for i := range fields {
		f := &fields[i]
		if !f.RangeValid() {
			continue
		}
		h := min(f.MSB, row.High)
		l := max(f.LSB, row.Low)
		if h < l {
			continue
		}
		out = append(out, FieldSpan{
			Field:    f,
			High:     h,
			Low:      l,
			StartCol: Column(h, row),
			EndCol:   Column(l, row),
			Partial:  h != f.MSB || l != f.LSB,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].High > out[j].High })
	return out
}

// BitSpan is a run of bits in one row with its grid columns.
type BitSpan struct {
	High, Low        int
	StartCol, EndCol int
}

// UnassignedForRow returns the maximal runs of row bits covered by no
// field, left to right.
func UnassignedForRow(fields []register.FieldDef, row Row) []BitSpan {
	var out []BitSpan
	runHigh := -1
	flush := func(low int) {
		if runHigh >= 0 {
			out = append(out, BitSpan{
				High:     runHigh,
				Low:      low,
				StartCol: Column(runHigh, row),
				EndCol:   Column(low, row),
			})
			runHigh = -1
		}
	}
	for bit := row.High; bit >= row.Low; bit-- {
		if covered(fields, bit) {
			flush(bit + 1)
			continue
		}
		if runHigh < 0 {
			runHigh = bit
		}
	}
	flush(row.Low)
	return out
}

func covered(fields []register.FieldDef, bit int) bool {
	for i := range fields {
		if fields[i].Covers(bit) {
			return true
		}
	}
	return false
}
