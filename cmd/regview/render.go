package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/hexwire/regkit/addrmap"
	"github.com/hexwire/regkit/bitfield"
	"github.com/hexwire/regkit/codec"
	"github.com/hexwire/regkit/layout"
	"github.com/hexwire/regkit/register"
)

// Text geometry: one bit column takes cellText characters, one gap column
// gapText, one address unit unitText.
const (
	cellText = 4
	gapText  = 2
	unitText = 14
)

// hexValue formats v zero-padded to the register's nibble count.
func hexValue(v *big.Int, width int) string {
	if v == nil {
		v = new(big.Int)
	}
	return fmt.Sprintf("0x%0*s", (width+3)/4, v.Text(16))
}

func rangeLabel(f *register.FieldDef) string {
	if f.MSB == f.LSB {
		return fmt.Sprintf("[%d]", f.MSB)
	}
	return fmt.Sprintf("[%d:%d]", f.MSB, f.LSB)
}

// renderGrid draws a register as index, value, and field-ruler lines per
// grid row.
func renderGrid(def *register.RegisterDef, raw *big.Int, containerWidth, cellSize, gapSize int) string {
	var b strings.Builder
	bitsPerRow := layout.BitsPerRow(containerWidth, def.Width, cellSize, gapSize)
	for _, row := range layout.Rows(def.Width, bitsPerRow) {
		idx, val := renderBitLines(row, raw)
		b.WriteString(idx)
		b.WriteByte('\n')
		b.WriteString(val)
		b.WriteByte('\n')
		if ruler := renderRuler(def.Fields, row); strings.TrimSpace(ruler) != "" {
			b.WriteString(ruler)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderBitLines returns the bit-index and bit-value lines for one row.
// Tracks are walked in column order; bit columns consume indices MSB
// down.
func renderBitLines(row layout.Row, raw *big.Int) (string, string) {
	var idx, val strings.Builder
	bit := row.High
	for _, tr := range layout.Tracks(row.Bits()) {
		if tr == layout.TrackGap {
			idx.WriteString(strings.Repeat(" ", gapText))
			val.WriteString(strings.Repeat(" ", gapText))
			continue
		}
		fmt.Fprintf(&idx, "%*d ", cellText-1, bit)
		fmt.Fprintf(&val, "%*d ", cellText-1, bitfield.Get(raw, bit))
		bit--
	}
	return idx.String(), val.String()
}

// renderRuler draws field names bracketed under their grid columns. When
// overlapping fields collide on a column, the more significant one keeps
// it. Partial spans get a trailing +.
func renderRuler(fields []register.FieldDef, row layout.Row) string {
	tracks := layout.Tracks(row.Bits())
	var b strings.Builder
	col := 1
	for _, span := range layout.FieldsForRow(fields, row) {
		if span.StartCol < col {
			continue
		}
		for ; col < span.StartCol; col++ {
			b.WriteString(strings.Repeat(" ", trackWidth(tracks[col-1])))
		}
		w := 0
		for ; col <= span.EndCol; col++ {
			w += trackWidth(tracks[col-1])
		}
		label := span.Field.Name
		if span.Partial {
			label += "+"
		}
		b.WriteString(rulerBlock(label, w))
	}
	return strings.TrimRight(b.String(), " ")
}

func trackWidth(t layout.Track) int {
	if t == layout.TrackGap {
		return gapText
	}
	return cellText
}

// rulerBlock fits the label into a bracket block exactly w characters
// wide.
func rulerBlock(label string, w int) string {
	if w < 2 {
		return strings.Repeat(" ", w)
	}
	inner := w - 2
	if len(label) > inner {
		label = label[:inner]
	}
	return "[" + fmt.Sprintf("%-*s", inner, label) + "]"
}

// renderFields lists every field with its range, type, and decoded value.
func renderFields(def *register.RegisterDef, raw *big.Int) string {
	if len(def.Fields) == 0 {
		return "  (no fields)\n"
	}
	nameW, typeW := 0, 0
	for i := range def.Fields {
		f := &def.Fields[i]
		nameW = max(nameW, len(f.Name))
		typeW = max(typeW, len(f.TypeLabel()))
	}
	var b strings.Builder
	for i := range def.Fields {
		f := &def.Fields[i]
		fmt.Fprintf(&b, "  %-*s  %-7s  %-*s  = %s\n",
			nameW, f.Name, rangeLabel(f), typeW, f.TypeLabel(),
			codec.Decode(raw, *f).String())
	}
	return b.String()
}

// renderRegisterList is the -list table.
func renderRegisterList(regs []register.RegisterDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-6s %-16s %5s  %-8s %s\n", "ID", "NAME", "WIDTH", "OFFSET", "FIELDS")
	for i := range regs {
		r := &regs[i]
		offset := "-"
		if r.HasOffset {
			offset = fmt.Sprintf("%#x", r.Offset)
		}
		fmt.Fprintf(&b, "  %-6s %-16s %5d  %-8s %d\n", r.ID, r.Name, r.Width, offset, len(r.Fields))
	}
	return b.String()
}

// renderMap draws the banded address map, one band per line, with a unit
// scale header. Every unit takes unitText characters so cells line up
// across bands.
func renderMap(m addrmap.Map, opts addrmap.Options) string {
	if len(m.Rows) == 0 {
		return "  (no placed registers)\n"
	}
	var b strings.Builder
	b.WriteString("          ")
	for u := 0; u < opts.UnitsPerBand; u++ {
		fmt.Fprintf(&b, "%-*s", unitText, fmt.Sprintf("+%d", u))
	}
	b.WriteByte('\n')
	for _, row := range m.Rows {
		fmt.Fprintf(&b, "  %#06x  ", row.Start)
		if row.Gap {
			b.WriteString("(empty)\n")
			continue
		}
		for _, c := range row.Cells {
			b.WriteString(renderCell(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(c addrmap.Cell) string {
	w := c.Units*unitText - 2
	if c.IsGap() {
		return " " + strings.Repeat(".", w) + " "
	}
	label := " " + c.Register.Name
	if c.Span.Count > 1 {
		label += fmt.Sprintf(" %d/%d", c.Span.Index+1, c.Span.Count)
	}
	label += fmt.Sprintf(" [%d:%d]", c.High, c.Low)
	if c.Overlap {
		label += " !"
	}
	if len(label) > w {
		label = label[:w]
	}
	return fmt.Sprintf("[%-*s]", w, label)
}
