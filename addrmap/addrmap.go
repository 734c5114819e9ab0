package addrmap

import (
	"sort"

	"github.com/hexwire/regkit/register"
)

// DefaultUnitBits is the address unit size assumed when Options leaves
// UnitBits unset.
const DefaultUnitBits = 8

// DefaultUnitsPerBand is the band width assumed when Options leaves
// UnitsPerBand unset.
const DefaultUnitsPerBand = 4

// Options control band geometry and gap visibility.
type Options struct {
	// UnitBits is the number of bits per address unit. Zero or negative
	// selects DefaultUnitBits.
	UnitBits int

	// UnitsPerBand is the number of units shown per band row. Zero or
	// negative selects DefaultUnitsPerBand.
	UnitsPerBand int

	// ShowGaps emits rows for bands that contain no register. Bands with
	// at least one register always appear, gaps within them included.
	ShowGaps bool
}

func (o Options) normalized() Options {
	if o.UnitBits <= 0 {
		o.UnitBits = DefaultUnitBits
	}
	if o.UnitsPerBand <= 0 {
		o.UnitsPerBand = DefaultUnitsPerBand
	}
	return o
}

// SpanInfo places one cell within a register that crosses band boundaries.
// Index counts from zero in address order; Count is the total number of
// cells the register was cut into.
type SpanInfo struct {
	Index int
	Count int
}

// Segment is one field's bit range clipped to a cell. Partial marks
// segments whose field continues in another cell of the same register.
type Segment struct {
	Field   *register.FieldDef
	High    int
	Low     int
	Partial bool
}

// Cell is one element of a band row: either a slice of a register or a run
// of unowned units (Register nil).
type Cell struct {
	Register *register.RegisterDef
	Start    int64 // first address unit of the cell
	Units    int   // number of units covered
	High     int   // most significant register bit in the cell
	Low      int   // least significant register bit in the cell
	Span     SpanInfo
	Overlap  bool
	Fields   []Segment
}

// IsGap reports whether the cell covers unowned address units.
func (c Cell) IsGap() bool { return c.Register == nil }

// Row is one band of the map. Gap rows carry no cells and stand for a band
// with no registers; they appear only when Options.ShowGaps is set.
type Row struct {
	Band  int
	Start int64 // first address unit of the band
	Gap   bool
	Cells []Cell
}

// Map is a banded address-map layout.
type Map struct {
	Rows []Row

	// Units is one past the last occupied address unit, zero when no
	// register carries an offset.
	Units int64
}

type placed struct {
	reg   *register.RegisterDef
	start int64 // first unit, inclusive
	end   int64 // one past the last unit
}

// Build lays out every offset-carrying register in regs as a banded
// address map. Registers without an offset, with a non-positive width, or
// placed at a negative offset do not appear. The input is not modified;
// cells reference the RegisterDef values inside regs.
func Build(regs []register.RegisterDef, opts Options) Map {
	opts = opts.normalized()
	band := int64(opts.UnitsPerBand)

	var items []placed
	var last int64
	for i := range regs {
		r := &regs[i]
		if !r.HasOffset || r.Offset < 0 || r.Width <= 0 {
			continue
		}
		span := int64(register.UnitSpan(r.Width, opts.UnitBits))
		items = append(items, placed{reg: r, start: r.Offset, end: r.Offset + span})
		if r.Offset+span > last {
			last = r.Offset + span
		}
	}
	if len(items) == 0 {
		return Map{}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].start < items[j].start })

	collided := make(map[*register.RegisterDef]bool)
	for _, ov := range register.RegisterOverlaps(regs, opts.UnitBits) {
		collided[ov.A] = true
		collided[ov.B] = true
	}

	var rows []Row
	lastBand := int((last - 1) / band)
	for b := 0; b <= lastBand; b++ {
		bandStart := int64(b) * band
		bandEnd := bandStart + band - 1

		var cells []Cell
		cursor := bandStart
		for i := range items {
			it := &items[i]
			if it.start > bandEnd || it.end-1 < bandStart {
				continue
			}
			cs := max(it.start, bandStart)
			ce := min(it.end-1, bandEnd)
			if cs > cursor {
				cells = append(cells, Cell{Start: cursor, Units: int(cs - cursor)})
			}
			cells = append(cells, makeCell(it, cs, ce, band, opts.UnitBits, collided[it.reg]))
			if ce+1 > cursor {
				cursor = ce + 1
			}
		}
		if len(cells) == 0 {
			if opts.ShowGaps {
				rows = append(rows, Row{Band: b, Start: bandStart, Gap: true})
			}
			continue
		}
		if cursor <= bandEnd {
			cells = append(cells, Cell{Start: cursor, Units: int(bandEnd - cursor + 1)})
		}
		rows = append(rows, Row{Band: b, Start: bandStart, Cells: cells})
	}

	return Map{Rows: rows, Units: last}
}

// makeCell cuts the register slice [cs, ce] (absolute units) out of it.
// The unit at the register's offset carries the MSB end, so ascending
// units map to descending bit ranges.
func makeCell(it *placed, cs, ce, band int64, unitBits int, overlap bool) Cell {
	k0 := int(cs - it.start)
	k1 := int(ce - it.start)
	width := it.reg.Width
	high := width - 1 - k0*unitBits
	low := width - (k1+1)*unitBits
	if low < 0 {
		low = 0
	}

	firstBand := int(it.start / band)
	lastBand := int((it.end - 1) / band)

	return Cell{
		Register: it.reg,
		Start:    cs,
		Units:    int(ce - cs + 1),
		High:     high,
		Low:      low,
		Span:     SpanInfo{Index: int(cs/band) - firstBand, Count: lastBand - firstBand + 1},
		Overlap:  overlap,
		Fields:   segments(it.reg.Fields, high, low),
	}
}

// segments clips each well-formed field to the cell bit range [low, high]
// and orders the result by descending significance.
func segments(fields []register.FieldDef, high, low int) []Segment {
	var segs []Segment
	for i := range fields {
		f := &fields[i]
		if !f.RangeValid() || f.MSB < low || f.LSB > high {
			continue
		}
		h := min(f.MSB, high)
		l := max(f.LSB, low)
		segs = append(segs, Segment{
			Field:   f,
			High:    h,
			Low:     l,
			Partial: h != f.MSB || l != f.LSB,
		})
	}
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].High > segs[j].High })
	return segs
}
