package register

import "sort"

// OverlapPair records two fields of one register sharing bits, with the
// shared range.
type OverlapPair struct {
	A, B      *FieldDef
	High, Low int
}

// FieldOverlaps reports every unordered pair of fields whose bit windows
// intersect, exactly once per pair, in definition order. Fields with
// malformed windows are skipped.
func FieldOverlaps(fields []FieldDef) []OverlapPair {
	var out []OverlapPair
	for i := range fields {
		a := &fields[i]
		if !a.RangeValid() {
			continue
		}
		for j := i + 1; j < len(fields); j++ {
			b := &fields[j]
			if !b.RangeValid() {
				continue
			}
			high := min(a.MSB, b.MSB)
			low := max(a.LSB, b.LSB)
			if high >= low {
				out = append(out, OverlapPair{A: a, B: b, High: high, Low: low})
			}
		}
	}
	return out
}

// UnitSpan returns how many address units a register of the given bit
// width occupies: ceil(width / unitBits). Degenerate inputs yield zero.
func UnitSpan(width, unitBits int) int {
	if width <= 0 || unitBits <= 0 {
		return 0
	}
	return (width + unitBits - 1) / unitBits
}

// RegisterOverlap records two offset-bearing registers whose address unit
// ranges intersect, with the shared unit range.
type RegisterOverlap struct {
	A, B                *RegisterDef
	FirstUnit, LastUnit int64
}

// RegisterOverlaps reports every unordered pair of registers whose unit
// ranges [offset, offset+span) intersect, containment included. Pairs come
// out ordered by address. Registers without an offset never overlap.
func RegisterOverlaps(regs []RegisterDef, unitBits int) []RegisterOverlap {
	type placed struct {
		reg        *RegisterDef
		start, end int64 // half-open unit range
	}
	var ps []placed
	for i := range regs {
		r := &regs[i]
		if !r.HasOffset {
			continue
		}
		span := UnitSpan(r.Width, unitBits)
		if span == 0 {
			continue
		}
		ps = append(ps, placed{reg: r, start: r.Offset, end: r.Offset + int64(span)})
	}
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].start < ps[j].start })

	var out []RegisterOverlap
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if ps[j].start >= ps[i].end {
				break // starts are sorted, nothing later can reach back
			}
			out = append(out, RegisterOverlap{
				A:         ps[i].reg,
				B:         ps[j].reg,
				FirstUnit: ps[j].start,
				LastUnit:  min(ps[i].end, ps[j].end) - 1,
			})
		}
	}
	return out
}
