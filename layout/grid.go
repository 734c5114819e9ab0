package layout

// Row is one display row of the bit grid, covering register bits
// [High:Low], MSB first.
type Row struct {
	High int
	Low  int
}

// Bits returns the number of bits the row covers.
func (r Row) Bits() int {
	return r.High - r.Low + 1
}

// BitsPerRow picks the row width for a register in a container. A
// non-positive containerWidth means unconstrained: the register stays on
// one row. Otherwise the widest candidate wins, stepping down from the
// register width by 8, that satisfies
//
//	bits*cellSize + (ceil(bits/8)-1)*gapSize <= containerWidth
//
// with a floor of 8 bits (or the register width when narrower).
func BitsPerRow(containerWidth, registerWidth, cellSize, gapSize int) int {
	if registerWidth <= 0 {
		return 0
	}
	if containerWidth <= 0 {
		return registerWidth
	}
	for bits := registerWidth; bits > 8; bits -= 8 {
		if rowSpan(bits, cellSize, gapSize) <= containerWidth {
			return bits
		}
	}
	return min(registerWidth, 8)
}

// rowSpan is the rendered width of a row: its cells plus the gaps between
// byte groups.
func rowSpan(bits, cellSize, gapSize int) int {
	groups := (bits + 7) / 8
	return bits*cellSize + max(0, groups-1)*gapSize
}

// Rows partitions a register's bits into grid rows, MSB first. The final
// row may be short.
func Rows(width, bitsPerRow int) []Row {
	if width <= 0 || bitsPerRow <= 0 {
		return nil
	}
	var rows []Row
	for high := width - 1; high >= 0; high -= bitsPerRow {
		rows = append(rows, Row{High: high, Low: max(high-bitsPerRow+1, 0)})
	}
	return rows
}

// firstGroup is the size of the row's leftmost byte group: the row width
// modulo 8, or a full 8 when byte-aligned.
func firstGroup(bitsInRow int) int {
	if g := bitsInRow % 8; g != 0 {
		return g
	}
	return 8
}

// Column maps a bit to its 1-based grid column within row. One gap column
// sits after the first group and after every further group of 8, so bits
// and gaps never share a column.
func Column(bit int, row Row) int {
	pos := row.High - bit // 0-based position from the left
	g := firstGroup(row.Bits())
	gaps := 0
	if pos >= g {
		gaps = 1 + (pos-g)/8
	}
	return pos + 1 + gaps
}

// Track is one column of a row's grid template.
type Track uint8

const (
	TrackBit Track = iota
	TrackGap
)

var trackNames = [...]string{
	TrackBit: "bit",
	TrackGap: "gap",
}

func (t Track) String() string {
	if int(t) < len(trackNames) {
		return trackNames[t]
	}
	return "unknown"
}

// Tracks returns the column template for a row of the given bit count,
// consistent with Column: the column of any bit is a TrackBit.
func Tracks(bitsInRow int) []Track {
	if bitsInRow <= 0 {
		return nil
	}
	g := firstGroup(bitsInRow)
	tracks := make([]Track, 0, bitsInRow+(bitsInRow-1)/8)
	for pos := 0; pos < bitsInRow; pos++ {
		if pos == g || (pos > g && (pos-g)%8 == 0) {
			tracks = append(tracks, TrackGap)
		}
		tracks = append(tracks, TrackBit)
	}
	return tracks
}
