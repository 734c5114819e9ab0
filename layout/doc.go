// Package layout computes the bit-grid geometry for rendering a register:
// how many bits fit per row, which grid column each bit lands on, and the
// nibble, field, and unassigned spans of every row.
//
// The grid shows a register MSB first, split into rows when the container
// cannot fit the full width. Within a row, cells group into bytes with a
// spacer column between groups. The first group takes the row's width
// modulo 8 (a full 8 when byte-aligned) so that later groups sit on byte
// boundaries of the register:
//
//	20-bit register, 20 bits per row (g = gap track):
//
//	bit   19 18 17 16 | g | 15 14 13 12 11 10  9  8 | g |  7 ... 0
//	col    1  2  3  4 | 5 |  6  7  8  9 10 11 12 13 |14 | 15 ... 22
//
// Column numbering is 1-based. Column maps bits to cell columns and
// Tracks produces the matching template; a bit never lands on a gap
// track.
//
// # Row fitting
//
// BitsPerRow steps down from the register width in units of 8 until a row
// fits the container:
//
//	bits*cellSize + (ceil(bits/8)-1)*gapSize <= containerWidth
//
// with a floor of 8 bits per row (or the register width when narrower).
// A non-positive container never splits: the whole register is one row.
//
// # Row spans
//
// NibblesForRow, FieldsForRow and UnassignedForRow cut a register's hex
// nibbles, its fields, and its unclaimed bits to one row, with grid
// columns attached and a Partial flag when a span continues on another
// row.
package layout
