// Package addrmap lays registers out along their address space as fixed
// width bands of address units.
//
// Each band is UnitsPerBand units wide; a register occupies
// ceil(width/unitBits) units from its offset and is cut into one cell per
// band it touches. Cells alternate with gap cells for unowned units, so a
// band row always tiles its unit range exactly:
//
//	unitsPerBand=4, A@0 (2 units), B@3 (1 unit):
//
//	band 0:  [A    A] [gap] [B]
//
//	32-bit register C@2, unitBits=8:
//
//	band 0:  [gap gap] [C 1/2: bits 31..16]
//	band 1:  [C 2/2: bits 15..0] [gap gap]
//
// Ascending units carry descending bit significance: the unit at the
// register's offset holds the MSB end, so the map reads MSB to LSB like
// the bit grid. Per-cell field segments are clipped to the cell's bit
// range and flagged partial when they continue elsewhere.
//
// Bands holding no register at all appear as gap rows only when requested;
// otherwise they are omitted entirely. Registers whose unit ranges collide
// are annotated via the overlap report rather than being displaced.
package addrmap
