package chess

import (
	"math/bits"
	"strings"
)

const shapeSpan = 5

// Shape is a rectangular occupancy matrix of at most 5x5 cells, origin at its top-left corner.
// Cell (r, c) is bit r*shapeSpan+c, so two shapes are geometrically identical iff they are ==.
type Shape struct {
	Rows int8
	Cols int8
	Bits uint32
}

// NewShape builds a shape from rows where '#' marks an occupied cell.
func NewShape(rows ...string) (s Shape) {
	s.Rows = int8(len(rows))
	for r, row := range rows {
		s.Cols = max(s.Cols, int8(len(row)))
		for c, ch := range row {
			if ch == '#' {
				s = s.set(r, c)
			}
		}
	}
	return
}

func (s Shape) set(r, c int) Shape {
	s.Bits |= 1 << (r*shapeSpan + c)
	return s
}

func (s Shape) Occupied(r, c int) bool {
	if r < 0 || c < 0 || r >= int(s.Rows) || c >= int(s.Cols) {
		return false
	}
	return s.Bits>>(r*shapeSpan+c)&1 == 1
}

// Size is the number of occupied cells.
func (s Shape) Size() int {
	return bits.OnesCount32(s.Bits)
}

// Cells returns the offsets of the occupied cells in row-major order.
func (s Shape) Cells() (cells []Dot) {
	for r := range int(s.Rows) {
		for c := range int(s.Cols) {
			if s.Occupied(r, c) {
				cells = append(cells, NewDot(r, c))
			}
		}
	}
	return
}

// RotateClockwise turns the shape 90 degrees: old (r, c) lands on new (c, rows-1-r).
func (s Shape) RotateClockwise() (rotated Shape) {
	rotated.Rows, rotated.Cols = s.Cols, s.Rows
	for r := range int(s.Rows) {
		for c := range int(s.Cols) {
			if s.Occupied(r, c) {
				rotated = rotated.set(c, int(s.Rows)-1-r)
			}
		}
	}
	return
}

// MirrorHorizontal reverses every row.
func (s Shape) MirrorHorizontal() (mirrored Shape) {
	mirrored.Rows, mirrored.Cols = s.Rows, s.Cols
	for r := range int(s.Rows) {
		for c := range int(s.Cols) {
			if s.Occupied(r, c) {
				mirrored = mirrored.set(r, int(s.Cols)-1-c)
			}
		}
	}
	return
}

// Transform mirrors first (when asked) and then rotates clockwise rotation/90 times.
// Every caller resolves orientations through here, so generation, validation and replay agree.
func (s Shape) Transform(rotation Rotation, mirrored bool) Shape {
	if mirrored {
		s = s.MirrorHorizontal()
	}
	for range rotation.Quarter() {
		s = s.RotateClockwise()
	}
	return s
}

func (s Shape) String() string {
	var builder strings.Builder
	for r := range int(s.Rows) {
		if r > 0 {
			builder.WriteByte('\n')
		}
		for c := range int(s.Cols) {
			if s.Occupied(r, c) {
				builder.WriteByte('#')
			} else {
				builder.WriteByte('.')
			}
		}
	}
	return builder.String()
}
