package gplay

import (
	"chessboard/src/base"
	"image"
)

// Mapper translates between window pixels and screen cells.
type Mapper struct {
	Unit int
}

// Cell never clamps: pixels outside the board give cells outside 0..7.
func (m Mapper) Cell(px, py int) base.Cell {
	return base.Cell{Col: floorDiv(px, m.Unit), Row: floorDiv(py, m.Unit)}
}

// Origin is the top-left pixel of c.
func (m Mapper) Origin(c base.Cell) image.Point {
	return image.Pt(c.Col*m.Unit, c.Row*m.Unit)
}

// Rect is the pixel area that maps back to c.
func (m Mapper) Rect(c base.Cell) image.Rectangle {
	o := m.Origin(c)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(m.Unit, m.Unit))}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
