// Package tui is a terminal toolkit for the docking engine. It lays out
// windows and panes on a cell grid, turns mouse events into header
// gestures and paints drop hints with lipgloss.
package tui

import (
	"math"

	"github.com/bnema/tabdock/internal/domain/entity"
)

// One terminal cell in the engine's coordinate space.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// cellCenter returns the pointer position of the terminal cell at col, row.
func cellCenter(col, row int) entity.Point {
	return entity.Point{
		X: float64(col)*CellWidth + CellWidth/2,
		Y: float64(row)*CellHeight + CellHeight/2,
	}
}

// cellRect returns the area covered by cols x rows cells at col, row.
func cellRect(col, row, cols, rows int) entity.Rect {
	return entity.Rect{
		X: float64(col) * CellWidth,
		Y: float64(row) * CellHeight,
		W: float64(cols) * CellWidth,
		H: float64(rows) * CellHeight,
	}
}

// cells converts r to the cell span it covers, rounding each edge to the
// nearest cell boundary.
func cells(r entity.Rect) (col, row, cols, rows int) {
	col = int(math.Round(r.X / CellWidth))
	row = int(math.Round(r.Y / CellHeight))
	cols = int(math.Round((r.X+r.W)/CellWidth)) - col
	rows = int(math.Round((r.Y+r.H)/CellHeight)) - row
	return col, row, max(cols, 0), max(rows, 0)
}

// snap aligns r to the cell grid.
func snap(r entity.Rect) entity.Rect {
	return cellRect(cells(r))
}

func pointCell(p entity.Point) (col, row int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}
