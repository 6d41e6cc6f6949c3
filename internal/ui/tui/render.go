package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/ui/layout"
)

const (
	dividerVertical   = '│'
	dividerHorizontal = '─'
	insertionMarker   = '┃'
	emptyPaneText     = "drop a tab here"
)

// paint draws every shown window.
func (h *Host) paint() *canvas {
	cv := newCanvas(h.cols, h.rows)
	for _, w := range h.Windows() {
		h.paintWindow(cv, w)
	}
	return cv
}

func (h *Host) paintWindow(cv *canvas, w *Window) {
	col, row, cols, rows := cells(w.bounds)
	if cols == 0 || rows == 0 {
		return
	}
	style := styleTitle
	if h.focused != nil && h.owners[h.focused] == w {
		style = styleTitleActive
	}
	cv.fill(col, row, cols, 1, ' ', style)
	cv.text(col+1, row, w.title, style, cols-2)

	cv.fill(col, row+1, cols, rows-1, ' ', styleContent)
	if w.layout == nil {
		return
	}
	paintDividers(cv, w.layout.Root())
	for _, cf := range w.containers {
		h.paintContainer(cv, cf)
	}
}

func paintDividers(cv *canvas, f *layout.Frame) {
	if f == nil {
		return
	}
	if split, ok := f.Node.(*entity.SplitContainer); ok {
		glyph := dividerVertical
		if split.Orientation() == entity.Vertical {
			glyph = dividerHorizontal
		}
		for _, d := range f.Dividers {
			col, row, cols, rows := cells(d)
			cv.fill(col, row, cols, rows, glyph, styleDivider)
		}
	}
	for _, child := range f.Children {
		paintDividers(cv, child)
	}
}

func (h *Host) paintContainer(cv *canvas, cf containerFrame) {
	c := cf.container
	col, row, cols, rows := cells(cf.bounds)
	if cols == 0 || rows == 0 {
		return
	}

	cv.fill(col, row, cols, 1, ' ', styleStrip)
	for _, l := range stripLabels(c) {
		if l.start >= cols {
			break
		}
		style := styleInactiveTab
		if l.selected {
			style = styleActiveTab
			if c == h.focused {
				style = styleFocusedTab
			}
		}
		cv.text(col+l.start, row, l.text, style, cols-l.start)
		if l.closeCol >= 0 && l.closeCol < cols {
			cv.set(col+l.closeCol, row, closeGlyph, styleClose)
		}
	}

	cv.fill(col, row+1, cols, rows-1, ' ', styleContent)
	if tab := c.Selected(); tab != nil {
		for i, line := range strings.Split(contentText(tab), "\n") {
			if i+2 >= rows {
				break
			}
			cv.text(col+1, row+1+i, line, styleContent, cols-2)
		}
	} else if rows > 2 {
		cv.text(col+1, row+1, emptyPaneText, styleEmpty, cols-2)
	}

	if _, ok := h.overlays[c]; ok {
		h.paintOverlay(cv, cf)
	}
}

func (h *Host) paintOverlay(cv *canvas, cf containerFrame) {
	ov := h.overlays[cf.container]
	col, row, cols, rows := cells(cf.bounds)
	size := cf.bounds.Size()

	if ov.Target.IsQuadrant() {
		area := usecase.QuadrantArea(ov.Target.Quadrant, size)
		area.X += cf.bounds.X
		area.Y += cf.bounds.Y
		ac, ar, acs, ars := cells(area)
		cv.restyle(ac, ar, acs, ars, styleDropHint)
	} else {
		mc := col + int(math.Round(ov.Target.MarkerX/CellWidth))
		mc = min(max(mc, col), col+cols-1)
		for r := row; r < row+rows; r++ {
			cv.set(mc, r, insertionMarker, styleDropMarker)
		}
	}

	if !ov.Indicator || h.dock == nil {
		return
	}
	settings := h.dock.Settings()
	zones := usecase.QuadrantZones(size, settings.ZoneSize, settings.ZoneOffset)
	for _, z := range []struct {
		area  entity.Rect
		glyph rune
	}{
		{zones.Left, '◀'},
		{zones.Right, '▶'},
		{zones.Top, '▲'},
		{zones.Bottom, '▼'},
	} {
		center := z.area.Center()
		zc, zr := pointCell(entity.Point{X: cf.bounds.X + center.X, Y: cf.bounds.Y + center.Y})
		cv.set(zc, zr, z.glyph, styleIndicator)
	}
}

// contentText is what a pane shows for its selected tab.
func contentText(tab *entity.Tab) string {
	switch v := tab.Content.(type) {
	case nil:
		return tab.Title
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
