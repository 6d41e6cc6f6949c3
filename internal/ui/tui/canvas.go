package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabdock/internal/ui/theme"
)

type styleID uint8

const (
	styleBase styleID = iota
	styleTitle
	styleTitleActive
	styleActiveTab
	styleInactiveTab
	styleFocusedTab
	styleClose
	styleStrip
	styleDivider
	styleContent
	styleEmpty
	styleDropHint
	styleDropMarker
	styleIndicator
	styleCount
)

type styleTable [styleCount]lipgloss.Style

func newStyleTable(s *theme.Styles) styleTable {
	var t styleTable
	t[styleBase] = s.Base
	t[styleTitle] = s.Title
	t[styleTitleActive] = s.TitleActive
	t[styleActiveTab] = s.ActiveTab
	t[styleInactiveTab] = s.InactiveTab
	t[styleFocusedTab] = s.ActiveTab.Foreground(s.Focused.GetForeground())
	t[styleClose] = s.CloseButton
	t[styleStrip] = s.TabStrip
	t[styleDivider] = s.Divider
	t[styleContent] = s.Content
	t[styleEmpty] = s.Help
	t[styleDropHint] = s.DropHint
	t[styleDropMarker] = s.DropMarker
	t[styleIndicator] = s.Indicator
	return t
}

type cell struct {
	r     rune
	style styleID
}

// canvas is a grid of styled cells.
type canvas struct {
	cols, rows int
	cells      []cell
}

func newCanvas(cols, rows int) *canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	cv := &canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	cv.fill(0, 0, cols, rows, ' ', styleBase)
	return cv
}

func (cv *canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < cv.cols && row < cv.rows
}

func (cv *canvas) at(col, row int) cell {
	if !cv.inside(col, row) {
		return cell{}
	}
	return cv.cells[row*cv.cols+col]
}

func (cv *canvas) set(col, row int, r rune, s styleID) {
	if cv.inside(col, row) {
		cv.cells[row*cv.cols+col] = cell{r: r, style: s}
	}
}

func (cv *canvas) fill(col, row, cols, rows int, r rune, s styleID) {
	for y := row; y < row+rows; y++ {
		for x := col; x < col+cols; x++ {
			cv.set(x, y, r, s)
		}
	}
}

// restyle changes the style of an area and keeps its runes.
func (cv *canvas) restyle(col, row, cols, rows int, s styleID) {
	for y := row; y < row+rows; y++ {
		for x := col; x < col+cols; x++ {
			if cv.inside(x, y) {
				cv.cells[y*cv.cols+x].style = s
			}
		}
	}
}

// text writes s from col, at most limit cells.
func (cv *canvas) text(col, row int, s string, style styleID, limit int) {
	n := 0
	for _, r := range s {
		if n >= limit {
			return
		}
		cv.set(col+n, row, r, style)
		n++
	}
}

// line returns the runes of a row without styling.
func (cv *canvas) line(row int) string {
	var b strings.Builder
	for col := 0; col < cv.cols; col++ {
		b.WriteRune(cv.at(col, row).r)
	}
	return b.String()
}

// render paints the grid, one lipgloss run per stretch of equal style.
func (cv *canvas) render(t *styleTable) string {
	var out strings.Builder
	var run strings.Builder
	for row := 0; row < cv.rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		current := cv.at(0, row).style
		for col := 0; col < cv.cols; col++ {
			c := cv.at(col, row)
			if c.style != current {
				out.WriteString(t[current].Render(run.String()))
				run.Reset()
				current = c.style
			}
			run.WriteRune(c.r)
		}
		out.WriteString(t[current].Render(run.String()))
		run.Reset()
	}
	return out.String()
}
