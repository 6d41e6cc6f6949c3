package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/ui/theme"
)

func TestCanvas_TextClipsToLimitAndBounds(t *testing.T) {
	cv := newCanvas(6, 2)

	cv.text(1, 0, "abcdef", styleContent, 3)
	cv.text(4, 1, "xyz", styleContent, 10)

	assert.Equal(t, " abc  ", cv.line(0))
	assert.Equal(t, "    xy", cv.line(1))
	assert.Equal(t, styleContent, cv.at(1, 0).style)
	assert.Equal(t, styleBase, cv.at(0, 0).style)
}

func TestCanvas_RestyleKeepsRunes(t *testing.T) {
	cv := newCanvas(4, 1)
	cv.text(0, 0, "ab", styleContent, 4)

	cv.restyle(0, 0, 2, 1, styleDropHint)

	assert.Equal(t, 'a', cv.at(0, 0).r)
	assert.Equal(t, styleDropHint, cv.at(1, 0).style)
	assert.Equal(t, styleBase, cv.at(2, 0).style)
}

func TestCanvas_RenderKeepsRows(t *testing.T) {
	cv := newCanvas(3, 2)
	cv.text(0, 0, "ab", styleActiveTab, 3)
	table := newStyleTable(theme.NewStyles(theme.DefaultDarkPalette()))

	out := cv.render(&table)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
}

func TestCells_RoundsToGrid(t *testing.T) {
	col, row, cols, rows := cells(entity.Rect{X: 316, Y: 16, W: 8, H: 368})

	assert.Equal(t, 40, col)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 23, rows)
	assert.Equal(t, entity.Rect{X: 320, Y: 16, W: 8, H: 368}, snap(entity.Rect{X: 316, Y: 16, W: 8, H: 368}))
}

func TestStripLabels_ClosePolicy(t *testing.T) {
	c := entity.NewTabContainer("c")
	for _, title := range []string{"a", "b"} {
		_ = c.Append(entity.NewTab(entity.TabID(title), title, nil))
	}

	labels := stripLabels(c)
	assert.Equal(t, " a × ", labels[0].text)
	assert.Equal(t, 3, labels[0].closeCol)
	assert.Equal(t, -1, labels[1].closeCol)

	c.ClosingPolicy = entity.ClosingAllTabs
	labels = stripLabels(c)
	assert.Equal(t, 5, labels[0].end)
	assert.Equal(t, 8, labels[1].closeCol)

	c.ClosingPolicy = entity.ClosingUnavailable
	for _, l := range stripLabels(c) {
		assert.Equal(t, -1, l.closeCol)
	}
}
