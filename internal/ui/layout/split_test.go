package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/ui/layout"
)

func arrangeSplit(t *testing.T, o entity.Orientation, n int) (*entity.SplitContainer, *layout.Layout) {
	t.Helper()
	children := make([]entity.Node, 0, n)
	for i := 0; i < n; i++ {
		children = append(children, entity.NewTabContainer(entity.ContainerID(rune('a'+i))))
	}
	split := entity.NewSplitContainer("s", o, children...)
	l, err := layout.Arrange(split, entity.Rect{W: 400, H: 400}, layout.Options{})
	require.NoError(t, err)
	return split, l
}

func TestDividerAt_HitsWithinTolerance(t *testing.T) {
	split, l := arrangeSplit(t, entity.Horizontal, 2)

	h, ok := l.DividerAt(entity.Point{X: 201, Y: 50}, 4)
	require.True(t, ok)
	assert.Same(t, split, h.Split)
	assert.Equal(t, 0, h.Index)

	_, ok = l.DividerAt(entity.Point{X: 100, Y: 50}, 4)
	assert.False(t, ok)
}

func TestMoveDivider_FollowsPointer(t *testing.T) {
	split, l := arrangeSplit(t, entity.Vertical, 2)

	h, ok := l.DividerAt(entity.Point{X: 10, Y: 200}, 4)
	require.True(t, ok)
	require.NoError(t, layout.MoveDivider(h, entity.Point{X: 10, Y: 100}))

	assert.Equal(t, []float64{0.25}, split.Dividers())
}

func TestMoveDivider_ClampsToNeighbours(t *testing.T) {
	split, l := arrangeSplit(t, entity.Horizontal, 4)
	require.Equal(t, []float64{0.25, 0.5, 0.75}, split.Dividers())

	h, ok := l.DividerAt(entity.Point{X: 200, Y: 10}, 4)
	require.True(t, ok)
	require.Equal(t, 1, h.Index)

	require.NoError(t, layout.MoveDivider(h, entity.Point{X: 0, Y: 10}))
	assert.InDelta(t, 0.25+layout.MinFraction, split.Dividers()[1], 1e-9)

	require.NoError(t, layout.MoveDivider(h, entity.Point{X: 400, Y: 10}))
	assert.InDelta(t, 0.75-layout.MinFraction, split.Dividers()[1], 1e-9)
}

func TestMoveDivider_InvalidIndex(t *testing.T) {
	split, _ := arrangeSplit(t, entity.Horizontal, 2)

	err := layout.MoveDivider(layout.Handle{Split: split, Index: 3, Area: entity.Rect{W: 10, H: 10}}, entity.Point{})
	assert.ErrorIs(t, err, entity.ErrInvalidDividers)
}
