package hint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/internal/ui/hint"
)

func TestRefreshAdjacent_GeneratesInsetRectangle(t *testing.T) {
	h := hint.New()

	require.True(t, h.RefreshAdjacent(0, 0, 200, 100))

	p := h.Path()
	assert.Equal(t, hint.StyleClass, p.StyleClass)
	assert.Equal(t, "M2,2 H198 V98 H2 V2", p.String())
}

func TestRefreshAdjacent_SkipsUnchangedGeometry(t *testing.T) {
	h := hint.New()

	require.True(t, h.RefreshAdjacent(100, 0, 100, 100))
	assert.False(t, h.RefreshAdjacent(100, 0, 100, 100))
	assert.True(t, h.RefreshAdjacent(0, 0, 100, 100))
}

func TestRefreshInsertion_SkipsUnchangedGeometry(t *testing.T) {
	h := hint.New()

	require.True(t, h.RefreshInsertion(50, 300, 200))
	assert.False(t, h.RefreshInsertion(50, 300, 200))
	assert.True(t, h.RefreshInsertion(120, 300, 200))
}

func TestRefresh_SwitchingKindAlwaysRegenerates(t *testing.T) {
	h := hint.New()

	require.True(t, h.RefreshInsertion(50, 300, 200))
	assert.True(t, h.RefreshAdjacent(0, 0, 300, 200))
	// Adjacent resets the marker position, so the same insertion redraws.
	assert.True(t, h.RefreshInsertion(50, 300, 200))
}

func TestRefreshInsertion_FirstCallWithZeroGeometryGenerates(t *testing.T) {
	h := hint.New()
	assert.True(t, h.RefreshInsertion(0, 0, 0))
	assert.NotEmpty(t, h.Path().Elements)
}

func TestInsertionPath_ArrowShapes(t *testing.T) {
	tests := []struct {
		name   string
		tabPos float64
		want   string
	}{
		{
			name:   "arrow pointing at boundary",
			tabPos: 120,
			want:   "M2,28 H298 V198 H2 V28 M120,33 L110,43 H130 L120,33",
		},
		{
			name:   "triangle near the left edge",
			tabPos: 0,
			want:   "M2,28 H298 V198 H2 V28 M7,33 L17,33 L7,43 V33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hint.New()
			h.RefreshInsertion(tt.tabPos, 300, 200)
			assert.Equal(t, tt.want, h.Path().String())
		})
	}
}

type boxOnly struct {
	hint.DefaultGenerator
	insertions int
}

func (b *boxOnly) InsertionPath(p *hint.Path, tabPos, width, height float64) {
	b.insertions++
	b.AdjacentPath(p, 0, 0, width, height)
}

func TestNewWithGenerator_CustomOutline(t *testing.T) {
	gen := &boxOnly{}
	h := hint.NewWithGenerator(gen)

	h.RefreshInsertion(40, 100, 50)
	h.RefreshInsertion(40, 100, 50)

	assert.Equal(t, 1, gen.insertions)
	assert.Equal(t, "M0,0 H98 V48 H0 V0", h.Path().String())
}

func TestPath_ReturnsCopy(t *testing.T) {
	h := hint.New()
	h.RefreshAdjacent(0, 0, 10, 10)

	p := h.Path()
	p.Elements[0].X = 999

	assert.NotEqual(t, 999.0, h.Path().Elements[0].X)
}

func TestReset_ForcesRegeneration(t *testing.T) {
	h := hint.New()
	h.RefreshAdjacent(0, 0, 10, 10)
	h.Reset()

	assert.Empty(t, h.Path().Elements)
	assert.True(t, h.RefreshAdjacent(0, 0, 10, 10))
}
