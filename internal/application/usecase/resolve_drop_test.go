package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabdock/internal/domain/entity"
)

func TestInsertionIndex(t *testing.T) {
	edges := []float64{0, 50, 120, 200}

	tests := []struct {
		name       string
		x          float64
		wantIndex  int
		wantMarker float64
	}{
		{name: "before first tab edge", x: 10, wantIndex: 0, wantMarker: 0},
		{name: "between first and second edge", x: 80, wantIndex: 1, wantMarker: 50},
		{name: "exactly on an edge", x: 120, wantIndex: 2, wantMarker: 120},
		{name: "inside last tab", x: 199, wantIndex: 2, wantMarker: 120},
		{name: "past every edge", x: 350, wantIndex: 3, wantMarker: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, marker := InsertionIndex(edges, tt.x, 3)
			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantMarker, marker)
		})
	}
}

func TestInsertionIndex_EmptyEdges(t *testing.T) {
	index, marker := InsertionIndex(nil, 42, 0)
	assert.Equal(t, 0, index)
	assert.Equal(t, 0.0, marker)

	index, marker = InsertionIndex([]float64{0}, 42, 0)
	assert.Equal(t, 0, index)
	assert.Equal(t, 0.0, marker)
}

func TestQuadrantZones_CrossAroundCenter(t *testing.T) {
	zones := QuadrantZones(entity.Size{Width: 400, Height: 300}, 30, 40)

	assert.Equal(t, entity.Rect{X: 145, Y: 135, W: 30, H: 30}, zones.Left)
	assert.Equal(t, entity.Rect{X: 225, Y: 135, W: 30, H: 30}, zones.Right)
	assert.Equal(t, entity.Rect{X: 185, Y: 95, W: 30, H: 30}, zones.Top)
	assert.Equal(t, entity.Rect{X: 185, Y: 175, W: 30, H: 30}, zones.Bottom)
}

func TestQuadrantZones_DefaultsForNonPositiveValues(t *testing.T) {
	size := entity.Size{Width: 200, Height: 200}
	assert.Equal(t, QuadrantZones(size, DefaultZoneSize, DefaultZoneOffset), QuadrantZones(size, 0, -1))
}

func TestResolveDropTarget(t *testing.T) {
	size := entity.Size{Width: 400, Height: 300}
	edges := []float64{0, 50, 120, 200}

	tests := []struct {
		name     string
		pointer  entity.Point
		tabCount int
		want     entity.DropTarget
	}{
		{name: "left zone", pointer: entity.Point{X: 160, Y: 150}, tabCount: 3, want: entity.DropTarget{Quadrant: entity.CenterLeft}},
		{name: "right zone", pointer: entity.Point{X: 240, Y: 150}, tabCount: 3, want: entity.DropTarget{Quadrant: entity.CenterRight}},
		{name: "top zone", pointer: entity.Point{X: 200, Y: 110}, tabCount: 3, want: entity.DropTarget{Quadrant: entity.TopCenter}},
		{name: "bottom zone", pointer: entity.Point{X: 200, Y: 190}, tabCount: 3, want: entity.DropTarget{Quadrant: entity.BottomCenter}},
		{name: "outside zones uses edges", pointer: entity.Point{X: 80, Y: 10}, tabCount: 3, want: entity.DropTarget{Index: 1, MarkerX: 50}},
		{name: "no zones on an empty container", pointer: entity.Point{X: 160, Y: 150}, tabCount: 0, want: entity.DropTarget{Index: 0, MarkerX: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := edges
			if tt.tabCount == 0 {
				e = []float64{0}
			}
			got := ResolveDropTarget(ResolveInput{
				Pointer:    tt.pointer,
				Size:       size,
				Edges:      e,
				TabCount:   tt.tabCount,
				ZoneSize:   30,
				ZoneOffset: 40,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuadrantArea(t *testing.T) {
	size := entity.Size{Width: 300, Height: 201}

	assert.Equal(t, entity.Rect{W: 150, H: 201}, QuadrantArea(entity.CenterLeft, size))
	assert.Equal(t, entity.Rect{X: 150, W: 150, H: 201}, QuadrantArea(entity.CenterRight, size))
	assert.Equal(t, entity.Rect{W: 300, H: 100.5}, QuadrantArea(entity.TopCenter, size))
	assert.Equal(t, entity.Rect{Y: 100.5, W: 300, H: 100.5}, QuadrantArea(entity.BottomCenter, size))
	assert.Equal(t, entity.Rect{}, QuadrantArea(entity.QuadrantNone, size))
}
