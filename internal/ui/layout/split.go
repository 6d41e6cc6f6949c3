package layout

import (
	"fmt"

	"github.com/bnema/tabdock/internal/domain/entity"
)

// MinFraction is the smallest share of a split a child keeps while a
// divider is dragged.
const MinFraction = 0.05

// Handle identifies one divider of an arranged split.
type Handle struct {
	Split *entity.SplitContainer
	Index int
	// Area is the split's frame, used to convert pointer positions.
	Area entity.Rect
}

// DividerAt returns the split divider under p. Dividers thinner than
// tolerance are hit within tolerance of their center line.
func (l *Layout) DividerAt(p entity.Point, tolerance float64) (Handle, bool) {
	// Innermost splits come last and win.
	for i := len(l.splits) - 1; i >= 0; i-- {
		f := l.splits[i]
		split := f.Node.(*entity.SplitContainer)
		for j, r := range f.Dividers {
			if grow(r, split.Orientation(), tolerance).Contains(p) {
				return Handle{Split: split, Index: j, Area: f.Bounds}, true
			}
		}
	}
	return Handle{}, false
}

func grow(r entity.Rect, o entity.Orientation, tolerance float64) entity.Rect {
	if o == entity.Vertical {
		if r.H < tolerance {
			pad := (tolerance - r.H) / 2
			r.Y -= pad
			r.H = tolerance
		}
		return r
	}
	if r.W < tolerance {
		pad := (tolerance - r.W) / 2
		r.X -= pad
		r.W = tolerance
	}
	return r
}

// MoveDivider drags h to the pointer position p. The divider stays
// MinFraction away from its neighbours.
func MoveDivider(h Handle, p entity.Point) error {
	if h.Split == nil {
		return fmt.Errorf("move divider: %w", ErrNodeNotFound)
	}
	positions := h.Split.Dividers()
	if h.Index < 0 || h.Index >= len(positions) {
		return fmt.Errorf("move divider %d of split %s: %w", h.Index, h.Split.ID, entity.ErrInvalidDividers)
	}

	var fraction float64
	if h.Split.Orientation() == entity.Vertical {
		if h.Area.H <= 0 {
			return nil
		}
		fraction = (p.Y - h.Area.Y) / h.Area.H
	} else {
		if h.Area.W <= 0 {
			return nil
		}
		fraction = (p.X - h.Area.X) / h.Area.W
	}

	low, high := MinFraction, 1-MinFraction
	if h.Index > 0 {
		low = positions[h.Index-1] + MinFraction
	}
	if h.Index < len(positions)-1 {
		high = positions[h.Index+1] - MinFraction
	}
	if low > high {
		return nil
	}
	positions[h.Index] = clamp(fraction, low, high)
	return h.Split.SetDividers(positions)
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
