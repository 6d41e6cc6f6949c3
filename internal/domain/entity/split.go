package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidDividers is returned when divider positions are not strictly
// increasing fractions in (0, 1), one per boundary.
var ErrInvalidDividers = errors.New("invalid divider positions")

// ErrCycle is returned when a node would become its own descendant.
var ErrCycle = errors.New("node would contain itself")

// SplitID uniquely identifies a split container.
type SplitID string

// Orientation is the axis along which a split container lays out children.
type Orientation int

const (
	Horizontal Orientation = iota // children left to right
	Vertical                      // children top to bottom
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation parses "horizontal" or "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// SplitContainer lays out its children side by side along its orientation,
// separated by dividers. dividers[i] is the fractional position of the
// boundary between children i and i+1.
type SplitContainer struct {
	ID SplitID

	orientation Orientation
	children    []Node
	dividers    []float64

	parent *SplitContainer // non-owning
	root   *Root           // non-owning; set only when top of a tree
}

// NewSplitContainer creates a split container holding children in order,
// with evenly distributed dividers. Children are moved out of their current
// holders.
func NewSplitContainer(id SplitID, orientation Orientation, children ...Node) *SplitContainer {
	s := &SplitContainer{ID: id, orientation: orientation}
	for _, child := range children {
		if child == nil {
			continue
		}
		detach(child)
		child.link(s, nil)
		s.children = append(s.children, child)
	}
	s.DistributeEvenly()
	return s
}

// NodeID implements Node.
func (s *SplitContainer) NodeID() string { return string(s.ID) }

// Kind implements Node.
func (s *SplitContainer) Kind() NodeKind { return KindSplit }

// Parent implements Node.
func (s *SplitContainer) Parent() *SplitContainer { return s.parent }

// Holder implements Node.
func (s *SplitContainer) Holder() *Root { return s.root }

func (s *SplitContainer) link(parent *SplitContainer, root *Root) {
	s.parent = parent
	s.root = root
}

// Orientation returns the layout axis.
func (s *SplitContainer) Orientation() Orientation { return s.orientation }

// SetOrientation changes the layout axis. Dividers are kept.
func (s *SplitContainer) SetOrientation(o Orientation) { s.orientation = o }

// Children returns a copy of the child sequence.
func (s *SplitContainer) Children() []Node {
	out := make([]Node, len(s.children))
	copy(out, s.children)
	return out
}

// Len returns the number of children.
func (s *SplitContainer) Len() int { return len(s.children) }

// ChildAt returns the child at index i, or nil.
func (s *SplitContainer) ChildAt(i int) Node {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	return s.children[i]
}

// IndexOf returns the child's index, or -1.
func (s *SplitContainer) IndexOf(n Node) int {
	for i, child := range s.children {
		if child == n {
			return i
		}
	}
	return -1
}

// Insert places n at index (0..Len), moving it out of its current holder.
// For a child of s the index refers to the children after its removal. A
// failed insert leaves the tree unchanged.
// The slot it lands in is carved out of its neighbour's share: a new divider
// is placed halfway into the neighbouring region.
func (s *SplitContainer) Insert(index int, n Node) error {
	if n == nil {
		return fmt.Errorf("insert into split %s: %w", s.ID, ErrNilNode)
	}
	if s.hasAncestor(n) {
		return fmt.Errorf("insert %s into its own subtree %s: %w", n.NodeID(), s.ID, ErrCycle)
	}
	limit := len(s.children)
	if n.Parent() == s {
		limit--
	}
	if index < 0 || index > limit {
		return fmt.Errorf("insert into split %s at %d of %d: %w", s.ID, index, limit, ErrIndexOutOfBounds)
	}
	detach(n)

	s.children = append(s.children, nil)
	copy(s.children[index+1:], s.children[index:])
	s.children[index] = n
	n.link(s, nil)

	s.insertDivider(index)
	return nil
}

func (s *SplitContainer) insertDivider(index int) {
	n := len(s.children)
	if n < 2 {
		s.dividers = nil
		return
	}
	if len(s.dividers) != n-2 {
		s.DistributeEvenly()
		return
	}

	// bounds[i] .. bounds[i+1] is the region of child i before insertion.
	bounds := make([]float64, 0, n)
	bounds = append(bounds, 0)
	bounds = append(bounds, s.dividers...)
	bounds = append(bounds, 1)

	// The new child takes half of the region of the child it displaced
	// (index), or of the previous last child when appended.
	region := index
	if region > n-2 {
		region = n - 2
	}
	mid := (bounds[region] + bounds[region+1]) / 2

	dividers := make([]float64, 0, n-1)
	dividers = append(dividers, s.dividers[:region]...)
	dividers = append(dividers, mid)
	dividers = append(dividers, s.dividers[region:]...)
	s.dividers = dividers
}

// Remove takes n out of the children and returns its former index. The
// removed child's region is absorbed by its neighbour.
func (s *SplitContainer) Remove(n Node) (int, error) {
	index := s.IndexOf(n)
	if index < 0 {
		return -1, fmt.Errorf("remove from split %s: %w", s.ID, ErrNodeNotFound)
	}
	s.children = append(s.children[:index], s.children[index+1:]...)
	n.link(nil, nil)

	switch {
	case len(s.dividers) == 0:
	case index < len(s.dividers):
		s.dividers = append(s.dividers[:index], s.dividers[index+1:]...)
	default:
		s.dividers = s.dividers[:len(s.dividers)-1]
	}
	return index, nil
}

// Replace substitutes replacement for old at the same index, keeping dividers.
func (s *SplitContainer) Replace(old, replacement Node) error {
	index := s.IndexOf(old)
	if index < 0 {
		return fmt.Errorf("replace in split %s: %w", s.ID, ErrNodeNotFound)
	}
	if replacement == nil {
		return fmt.Errorf("replace in split %s: %w", s.ID, ErrNilNode)
	}
	if old == replacement {
		return nil
	}
	if s.hasAncestor(replacement) {
		return fmt.Errorf("replace %s with ancestor %s: %w", old.NodeID(), replacement.NodeID(), ErrCycle)
	}
	detach(replacement)
	// detach may have shifted old if replacement was an earlier sibling.
	index = s.IndexOf(old)
	old.link(nil, nil)
	s.children[index] = replacement
	replacement.link(s, nil)
	return nil
}

// hasAncestor reports whether n is s or one of s's ancestors.
func (s *SplitContainer) hasAncestor(n Node) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if Node(cur) == n {
			return true
		}
	}
	return false
}

// Dividers returns a copy of the divider positions.
func (s *SplitContainer) Dividers() []float64 {
	out := make([]float64, len(s.dividers))
	copy(out, s.dividers)
	return out
}

// SetDividers replaces the divider positions. Positions must be strictly
// increasing, inside (0, 1), and number Len()-1.
func (s *SplitContainer) SetDividers(positions []float64) error {
	if want := len(s.children) - 1; want >= 0 && len(positions) != want {
		return fmt.Errorf("split %s wants %d dividers, got %d: %w", s.ID, want, len(positions), ErrInvalidDividers)
	}
	prev := 0.0
	for _, p := range positions {
		if p <= prev || p >= 1 {
			return fmt.Errorf("split %s divider %v: %w", s.ID, p, ErrInvalidDividers)
		}
		prev = p
	}
	s.dividers = append(s.dividers[:0:0], positions...)
	return nil
}

// DistributeEvenly sets dividers to i/n for i = 1..n-1.
func (s *SplitContainer) DistributeEvenly() {
	n := len(s.children)
	if n < 2 {
		s.dividers = nil
		return
	}
	s.dividers = make([]float64, n-1)
	for i := range s.dividers {
		s.dividers[i] = float64(i+1) / float64(n)
	}
}
