package entity

import "time"

// LayoutSnapshot is a serializable copy of a docking tree.
type LayoutSnapshot struct {
	Name    string       `json:"name"`
	Version int          `json:"version"`
	SavedAt time.Time    `json:"saved_at"`
	Root    NodeSnapshot `json:"root"`
}

// LayoutSnapshotVersion is the current snapshot schema version.
const LayoutSnapshotVersion = 1

// NodeSnapshot captures one node. Kind is "tabs" or "split".
type NodeSnapshot struct {
	Kind string `json:"kind"`

	// Tab container fields
	Scope         string        `json:"scope,omitempty"`
	CloseIfEmpty  bool          `json:"close_if_empty,omitempty"`
	ClosingPolicy string        `json:"closing_policy,omitempty"`
	Selected      int           `json:"selected"`
	Tabs          []TabSnapshot `json:"tabs,omitempty"`

	// Split container fields
	Orientation string         `json:"orientation,omitempty"`
	Dividers    []float64      `json:"dividers,omitempty"`
	Children    []NodeSnapshot `json:"children,omitempty"`
}

// TabSnapshot captures one tab. Content is not serialized; it is resolved
// again by title on restore.
type TabSnapshot struct {
	Title      string `json:"title"`
	Detachable bool   `json:"detachable"`
}

// TabCount returns the total number of tabs in the snapshot.
func (s *LayoutSnapshot) TabCount() int {
	return s.Root.tabCount()
}

func (n NodeSnapshot) tabCount() int {
	count := len(n.Tabs)
	for _, child := range n.Children {
		count += child.tabCount()
	}
	return count
}
