package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTabNotFound is returned when a tab is not part of the container.
var ErrTabNotFound = errors.New("tab not found")

// ContainerID uniquely identifies a tab container.
type ContainerID string

// ClosingPolicy controls which tabs show a close button.
type ClosingPolicy int

const (
	ClosingSelectedTab ClosingPolicy = iota // only the selected tab can be closed
	ClosingAllTabs                          // every tab can be closed
	ClosingUnavailable                      // tabs cannot be closed from the strip
)

func (p ClosingPolicy) String() string {
	switch p {
	case ClosingSelectedTab:
		return "selected-tab"
	case ClosingAllTabs:
		return "all-tabs"
	case ClosingUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("ClosingPolicy(%d)", int(p))
	}
}

// ParseClosingPolicy parses the config spelling of a closing policy.
func ParseClosingPolicy(s string) (ClosingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "selected-tab":
		return ClosingSelectedTab, nil
	case "all-tabs":
		return ClosingAllTabs, nil
	case "unavailable":
		return ClosingUnavailable, nil
	default:
		return ClosingSelectedTab, fmt.Errorf("unknown closing policy %q", s)
	}
}

// TabsChange describes one mutation of a container's tab sequence.
type TabsChange struct {
	Added   []*Tab
	Removed []*Tab
	Index   int // position of the first added or removed tab
}

// WasAdded reports whether tabs were added.
func (c TabsChange) WasAdded() bool { return len(c.Added) > 0 }

// WasRemoved reports whether tabs were removed.
func (c TabsChange) WasRemoved() bool { return len(c.Removed) > 0 }

// TabContainer is a tab strip: an ordered sequence of tabs with a single
// selection. It is the leaf node of the docking tree.
type TabContainer struct {
	ID            ContainerID
	Scope         string
	CloseIfEmpty  bool
	ClosingPolicy ClosingPolicy

	tabs     []*Tab
	selected int

	parent *SplitContainer // non-owning
	root   *Root           // non-owning; set only when top of a tree

	observers   map[int]func(TabsChange)
	nextObserve int
}

// NewTabContainer creates an empty container in the default scope.
func NewTabContainer(id ContainerID) *TabContainer {
	return &TabContainer{
		ID:        id,
		selected:  -1,
		observers: make(map[int]func(TabsChange)),
	}
}

// NodeID implements Node.
func (c *TabContainer) NodeID() string { return string(c.ID) }

// Kind implements Node.
func (c *TabContainer) Kind() NodeKind { return KindTabs }

// Parent implements Node.
func (c *TabContainer) Parent() *SplitContainer { return c.parent }

// Holder implements Node.
func (c *TabContainer) Holder() *Root { return c.root }

func (c *TabContainer) link(parent *SplitContainer, root *Root) {
	c.parent = parent
	c.root = root
}

// Tabs returns a copy of the tab sequence.
func (c *TabContainer) Tabs() []*Tab {
	out := make([]*Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}

// Len returns the number of tabs.
func (c *TabContainer) Len() int { return len(c.tabs) }

// IsEmpty reports whether the container holds no tabs.
func (c *TabContainer) IsEmpty() bool { return len(c.tabs) == 0 }

// TabAt returns the tab at index i, or nil.
func (c *TabContainer) TabAt(i int) *Tab {
	if i < 0 || i >= len(c.tabs) {
		return nil
	}
	return c.tabs[i]
}

// IndexOf returns the tab's index, or -1.
func (c *TabContainer) IndexOf(tab *Tab) int {
	for i, t := range c.tabs {
		if t == tab {
			return i
		}
	}
	return -1
}

// Append adds the tab at the end of the sequence.
func (c *TabContainer) Append(tab *Tab) error {
	if tab != nil && tab.container == c {
		return c.Insert(len(c.tabs)-1, tab)
	}
	return c.Insert(len(c.tabs), tab)
}

// Insert places the tab at index (0..Len). A tab already held by a container
// is moved out of it first, so for a tab already in c the index refers to
// the sequence after its removal. Inserting into an empty container selects
// the tab. A failed insert leaves both containers unchanged.
func (c *TabContainer) Insert(index int, tab *Tab) error {
	if tab == nil {
		return fmt.Errorf("insert tab: %w", ErrNilNode)
	}
	limit := len(c.tabs)
	if tab.container == c {
		limit--
	}
	if index < 0 || index > limit {
		return fmt.Errorf("insert tab at %d of %d: %w", index, limit, ErrIndexOutOfBounds)
	}
	if tab.container != nil {
		if _, err := tab.container.Remove(tab); err != nil {
			return err
		}
	}

	c.tabs = append(c.tabs, nil)
	copy(c.tabs[index+1:], c.tabs[index:])
	c.tabs[index] = tab
	tab.container = c

	switch {
	case c.selected < 0:
		c.selected = index
	case index <= c.selected:
		c.selected++
	}

	c.notify(TabsChange{Added: []*Tab{tab}, Index: index})
	return nil
}

// Remove takes the tab out of the sequence and returns its former index.
// When the selected tab is removed, selection moves to the tab now at that
// position (or the new last tab).
func (c *TabContainer) Remove(tab *Tab) (int, error) {
	index := c.IndexOf(tab)
	if index < 0 {
		return -1, ErrTabNotFound
	}
	c.removeAt(index)
	return index, nil
}

// RemoveAt removes the tab at index i.
func (c *TabContainer) RemoveAt(i int) (*Tab, error) {
	if i < 0 || i >= len(c.tabs) {
		return nil, fmt.Errorf("remove tab at %d of %d: %w", i, len(c.tabs), ErrIndexOutOfBounds)
	}
	tab := c.tabs[i]
	c.removeAt(i)
	return tab, nil
}

func (c *TabContainer) removeAt(index int) {
	tab := c.tabs[index]
	c.tabs = append(c.tabs[:index], c.tabs[index+1:]...)
	tab.container = nil

	switch {
	case len(c.tabs) == 0:
		c.selected = -1
	case index < c.selected:
		c.selected--
	case index == c.selected && c.selected >= len(c.tabs):
		c.selected = len(c.tabs) - 1
	}

	tab.notifyDetached()
	c.notify(TabsChange{Removed: []*Tab{tab}, Index: index})
}

// Selected returns the selected tab, or nil when empty.
func (c *TabContainer) Selected() *Tab {
	return c.TabAt(c.selected)
}

// SelectedIndex returns the selected index, or -1 when empty.
func (c *TabContainer) SelectedIndex() int { return c.selected }

// Select makes tab the selected tab.
func (c *TabContainer) Select(tab *Tab) error {
	index := c.IndexOf(tab)
	if index < 0 {
		return ErrTabNotFound
	}
	c.selected = index
	return nil
}

// OnTabsChanged registers an observer and returns a function removing it.
func (c *TabContainer) OnTabsChanged(fn func(TabsChange)) (unsubscribe func()) {
	if c.observers == nil {
		c.observers = make(map[int]func(TabsChange))
	}
	id := c.nextObserve
	c.nextObserve++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *TabContainer) notify(change TabsChange) {
	// Observers run in registration order.
	for id := 0; id < c.nextObserve; id++ {
		if fn, ok := c.observers[id]; ok {
			fn(change)
		}
	}
}
