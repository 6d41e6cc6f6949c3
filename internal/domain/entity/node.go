package entity

import "errors"

var (
	// ErrNodeNotFound is returned when a node is not a child of the container searched.
	ErrNodeNotFound = errors.New("node not found")
	// ErrNilNode is returned when a nil node is inserted into the tree.
	ErrNilNode = errors.New("node is nil")
	// ErrIndexOutOfBounds is returned when an index is out of range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// NodeKind tags the two concrete node types.
type NodeKind int

const (
	KindTabs  NodeKind = iota // *TabContainer
	KindSplit                 // *SplitContainer
)

func (k NodeKind) String() string {
	switch k {
	case KindTabs:
		return "tabs"
	case KindSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Node is a docking tree node. It is either a *TabContainer (leaf) or a
// *SplitContainer; the unexported methods keep the set closed.
//
// Ownership flows downward: a SplitContainer owns its children and a Root
// owns its node. Parent and holder links are back-references only.
type Node interface {
	NodeID() string
	Kind() NodeKind
	// Parent returns the enclosing split container, or nil at the top of a tree.
	Parent() *SplitContainer
	// Holder returns the Root slot when the node is the top of a tree.
	Holder() *Root

	link(parent *SplitContainer, root *Root)
}

// detach unlinks n from whatever currently holds it.
func detach(n Node) {
	if p := n.Parent(); p != nil {
		_, _ = p.Remove(n)
		return
	}
	if r := n.Holder(); r != nil && r.node == n {
		r.node = nil
		n.link(nil, nil)
	}
}

// Walk visits n and its descendants depth-first in child order. It stops
// descending into a subtree when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if split, ok := n.(*SplitContainer); ok {
		for _, child := range split.children {
			Walk(child, fn)
		}
	}
}

// TabContainers returns every tab container in the tree rooted at n.
func TabContainers(n Node) []*TabContainer {
	var out []*TabContainer
	Walk(n, func(node Node) bool {
		if tc, ok := node.(*TabContainer); ok {
			out = append(out, tc)
		}
		return true
	})
	return out
}

// SplitContainers returns every split container in the tree rooted at n.
func SplitContainers(n Node) []*SplitContainer {
	var out []*SplitContainer
	Walk(n, func(node Node) bool {
		if sc, ok := node.(*SplitContainer); ok {
			out = append(out, sc)
		}
		return true
	})
	return out
}

// TopRoot follows parent links up to the Root holding n's tree.
// Returns nil for a detached tree.
func TopRoot(n Node) *Root {
	var top Node = n
	for top.Parent() != nil {
		top = top.Parent()
	}
	return top.Holder()
}
