package entity

// Root is the slot that owns the top node of a docking tree: the main
// window's content area or a floating window's scene.
type Root struct {
	ID string

	node     Node
	onChange func(Node)
}

// NewRoot creates a root slot holding n (which may be nil).
func NewRoot(id string, n Node) *Root {
	r := &Root{ID: id}
	if n != nil {
		r.Set(n)
	}
	return r
}

// Node returns the node currently held.
func (r *Root) Node() Node { return r.node }

// Set substitutes n into the slot. n is moved out of its current holder and
// the previous node is unlinked.
func (r *Root) Set(n Node) {
	if n == r.node {
		return
	}
	if n != nil {
		detach(n)
	}
	if r.node != nil {
		r.node.link(nil, nil)
	}
	r.node = n
	if n != nil {
		n.link(nil, r)
	}
	if r.onChange != nil {
		r.onChange(n)
	}
}

// OnChange registers a callback fired whenever the held node is replaced.
func (r *Root) OnChange(fn func(Node)) {
	r.onChange = fn
}

// TabContainers returns every tab container in the held tree.
func (r *Root) TabContainers() []*TabContainer {
	return TabContainers(r.node)
}
