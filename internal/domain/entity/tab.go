package entity

// TabID uniquely identifies a tab.
type TabID string

// Tab is a labeled unit holding one content node.
type Tab struct {
	ID      TabID
	Title   string
	Content any

	detachable bool
	container  *TabContainer // non-owning; set by the container

	onContentDetached func(*Tab)
	suspended         bool
}

// NewTab creates a detachable tab.
func NewTab(id TabID, title string, content any) *Tab {
	return &Tab{
		ID:         id,
		Title:      title,
		Content:    content,
		detachable: true,
	}
}

// Detachable reports whether the tab may be dragged out of its container.
func (t *Tab) Detachable() bool {
	return t.detachable
}

// SetDetachable toggles whether the tab may be dragged out.
func (t *Tab) SetDetachable(detachable bool) {
	t.detachable = detachable
}

// Container returns the container currently holding the tab, or nil.
func (t *Tab) Container() *TabContainer {
	return t.container
}

// SetOnContentDetached registers a listener fired when the tab leaves its
// container while listeners are not suspended. Applications use it to
// dispose content when a tab is closed.
func (t *Tab) SetOnContentDetached(fn func(*Tab)) {
	t.onContentDetached = fn
}

// SuspendListeners stops content-detached notifications until resumed.
func (t *Tab) SuspendListeners() {
	t.suspended = true
}

// ResumeListeners re-enables content-detached notifications.
func (t *Tab) ResumeListeners() {
	t.suspended = false
}

// ListenersSuspended reports whether notifications are suspended.
func (t *Tab) ListenersSuspended() bool {
	return t.suspended
}

func (t *Tab) notifyDetached() {
	if t.suspended || t.onContentDetached == nil {
		return
	}
	t.onContentDetached(t)
}
