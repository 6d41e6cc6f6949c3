package port

import "github.com/bnema/tabdock/internal/domain/entity"

// WindowSpec describes a top-level window to create.
type WindowSpec struct {
	ID     string
	Title  string
	Bounds entity.Rect
	// Owner is the window this one stays above; nil for none.
	Owner Window
	// Stylesheets are applied to the window's scene in order.
	Stylesheets []string
	// Root holds the scene's content tree.
	Root *entity.Root
}

// Window is a top-level toolkit window holding one docking tree.
type Window interface {
	ID() string
	Root() *entity.Root
	Owner() Window
	Stylesheets() []string

	Bounds() entity.Rect
	SetBounds(r entity.Rect)

	Show()
	Close()
	IsShowing() bool
}
