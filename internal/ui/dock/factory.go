package dock

import (
	"errors"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
)

// ErrNilPaneFactory is returned when a nil factory is installed on a pane.
var ErrNilPaneFactory = errors.New("pane factory cannot be nil")

// PaneFactory creates the panes that receive tabs on split and detach.
type PaneFactory interface {
	Create(source *Pane) *Pane
}

// PaneFactoryFunc adapts a function to PaneFactory.
type PaneFactoryFunc func(source *Pane) *Pane

// Create implements PaneFactory.
func (f PaneFactoryFunc) Create(source *Pane) *Pane { return f(source) }

// DefaultPaneFactory creates a pane inheriting the source's scope, closing
// policy, factories and drop hint renderer. New panes close when empty.
// Init, when set, customizes each new pane.
type DefaultPaneFactory struct {
	Init func(p *Pane)
}

// Create implements PaneFactory.
func (f *DefaultPaneFactory) Create(source *Pane) *Pane {
	p := source.dock.NewPane(nil)
	c := p.container
	c.Scope = source.container.Scope
	c.ClosingPolicy = source.container.ClosingPolicy
	c.CloseIfEmpty = true

	p.factory = source.factory
	p.sceneFactory = source.sceneFactory
	p.ownerFactory = source.ownerFactory
	p.dropHint = source.dropHint

	if f != nil && f.Init != nil {
		f.Init(p)
	}
	return p
}

// Scene is the content placed in a new floating window.
type Scene struct {
	// Node is the window's tree; it must contain the new pane's container.
	Node entity.Node
	// Size of the window. Zero uses the dock's floating size.
	Size entity.Size
}

// SceneFactory builds the scene for a floating window holding p.
type SceneFactory func(p *Pane) Scene

// OwnerFactory chooses the owner of the floating window holding p.
type OwnerFactory func(p *Pane) port.Window

func defaultSceneFactory(p *Pane) Scene {
	return Scene{Node: p.container}
}

// defaultOwnerFactory returns the window of the pane the factory was
// created for, so every window detached from a tree shares one owner.
func defaultOwnerFactory(first *Pane) OwnerFactory {
	return func(*Pane) port.Window {
		return first.Window()
	}
}
