package dock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/assets"
	"github.com/bnema/tabdock/internal/application/port"
	portmocks "github.com/bnema/tabdock/internal/application/port/mocks"
	"github.com/bnema/tabdock/internal/domain/entity"
)

func TestNew_FillsDefaults(t *testing.T) {
	d := New(testContext(), Config{Toolkit: newFakeToolkit()})
	defer d.Close()

	s := d.Settings()
	assert.Equal(t, 400.0, s.FloatingWidth)
	assert.Equal(t, 400.0, s.FloatingHeight)
	assert.Equal(t, DefaultSettings().HeaderRetryDelay, s.HeaderRetryDelay)
	assert.False(t, d.Dragging())
	assert.Equal(t, StateIdle, d.Session().State())
}

func TestNewPane_ReusesRegisteredContainer(t *testing.T) {
	d, _ := newTestDock(t)

	c := entity.NewTabContainer("c")
	p := d.NewPane(c)
	assert.Same(t, p, d.NewPane(c))
	assert.Same(t, p, d.Pane(c))
	assert.Len(t, d.Panes(), 1)
}

func TestNewPane_NilCreatesContainerInDefaultScope(t *testing.T) {
	tk := newFakeToolkit()
	settings := DefaultSettings()
	settings.DefaultScope = "editors"
	settings.ClosingPolicy = entity.ClosingAllTabs
	d := New(testContext(), Config{Toolkit: tk, Settings: settings})
	defer d.Close()

	p := d.NewPane(nil)
	require.NotNil(t, p.Container())
	assert.Equal(t, "editors", p.Scope())
	assert.Equal(t, entity.ClosingAllTabs, p.ClosingPolicy())
	assert.NotEmpty(t, p.Container().ID)
}

func TestSetPaneFactory_RejectsNil(t *testing.T) {
	d, _ := newTestDock(t)
	p := d.NewPane(nil)
	before := p.PaneFactory()

	err := p.SetPaneFactory(nil)

	assert.ErrorIs(t, err, ErrNilPaneFactory)
	assert.Same(t, before, p.PaneFactory())
}

func TestWindowShown_AttachesHeaderGestures(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B")

	require.Len(t, tk.nodes[p.Container()], 2)
	h := tk.header(t, p.Container(), 1)
	assert.NotNil(t, h.onPressed)
	assert.NotNil(t, h.onDragDetected)
	assert.NotNil(t, h.onDragDone)
	assert.NotNil(t, h.onClose)
	assert.Equal(t, []float64{0, 50, 100}, p.TabEdges())
}

func TestAttachGestures_RetriesOnceWhenHeadersMissing(t *testing.T) {
	d, tk := newTestDock(t)
	c := entity.NewTabContainer("main")
	p := d.NewPane(c)
	w := newFakeWindow(entity.NewRoot("root", c))
	d.RegisterWindow(w)
	p.AddTab("A", nil)
	tk.run()

	tk.unrealized[c] = true
	w.Show()
	d.WindowShown(w)

	require.Len(t, tk.after, 1)
	assert.Equal(t, d.Settings().HeaderRetryDelay, tk.after[0].delay)

	tk.after[0].fn()

	assert.Len(t, tk.after, 1, "second failure must not schedule another retry")
	assert.Empty(t, tk.nodes[c])
}

func TestAttachGestures_RetrySucceeds(t *testing.T) {
	d, tk := newTestDock(t)
	c := entity.NewTabContainer("main")
	p := d.NewPane(c)
	w := newFakeWindow(entity.NewRoot("root", c))
	d.RegisterWindow(w)
	p.AddTab("A", nil)
	tk.run()

	tk.unrealized[c] = true
	w.Show()
	d.WindowShown(w)
	require.Len(t, tk.after, 1)

	delete(tk.unrealized, c)
	tk.after[0].fn()

	require.Len(t, tk.nodes[c], 1)
	assert.NotNil(t, tk.header(t, c, 0).onDragDetected)
}

func TestAddGesture_WiresEveryHandler(t *testing.T) {
	d, _ := newTestDock(t)
	p := d.NewPane(nil)
	tab := p.AddTab("A", nil)
	require.NotNil(t, tab)

	var pressed func()
	node := portmocks.NewMockHeaderNode(t)
	node.EXPECT().SetOnCloseReleased(mock.Anything).Return()
	node.EXPECT().SetOnPressed(mock.Anything).Run(func(fn func()) { pressed = fn }).Return()
	node.EXPECT().SetOnReleased(mock.Anything).Return()
	node.EXPECT().SetOnDragDetected(mock.Anything).Return()
	node.EXPECT().SetOnDragDone(mock.Anything).Return()
	node.EXPECT().Tab().Return(tab)

	p.addGesture(node)
	require.NotNil(t, pressed)
	pressed()

	assert.Equal(t, StateArmed, d.Session().State())
	assert.Same(t, tab, d.Session().Tab())
}

func TestCloseButton_RemovesSelectedTab(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B", "C")
	require.NoError(t, p.Container().Select(p.Container().TabAt(1)))

	tk.header(t, p.Container(), 0).onClose()

	assert.Equal(t, []string{"A", "C"}, titles(p.Container()))
}

func TestCloseButton_UnavailablePolicyKeepsTabs(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B")
	p.SetClosingPolicy(entity.ClosingUnavailable)

	tk.header(t, p.Container(), 0).onClose()

	assert.Equal(t, []string{"A", "B"}, titles(p.Container()))
}

func TestCloseButton_ContentDetachedListenerFires(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A")
	var disposed []string
	p.Container().TabAt(0).SetOnContentDetached(func(tab *entity.Tab) {
		disposed = append(disposed, tab.Title)
	})

	tk.header(t, p.Container(), 0).onClose()

	assert.Equal(t, []string{"A"}, disposed)
}

func TestPersistentPane_PassesRoleToSibling(t *testing.T) {
	d, tk := newTestDock(t)
	c1 := entity.NewTabContainer("c1")
	c2 := entity.NewTabContainer("c2")
	c2.CloseIfEmpty = true
	p1, p2 := d.NewPane(c1), d.NewPane(c2)
	root := entity.NewRoot("root", entity.NewSplitContainer("s", entity.Horizontal, c1, c2))
	w := newFakeWindow(root)
	d.RegisterWindow(w)
	p1.AddTab("A", nil)
	p2.AddTab("B", nil)
	w.Show()
	d.WindowShown(w)
	tk.run()

	var got []*Pane
	p1.SetOnClosedPassSibling(func(sibling *Pane) { got = append(got, sibling) })

	tk.header(t, c1, 0).onClose()

	require.Len(t, got, 1)
	assert.Same(t, p2, got[0])
	assert.False(t, c2.CloseIfEmpty)
	assert.Same(t, c2, root.Node())
	assert.Nil(t, d.Pane(c1))
	assert.False(t, w.closed, "main window stays open")
}

func TestPersistentPane_WithoutSiblingStays(t *testing.T) {
	d, tk := newTestDock(t)
	c1 := entity.NewTabContainer("c1")
	c2 := entity.NewTabContainer("c2")
	c2.Scope = "other"
	p1 := d.NewPane(c1)
	d.NewPane(c2)
	split := entity.NewSplitContainer("s", entity.Horizontal, c1, c2)
	w := newFakeWindow(entity.NewRoot("root", split))
	d.RegisterWindow(w)
	p1.AddTab("A", nil)
	w.Show()
	d.WindowShown(w)
	tk.run()

	calls := 0
	p1.SetOnClosedPassSibling(func(*Pane) { calls++ })

	tk.header(t, c1, 0).onClose()

	assert.Zero(t, calls)
	assert.Same(t, p1, d.Pane(c1))
	assert.Equal(t, 2, split.Len())
}

func TestClosablePane_LeavesSplitWhenEmpty(t *testing.T) {
	d, tk := newTestDock(t)
	c1 := entity.NewTabContainer("c1")
	c2 := entity.NewTabContainer("c2")
	c2.CloseIfEmpty = true
	p1, p2 := d.NewPane(c1), d.NewPane(c2)
	root := entity.NewRoot("root", entity.NewSplitContainer("s", entity.Vertical, c1, c2))
	w := newFakeWindow(root)
	d.RegisterWindow(w)
	p1.AddTab("A", nil)
	p2.AddTab("B", nil)
	w.Show()
	d.WindowShown(w)
	tk.run()

	tk.header(t, c2, 0).onClose()

	assert.Same(t, c1, root.Node())
	assert.Nil(t, d.Pane(c2))
	assert.Len(t, d.Panes(), 1)
}

func TestDetach_DropOutsideOpensFloatingWindow(t *testing.T) {
	d, tk := newTestDock(t)
	p, main := newWindow(d, tk, "main", "A", "B")

	h := startDrag(t, tk, p, 1)
	require.True(t, d.Dragging())
	tab := d.Session().Tab()
	assert.Equal(t, "B", tab.Title)
	assert.Equal(t, 1, d.Session().OriginalIndex())
	assert.Nil(t, tab.Container())
	assert.True(t, tab.ListenersSuspended())
	assert.Equal(t, []*entity.Tab{tab}, tk.started)

	h.onDragDone(port.DragDone{DroppedOutside: true, Pointer: entity.Point{X: 500, Y: 300}})
	tk.run()

	assert.False(t, d.Dragging())
	assert.Nil(t, d.Session())
	assert.False(t, tab.ListenersSuspended())
	assert.Equal(t, []string{"A"}, titles(p.Container()))

	floating := d.FloatingWindows()
	require.Len(t, floating, 1)
	fw := floating[0]
	assert.Equal(t, []*entity.Tab{tab}, fw.Pane.Container().Tabs())
	assert.Same(t, tab, fw.Pane.Container().Selected())
	assert.True(t, fw.Pane.CloseIfEmpty())

	require.Len(t, tk.opened, 1)
	spec := tk.opened[0]
	assert.Equal(t, entity.Rect{X: 300, Y: 300, W: 400, H: 400}, spec.Bounds)
	assert.Same(t, main, spec.Owner)
	assert.Equal(t, []string{assets.DefaultStylesheetName}, spec.Stylesheets)
	assert.Equal(t, "B", spec.Title)
	assert.True(t, fw.Window().IsShowing())
	assert.Same(t, fw.Window(), fw.Pane.Window())
}

func TestDetach_InheritsSourceStylesheets(t *testing.T) {
	d, tk := newTestDock(t)
	p, main := newWindow(d, tk, "main", "A", "B")
	main.stylesheets = []string{"app.css"}

	h := startDrag(t, tk, p, 0)
	h.onDragDone(port.DragDone{DroppedOutside: true})

	require.Len(t, tk.opened, 1)
	assert.Equal(t, []string{"app.css"}, tk.opened[0].Stylesheets)
}

func TestDetach_TeardownRunsOnce(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B")

	h := startDrag(t, tk, p, 0)
	done := port.DragDone{DroppedOutside: true, Pointer: entity.Point{X: 100, Y: 100}}
	h.onDragDone(done)
	h.onDragDone(done)
	d.finishDrag(done)

	assert.Len(t, d.FloatingWindows(), 1)
	assert.Len(t, tk.opened, 1)
}

func TestDetach_CustomSceneAndOwner(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B")
	owner := portmocks.NewMockWindow(t)
	p.SetOwnerFactory(func(*Pane) port.Window { return owner })
	p.SetSceneFactory(func(np *Pane) Scene {
		return Scene{Node: np.Container(), Size: entity.Size{Width: 200, Height: 100}}
	})

	h := startDrag(t, tk, p, 0)
	h.onDragDone(port.DragDone{DroppedOutside: true, Pointer: entity.Point{X: 500, Y: 50}})

	require.Len(t, tk.opened, 1)
	assert.Equal(t, entity.Rect{X: 400, Y: 50, W: 200, H: 100}, tk.opened[0].Bounds)
	assert.Same(t, owner, tk.opened[0].Owner)
}

func TestDetach_SceneWithoutPaneRestoresTab(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B")
	p.SetSceneFactory(func(*Pane) Scene {
		return Scene{Node: entity.NewTabContainer("elsewhere")}
	})

	h := startDrag(t, tk, p, 1)
	h.onDragDone(port.DragDone{DroppedOutside: true})

	assert.Empty(t, tk.opened)
	assert.Empty(t, d.FloatingWindows())
	assert.Equal(t, []string{"A", "B"}, titles(p.Container()))
	assert.Len(t, d.Panes(), 1)
}

func TestDetach_OpenWindowFailureRestoresTab(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B", "C")
	tk.openErr = errors.New("no display")

	h := startDrag(t, tk, p, 1)
	h.onDragDone(port.DragDone{DroppedOutside: true})

	assert.Equal(t, []string{"A", "B", "C"}, titles(p.Container()))
	assert.Len(t, d.Panes(), 1)
}

func TestDetach_FloatingWindowClosesWhenEmptied(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B")

	h := startDrag(t, tk, p, 1)
	h.onDragDone(port.DragDone{DroppedOutside: true})
	tk.run()
	fw := d.FloatingWindows()[0]
	fc := fw.Pane.Container()

	tk.header(t, fc, 0).onClose()

	assert.Empty(t, d.FloatingWindows())
	assert.True(t, tk.windows[0].closed)
	assert.Nil(t, d.Pane(fc))
}

func TestDetach_LastTabDraggedBackClosesFloatingWindow(t *testing.T) {
	d, tk := newTestDock(t)
	p, _ := newWindow(d, tk, "main", "A", "B")

	h := startDrag(t, tk, p, 1)
	h.onDragDone(port.DragDone{DroppedOutside: true})
	tk.run()
	fp := d.FloatingWindows()[0].Pane

	h = startDrag(t, tk, fp, 0)
	require.True(t, p.DragEntered(entity.Point{X: 80, Y: 10}))
	require.True(t, p.Drop(entity.Point{X: 80, Y: 10}))
	h.onDragDone(port.DragDone{})
	tk.run()

	assert.Equal(t, []string{"A", "B"}, titles(p.Container()))
	assert.Empty(t, d.FloatingWindows())
	assert.True(t, tk.windows[0].closed)
}

func TestDetach_MainWindowStaysOpenWhenEmptied(t *testing.T) {
	d, tk := newTestDock(t)
	p, main := newWindow(d, tk, "main", "A")

	h := startDrag(t, tk, p, 0)
	h.onDragDone(port.DragDone{DroppedOutside: true})

	assert.True(t, p.Container().IsEmpty())
	assert.False(t, main.closed)
	assert.Same(t, p, d.Pane(p.Container()))
	assert.Len(t, d.FloatingWindows(), 1)
}
