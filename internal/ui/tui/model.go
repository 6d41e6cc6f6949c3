package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
	"github.com/bnema/tabdock/internal/ui/dock"
	"github.com/bnema/tabdock/internal/ui/theme"
)

// ErrNoContainers is returned when the initial tree holds no tab container.
var ErrNoContainers = errors.New("tree has no tab container")

// SaveFunc persists the tree of the main window.
type SaveFunc func(ctx context.Context, root *entity.Root) error

// Config configures a Model.
type Config struct {
	Title    string
	Settings dock.Settings
	Styles   *theme.Styles
	// Node is the initial tree. Nil creates one pane holding Tabs.
	Node entity.Node
	Tabs []string
	// Save is called on the save key and, with SaveOnQuit, before quitting.
	Save       SaveFunc
	SaveOnQuit bool
	// IDGenerator names new nodes. Defaults to uuids.
	IDGenerator usecase.IDGenerator
}

// StylesMsg replaces the styles the model paints with.
type StylesMsg struct {
	Styles *theme.Styles
}

// Model is the bubbletea model of the docking demo.
type Model struct {
	ctx    context.Context
	logger zerolog.Logger

	host   *Host
	dock   *dock.Dock
	window *Window
	main   *dock.Pane

	styles *theme.Styles
	table  styleTable
	keys   keyMap
	help   help.Model

	save       SaveFunc
	saveOnQuit bool
	newID      usecase.IDGenerator

	width, height int
	shown         bool
	status        string
	statusErr     bool
	tabSeq        int
}

// SampleContent is the placeholder body of a demo tab.
func SampleContent(title string) any {
	return fmt.Sprintf("%s\n\nDrag the tab header to reorder it, drop it on an\narrow to split the pane, or release it on a title\nbar to open it in a floating window.", title)
}

// New builds the host, the dock and the main window.
func New(ctx context.Context, cfg Config) (*Model, error) {
	log := logging.FromContext(ctx).With().Str("component", "tui").Logger()
	ctx = logging.WithContext(ctx, log)

	newID := cfg.IDGenerator
	if newID == nil {
		newID = uuid.NewString
	}
	styles := cfg.Styles
	if styles == nil {
		styles = theme.NewStyles(theme.DefaultDarkPalette())
	}

	host := NewHost(ctx)
	d := dock.New(ctx, dock.Config{Toolkit: host, Settings: cfg.Settings, IDGenerator: newID})
	host.SetDock(d)

	node := cfg.Node
	if node == nil {
		p := d.NewPane(nil)
		for _, title := range cfg.Tabs {
			p.AddTab(title, SampleContent(title))
		}
		node = p.Container()
	}

	root := entity.NewRoot(newID(), node)
	containers := root.TabContainers()
	if len(containers) == 0 {
		d.Close()
		return nil, ErrNoContainers
	}
	for _, c := range containers {
		d.NewPane(c)
	}

	w, err := host.NewWindow(port.WindowSpec{
		ID:          root.ID,
		Title:       cfg.Title,
		Root:        root,
		Stylesheets: d.Settings().Stylesheets,
	})
	if err != nil {
		d.Close()
		return nil, err
	}
	d.RegisterWindow(w)
	w.Show()

	m := &Model{
		ctx:        ctx,
		logger:     log,
		host:       host,
		dock:       d,
		window:     w,
		styles:     styles,
		table:      newStyleTable(styles),
		keys:       defaultKeyMap(),
		help:       help.New(),
		save:       cfg.Save,
		saveOnQuit: cfg.SaveOnQuit,
		newID:      newID,
	}
	m.setMain(d.Pane(containers[0]))

	log.Debug().Int("containers", len(containers)).Msg("docking demo ready")
	return m, nil
}

// setMain makes p the persistent pane. When it empties, its sibling takes over.
func (m *Model) setMain(p *dock.Pane) {
	m.main = p
	p.SetCloseIfEmpty(false)
	p.SetOnClosedPassSibling(m.setMain)
}

// Host returns the terminal toolkit.
func (m *Model) Host() *Host { return m.host }

// Dock returns the docking engine.
func (m *Model) Dock() *dock.Dock { return m.dock }

// Window returns the main window.
func (m *Model) Window() *Window { return m.window }

// Main returns the persistent pane.
func (m *Model) Main() *dock.Pane { return m.main }

// Status returns the last status message.
func (m *Model) Status() string { return m.status }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.host.Resize(msg.Width, msg.Height-1)
		if !m.shown {
			m.host.Relayout()
			m.dock.WindowShown(m.window)
			m.shown = true
		}
	case tea.MouseMsg:
		m.host.HandleMouse(msg)
	case timerMsg:
		m.host.fireTimer(msg.id)
	case StylesMsg:
		if msg.Styles != nil {
			m.styles = msg.Styles
			m.table = newStyleTable(msg.Styles)
		}
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	m.host.Settle()
	cmds = append(cmds, m.host.TakeCmds()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.saveOnQuit {
			m.saveLayout()
		}
		m.dock.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.host.CancelDrag()
	case key.Matches(msg, m.keys.Save):
		m.saveLayout()
	case key.Matches(msg, m.keys.NewTab):
		m.tabSeq++
		title := fmt.Sprintf("Tab %d", m.tabSeq)
		if tab := m.focusedPane().AddTab(title, SampleContent(title)); tab != nil {
			m.setStatus("added "+title, false)
		}
	case key.Matches(msg, m.keys.CloseTab):
		m.focusedPane().CloseSelected()
	case key.Matches(msg, m.keys.PrevTab):
		m.selectRelative(-1)
	case key.Matches(msg, m.keys.NextTab):
		m.selectRelative(1)
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus()
	}
	return nil
}

func (m *Model) focusedPane() *dock.Pane {
	if p := m.dock.Pane(m.host.Focused()); p != nil {
		return p
	}
	return m.main
}

func (m *Model) selectRelative(delta int) {
	c := m.focusedPane().Container()
	n := c.Len()
	if n == 0 {
		return
	}
	next := ((c.SelectedIndex()+delta)%n + n) % n
	_ = c.Select(c.TabAt(next))
}

func (m *Model) cycleFocus() {
	var all []*entity.TabContainer
	for _, w := range m.host.Windows() {
		for _, cf := range w.containers {
			all = append(all, cf.container)
		}
	}
	if len(all) == 0 {
		return
	}
	next := 0
	for i, c := range all {
		if c == m.host.Focused() {
			next = (i + 1) % len(all)
			break
		}
	}
	m.host.RequestFocus(all[next])
}

func (m *Model) saveLayout() {
	if m.save == nil {
		return
	}
	if err := m.save(m.ctx, m.window.Root()); err != nil {
		m.logger.Error().Err(err).Msg("save layout failed")
		m.setStatus("save failed: "+err.Error(), true)
		return
	}
	m.setStatus("layout saved", false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status, m.statusErr = text, isErr
}

func (m *Model) View() string {
	if !m.shown {
		return ""
	}
	body := m.host.paint().render(&m.table)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
}

func (m *Model) statusLine() string {
	helpView := m.styles.Help.Render(m.help.View(m.keys))
	if m.status == "" {
		return helpView
	}
	style := m.styles.Status
	if m.statusErr {
		style = m.styles.Error
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(m.status), "  ", helpView)
}
