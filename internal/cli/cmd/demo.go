package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabdock/assets"
	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/cli"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/infrastructure/config"
	"github.com/bnema/tabdock/internal/ui/dock"
	"github.com/bnema/tabdock/internal/ui/theme"
	"github.com/bnema/tabdock/internal/ui/tui"
)

var (
	demoLayout string
	demoFresh  bool
	demoTabs   []string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive docking demo",
	Long: `Open a terminal window holding detachable tabs.

Drag a tab header with the mouse to reorder it, drop it on an arrow to
split the pane, or release it over a title bar to open a floating window.
The layout is restored from and saved to the layout database.

Examples:
  tabdock demo                        # Restore the default layout
  tabdock demo --layout work          # Use the layout named "work"
  tabdock demo --fresh --tabs a,b,c   # Start from three new tabs`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&demoLayout, "layout", "l", "", "layout name (default: demo.layout_name)")
	demoCmd.Flags().BoolVar(&demoFresh, "fresh", false, "ignore the saved layout")
	demoCmd.Flags().StringSliceVar(&demoTabs, "tabs", nil, "titles of the initial tabs (default: demo.tabs)")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	m, err := newDemoModel(a)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	a.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(tui.StylesMsg{Styles: theme.NewStyles(theme.PaletteForAppearance(&cfg.Appearance))})
	})
	a.Manager.Watch()

	_, err = p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// newDemoModel builds the demo model, restoring the saved layout unless
// --fresh is set.
func newDemoModel(a *cli.App) (*tui.Model, error) {
	ctx := a.Ctx()
	cfg := a.Config
	log := a.Logger.With().Str("component", "demo").Logger()

	settings, err := dockSettings(cfg)
	if err != nil {
		return nil, err
	}

	name := demoLayout
	if name == "" {
		name = cfg.Demo.LayoutName
	}
	tabs := cfg.Demo.Tabs
	if len(demoTabs) > 0 {
		tabs = demoTabs
	}

	var node entity.Node
	if cfg.Demo.RestoreLayout && !demoFresh {
		out, err := a.RestoreLayoutUC.Execute(ctx, usecase.RestoreLayoutInput{
			Name:    name,
			Resolve: tui.SampleContent,
		})
		switch {
		case err == nil:
			node = out.Node
		case errors.Is(err, usecase.ErrLayoutNotFound):
			log.Debug().Str("layout", name).Msg("no saved layout, starting fresh")
		default:
			log.Warn().Err(err).Str("layout", name).Msg("saved layout unusable, starting fresh")
		}
	}

	save := func(ctx context.Context, root *entity.Root) error {
		_, err := a.SnapshotLayoutUC.Execute(ctx, usecase.SnapshotLayoutInput{Name: name, Root: root.Node()})
		return err
	}

	return tui.New(ctx, tui.Config{
		Title:      "tabdock · " + name,
		Settings:   settings,
		Styles:     theme.NewStyles(theme.PaletteForAppearance(&cfg.Appearance)),
		Node:       node,
		Tabs:       tabs,
		Save:       save,
		SaveOnQuit: true,
	})
}

// dockSettings maps the [dock] config section to engine settings.
func dockSettings(cfg *config.Config) (dock.Settings, error) {
	policy, err := entity.ParseClosingPolicy(string(cfg.Dock.ClosingPolicy))
	if err != nil {
		return dock.Settings{}, fmt.Errorf("dock.closing_policy: %w", err)
	}
	return dock.Settings{
		DefaultScope:     cfg.Dock.DefaultScope,
		ClosingPolicy:    policy,
		FloatingWidth:    cfg.Dock.FloatingWidth,
		FloatingHeight:   cfg.Dock.FloatingHeight,
		HeaderRetryDelay: time.Duration(cfg.Dock.HeaderRetryDelayMs) * time.Millisecond,
		ZoneSize:         cfg.Dock.ZoneSize,
		ZoneOffset:       cfg.Dock.ZoneOffset,
		Stylesheets:      []string{assets.DefaultStylesheetName},
	}, nil
}
