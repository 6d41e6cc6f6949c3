// Package cmd provides the Cobra commands of tabdock.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabdock/internal/cli"
)

// BuildInfo describes the running binary. It is set from main.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

var (
	app       *cli.App
	buildInfo = BuildInfo{Version: "dev"}
	configDir string
	logLevel  string
	rootCmd   = &cobra.Command{
		Use:   "tabdock",
		Short: "Detachable tabbed panes in the terminal",
		Long: `tabdock - a docking engine for detachable tabbed panes.

Tabs can be reordered within a strip, dropped beside a pane to split it,
or released outside any pane to open them in a floating window. Layouts
are saved to a local SQLite database and restored on the next start.

Use 'tabdock demo' to open the interactive terminal demo.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupApp,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

// setupApp creates the app context for commands that need the config and
// the layout store.
func setupApp(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "completion", "gen-docs", "schema", "version":
		return nil
	}

	var err error
	app, err = cli.NewApp(cli.Options{
		ConfigDir: configDir,
		LogLevel:  logLevel,
		LogToFile: cmd.Name() == "demo",
		Stderr:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tabdock %s (commit %s, built %s, %s)\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
