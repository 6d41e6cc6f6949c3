package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabdock/internal/cli/styles"
	"github.com/bnema/tabdock/internal/infrastructure/config"
)

var configWriteSchema bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the files tabdock uses, print the effective configuration or its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config, database and log file paths",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file",
	Long:  `Load config.toml and report every invalid setting.`,
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml.

With --write the schema is saved as config.schema.json next to the config
file so editors with TOML schema support can validate it.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configValidateCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configWriteSchema, "write", "w", false, "write config.schema.json to the config directory")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)

	dbFile, err := a.Config.DatabasePath()
	if err != nil {
		return err
	}
	logFile, err := a.Config.LogFile()
	if err != nil {
		return err
	}
	version, err := a.SchemaVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPaths(a.Manager.GetConfigFile(), dbFile, logFile, version))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	data, err := config.EncodeTOML(a.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderValid(a.Manager.GetConfigFile()))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !configWriteSchema {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	dir := configDir
	if dir == "" {
		var err error
		if dir, err = config.GetConfigDir(); err != nil {
			return fmt.Errorf("resolve config directory: %w", err)
		}
	}
	path, err := config.GenerateSchemaFile(dir)
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}
