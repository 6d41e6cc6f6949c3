package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabdock/internal/cli/styles"
	"github.com/bnema/tabdock/internal/domain/repository"
)

const defaultLayoutsLimit = 20

var (
	layoutsJSON  bool
	layoutsLimit int
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `List and delete the docking layouts saved by the demo.

The demo saves its tree under demo.layout_name when it quits or when the
save key is pressed, and restores it on the next start.`,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Long: `List saved layouts with their tab counts, most recent first.

The layout the demo opens by default is marked with ●.`,
	RunE: runLayoutsList,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsDelete,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd, layoutsDeleteCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
	layoutsListCmd.Flags().IntVarP(&layoutsLimit, "limit", "n", defaultLayoutsLimit, "maximum number of layouts to show (0 for all)")
}

type layoutJSON struct {
	Name      string `json:"name"`
	TabCount  int    `json:"tab_count"`
	UpdatedAt string `json:"updated_at"`
}

func runLayoutsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	items, err := a.ListLayoutsUC.Execute(a.Ctx(), layoutsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if layoutsJSON {
		return writeLayoutsJSON(out, items)
	}
	fmt.Fprintln(out, styles.NewLayoutsRenderer(a.Theme).RenderList(items, a.Config.Demo.LayoutName))
	return nil
}

func writeLayoutsJSON(out io.Writer, items []repository.LayoutSummary) error {
	rows := make([]layoutJSON, 0, len(items))
	for _, item := range items {
		rows = append(rows, layoutJSON{
			Name:      item.Name,
			TabCount:  item.TabCount,
			UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func runLayoutsDelete(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewLayoutsRenderer(a.Theme)

	if err := a.DeleteLayoutUC.Execute(a.Ctx(), args[0]); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderDeleted(args[0]))
	return nil
}
