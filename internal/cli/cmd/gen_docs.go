package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files (for websites/wikis)

Examples:
  tabdock gen-docs                      # Write man pages to ./man
  tabdock gen-docs --format markdown    # Write markdown to ./docs
  tabdock gen-docs --output /tmp/man    # Write to a chosen directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		outputDir = "./man"
		if genDocsFormat == "markdown" {
			outputDir = "./docs"
		}
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	var ext string
	switch genDocsFormat {
	case "man":
		ext = ".1"
	case "markdown":
		ext = ".md"
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var err error
	if ext == ".1" {
		now := time.Now()
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "TABDOCK",
			Section: "1",
			Source:  "tabdock " + buildInfo.Version,
			Manual:  "tabdock Manual",
			Date:    &now,
		}, outputDir)
	} else {
		err = doc.GenMarkdownTree(root, outputDir)
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	return listGenerated(cmd.OutOrStdout(), outputDir, ext)
}

func listGenerated(out io.Writer, dir, ext string) error {
	fmt.Fprintf(out, "Generated docs in %s\n", dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}
