// ABOUTME: CLI commands for exporting and importing workout data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export workout data",
	Long: `Export workout data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   A readable training log grouped by month

EXAMPLES:

  liftlog export json                   # Export all data as JSON
  liftlog export json -o backup.json    # Save to file
  liftlog export markdown -o log.md     # Shareable training log`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var buf bytes.Buffer
		var err error

		switch args[0] {
		case "json":
			err = repo.ExportJSON(&buf)
		case "yaml":
			err = repo.ExportYAML(&buf)
		case "markdown":
			err = repo.ExportMarkdown(&buf)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, buf.Bytes(), 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Print(buf.String())
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workout data from JSON",
	Long: `Import workout data from a JSON backup file.

Custom exercises are matched by name; plans and sessions are recreated
with fresh ids. Importing into a database that already has plans will
add, not merge.

EXAMPLES:

  liftlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		defer f.Close()

		if err := repo.ImportJSON(f); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
