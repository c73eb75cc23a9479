// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/config"
	"github.com/liftlog-dev/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Personal workout tracker",
	Long: `Liftlog is a CLI tool for planning and logging strength workouts.

WORKFLOW:

  Build plans (named, ordered lists of exercises), then log sessions
  against them. Each logged exercise shows what you did last time, so
  progressive overload is a glance, not a memory test.

QUICK START:

  $ liftlog plan add "Push Day" -e "Bench Press" -e "Overhead Press"
  $ liftlog plan list                    # See your plans
  $ liftlog session record 1 -x "Bench Press=100x8,100x8,95x10"
  $ liftlog session list                 # History grouped by month

SET SYNTAX:

  100x8        8 reps at 100
  100x8+1      8 full reps plus 1 half rep
  60xL8/R7     isolation: 8 left, 7 right at 60

IN-PROGRESS SESSIONS:

  $ liftlog session start 1              # Open a draft for plan 1
  $ liftlog session log "Bench Press" 100x8 100x8
  $ liftlog session finish               # Save the draft as a session

  The draft survives restarts; finish or abort it whenever.

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible assistants:

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in a local SQLite database at ~/.local/share/liftlog.
  Exports (JSON, YAML, Markdown) are available via 'liftlog export'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
