// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/liftlog-dev/liftlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows assistants to interact with your workout data through a
standardized protocol. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "liftlog": {
        "command": "liftlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_plans            List workout plans with exercises
  save_plan             Create or update a plan
  delete_plan           Delete a plan (sessions survive)
  list_exercises        List the exercise catalog
  add_exercise          Add a custom exercise
  delete_exercise       Delete a custom exercise
  record_session        Record a performed session
  list_sessions         Sessions grouped by month
  get_session           One session with all sets
  edit_session          Replace a session's sets
  delete_session        Delete a session
  previous_performance  Last logged sets for an exercise
  get_profile           Read the profile
  set_profile           Update the profile

AVAILABLE RESOURCES:

  liftlog://plans             All plans
  liftlog://sessions/recent   The 10 most recent sessions
  liftlog://profile           User profile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
