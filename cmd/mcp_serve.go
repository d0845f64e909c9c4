package cmd

import (
	"github.com/chris-regnier/moodctl/internal/logging"
	"github.com/chris-regnier/moodctl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes mood tools
over stdio transport.

Available tools:
  - list_moods: The mood palette
  - get_history: Recorded moods, optionally only the most recent N
  - record_mood: Record a mood by emoji or description

Example MCP client config:
  {
    "mcpServers": {
      "moodctl": {
        "command": "/path/to/moodctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if moods == nil {
		return cmd.Help()
	}

	ctx := cmd.Context()
	history := moods.Load(ctx)

	server := mcptools.CreateMCPServer(moods)

	// Logs go to stderr; stdout is reserved for the MCP protocol
	logging.NewLogger("mcp").WithFields(logrus.Fields{
		"storage":  appConfig.Storage,
		"data_dir": appConfig.DataDir,
		"records":  len(history),
	}).Info("Starting moodctl MCP server (stdio transport)")

	// Blocks until the transport is closed
	return server.Run(ctx, &mcp.StdioTransport{})
}
