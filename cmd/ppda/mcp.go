package main

import (
	"log/slog"

	"github.com/aretw0/ppda/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts an MCP server over Standard Input/Output.
AI agents can list the models, score strings and sample from them as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Logs go to Stderr so they don't corrupt JSON-RPC on Stdout
		slog.SetDefault(env.Logger)
		env.Logger.Info("mcp server started", "transport", "stdio")
		return mcp.NewServer(env.Workspace).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
