package app

import (
	"github.com/blackwell-systems/pathjoin/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve join tools over MCP stdio",
	Long: `Start a Model Context Protocol stdio server. The server exposes two tools:

  join_path      Join segments, optionally after a configured base path
  explain_path   Per-segment strip results and the joined path

Add to an MCP client configuration:
  {"mcpServers":{"pathjoin":{"command":"pathjoin","args":["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	srv := mcp.NewServer(cfg, appVersion)
	return srv.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
