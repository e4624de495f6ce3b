package cmd

import (
	"github.com/intelligrit/ulysses-guide/internal/analysis"
	"github.com/intelligrit/ulysses-guide/internal/lang"
	"github.com/intelligrit/ulysses-guide/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the text analysis tools over MCP (stdio)",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mcpserver.NewMCPServer("ulysses-guide", "1.0.0", mcpserver.WithToolCapabilities(false))
		mcp.RegisterTools(srv, analysis.New(lang.NewModels()), cfg.Analysis.Speakers)
		return mcpserver.ServeStdio(srv)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
