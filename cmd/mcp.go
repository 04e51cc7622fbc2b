package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/ziadkadry99/pillars/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing pillar listing, lookup, navigation and search tools to AI agents.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		// Stdout carries the protocol; the logger writes to stderr.
		logger.Info("pillars MCP server started on stdio",
			zap.String("catalog", cfg.CatalogSource()),
			zap.Int("pillars", c.Len()))

		return mcpserver.NewServer(c).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
