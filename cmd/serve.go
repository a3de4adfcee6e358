package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/navtree/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built trees as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, so warnings always go to stderr
		res, err := buildNav(configPath, recordsPath, warningsTo(cmd))
		if err != nil {
			return err
		}
		return mcpserver.Serve(mcpserver.New(res, Version))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
