package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/navtree/internal/config"
	"github.com/agentic-research/navtree/internal/nav"
	"github.com/agentic-research/navtree/internal/source"
)

// Version is stamped at build time.
var Version = "dev"

var (
	configPath  string
	recordsPath string
	quiet       bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "nav.hcl", "Path to navigation config (.hcl, .json, .yaml)")
	rootCmd.PersistentFlags().StringVarP(&recordsPath, "records", "r", ".", "Record source: directory, .db or .json")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress unreached-record warnings")
}

var rootCmd = &cobra.Command{
	Use:           "navtree",
	Short:         "Build navigation trees from path-keyed records",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// buildNav loads the config and records and runs every configured tree.
// Warnings go to warnings unless it is nil.
func buildNav(cfgPath, recPath string, warnings io.Writer) (*nav.Result, error) {
	n, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	files, err := source.Load(recPath)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	settings, trees := config.Resolve(n)
	runner := nav.NewRunner(settings, trees)
	if warnings != nil {
		runner.Logger = log.New(warnings, "navtree: ", 0)
	}
	return runner.Run(files, map[string]any{}), nil
}

func warningsTo(cmd *cobra.Command) io.Writer {
	if quiet {
		return nil
	}
	return cmd.ErrOrStderr()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
