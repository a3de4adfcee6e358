package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/navtree/internal/render"
	"github.com/agentic-research/navtree/internal/store"
)

var (
	outputFormat string
	outputDB     string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build every configured tree and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := buildNav(configPath, recordsPath, warningsTo(cmd))
		if err != nil {
			return err
		}

		if outputDB != "" {
			w, err := store.NewWriter(outputDB)
			if err != nil {
				return err
			}
			if err := w.WriteResult(res); err != nil {
				_ = w.Close()
				return fmt.Errorf("write %s: %w", outputDB, err)
			}
			if err := w.Close(); err != nil {
				return err
			}
		}

		switch outputFormat {
		case "json":
			return render.JSON(cmd.OutOrStdout(), res)
		case "text":
			return render.AllText(cmd.OutOrStdout(), res)
		case "none":
			return nil
		}
		return fmt.Errorf("unknown format %q (want text, json or none)", outputFormat)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, json or none")
	buildCmd.Flags().StringVar(&outputDB, "db", "", "Also write trees to this SQLite database")
	rootCmd.AddCommand(buildCmd)
}
