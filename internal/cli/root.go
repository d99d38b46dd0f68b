package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-dl/internal/download"
	"github.com/johnquangdev/fireflies-dl/internal/fireflies"
	"github.com/johnquangdev/fireflies-dl/pkg/config"
)

var (
	outputDir string
	format    string
)

var rootCmd = &cobra.Command{
	Use:   "download_transcript <transcript>",
	Short: "Download a meeting transcript from Fireflies.ai",
	Long: `download_transcript fetches a single Fireflies.ai meeting transcript by ID
or URL and writes it to disk as indented JSON and/or a formatted text report.

The API key is read from the FIREFLIES_API_KEY environment variable or a
.env file in the working directory.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()

		client := fireflies.NewClient(cfg, logger)
		svc := download.NewService(client, logger)

		return svc.Run(cmd.Context(), args[0], download.Options{
			OutputDir: outputDir,
			Format:    format,
		})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	rootCmd.Flags().StringVarP(&format, "format", "f", download.FormatBoth, "output format: txt, json or both")
}

// Execute runs the root command and exits nonzero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
