package cli

import (
	"github.com/spf13/cobra"

	"github.com/sumkit/sumkit/internal/merger"
)

func newMergeCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a summarization results JSON map into one document",
		Long: "Extracts the summary texts from a results JSON file, orders them by " +
			"chunk index and writes them as one plain-text or docx document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return merger.Run(cmd.Context(), inputPath, outputPath, format, loggerFromCmd(cmd))
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "results JSON file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output document path (required)")
	cmd.Flags().StringVarP(&format, "format", "f", merger.FormatText, "output format: txt or docx")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	cobra.CheckErr(cmd.MarkFlagRequired("output"))

	return cmd
}
