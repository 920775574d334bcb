package cli

import (
	"github.com/spf13/cobra"

	"github.com/sumkit/sumkit/internal/config"
	"github.com/sumkit/sumkit/internal/splitter"
)

func newSplitCmd() *cobra.Command {
	var (
		inputPath  string
		outputDir  string
		configPath string
		maxTokens  int
		singleShot bool
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a transcript into token-bounded, header/footer-wrapped parts",
		Long: "Reads a transcript, drops timing metadata lines, flattens the rest into " +
			"one text and writes it out in parts of at most the configured number of " +
			"whitespace-delimited tokens, each wrapped with the configured header and " +
			"footer. With --single-shot the whole file is wrapped and written as one part.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromCmd(cmd)

			wrap, err := config.Load(configPath)
			if err != nil {
				return err
			}

			job := splitter.Job{
				InputPath:  inputPath,
				OutputDir:  outputDir,
				MaxTokens:  maxTokens,
				SingleShot: singleShot,
				Wrap:       *wrap,
			}
			if err := job.Validate(); err != nil {
				return err
			}

			return splitter.Run(cmd.Context(), job, log)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input transcript file (required)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "output directory (default: {stem}_splits in the working directory)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "header/footer config file, JSON or YAML (required)")
	cmd.Flags().IntVarP(&maxTokens, "max-tokens", "s", 0, "maximum tokens per part (required unless --single-shot)")
	cmd.Flags().BoolVar(&singleShot, "single-shot", false, "wrap the whole file into a single output part")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	cobra.CheckErr(cmd.MarkFlagRequired("config"))

	return cmd
}
