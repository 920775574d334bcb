package cli

import (
	"github.com/spf13/cobra"

	"github.com/sumkit/sumkit/internal/subtitle"
)

func newConvertCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <srt-file>",
		Short: "Convert an .srt subtitle file into annotated transcript text",
		Long: "Parses an .srt file and writes each cue as a Script/Start Time/End Time " +
			"block with times in milliseconds, the input format of the split command.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			out := outputPath
			if out == "" {
				out = subtitle.DefaultOutputPath(inputPath)
			}
			return subtitle.Convert(cmd.Context(), inputPath, out, loggerFromCmd(cmd))
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output text file (default: {stem}_converted.txt beside the input)")

	return cmd
}
