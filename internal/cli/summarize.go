package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sumkit/sumkit/internal/backend"
	"github.com/sumkit/sumkit/internal/summarize"
)

func newSummarizeCmd() *cobra.Command {
	var (
		dir         string
		outputPath  string
		backendKind string
		apiURL      string
		model       string
		paramsPath  string
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize pre-chunked text files via an LLM backend",
		Long: "Sends every .txt file in a directory to the selected inference backend " +
			"and collects the generated summaries into a JSON map keyed by file name. " +
			"With --watch the directory is kept under observation and new chunks are " +
			"summarized as they arrive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromCmd(cmd)

			params, err := backend.LoadParams(paramsPath)
			if err != nil {
				return err
			}

			b, err := backend.New(backend.Options{
				Kind:    backendKind,
				URL:     apiURL,
				Model:   model,
				Params:  params,
				APIKeys: geminiKeys(),
			}, log)
			if err != nil {
				return err
			}

			runner := summarize.New(b, log)
			if watch {
				return runner.Watch(cmd.Context(), dir, outputPath)
			}
			return runner.RunDir(cmd.Context(), dir, outputPath)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory containing pre-chunked .txt files (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output JSON file (required)")
	cmd.Flags().StringVarP(&backendKind, "backend", "b", "ollama", "inference backend: ollama, kobold or gemini")
	cmd.Flags().StringVarP(&apiURL, "url", "u", "", "API URL override for the backend")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name for backends that take one")
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "JSON file with extra request parameters")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep watching the directory for new chunk files")
	cobra.CheckErr(cmd.MarkFlagRequired("dir"))
	cobra.CheckErr(cmd.MarkFlagRequired("output"))

	return cmd
}

// geminiKeys reads the comma-separated GEMINI_API_KEY environment variable.
func geminiKeys() []string {
	raw := os.Getenv("GEMINI_API_KEY")
	if raw == "" {
		return nil
	}
	var keys []string
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
