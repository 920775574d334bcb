// Package cli wires the pipeline tools into one cobra command tree.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sumkit/sumkit/internal/logger"
)

// NewRootCmd builds the sumkit command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sumkit",
		Short:         "Utilities for a local text-summarization pipeline",
		Long:          "Split transcripts into token-bounded chunks, summarize them against a local LLM backend, and merge the results back into one document.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSplitCmd(),
		newSummarizeCmd(),
		newMergeCmd(),
		newConvertCmd(),
	)

	return cmd
}

// Execute runs the command tree and returns the process exit code. The
// context is cancelled on SIGINT/SIGTERM so watch mode shuts down cleanly.
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		root.PrintErrln("Error:", err)
		return 1
	}
	return 0
}

// loggerFromCmd builds the logger from the persistent log-level flag.
func loggerFromCmd(cmd *cobra.Command) logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logger.New(level)
}
