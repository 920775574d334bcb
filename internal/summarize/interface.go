package summarize

import "context"

// Runner summarizes pre-chunked text files and collects the responses into
// a JSON map keyed by file name.
type Runner interface {
	// RunDir summarizes every .txt file in dir and writes the collected
	// results to outputPath.
	RunDir(ctx context.Context, dir, outputPath string) error
	// Watch does an initial RunDir pass, then keeps summarizing new .txt
	// files as they arrive, folding each result into outputPath.
	Watch(ctx context.Context, dir, outputPath string) error
}
