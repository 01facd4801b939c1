// Command jsonc-tokens reads a JSONC document from standard input and prints
// one debug line per token to standard output.
//
// Lexical errors are reported as Error tokens in the output and as warnings
// on standard error. A failure to read standard input is fatal.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/shapestone/shape-jsonc/pkg/jsonc"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("jsonc-tokens failed", "err", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	opts := jsonc.DefaultOptions()
	opts.WarningCallback = func(line int, message string) {
		logger.Warn(message, "line", line)
	}

	tokens, err := jsonc.TokenizeReaderWithOptions(stdin, opts)
	if err != nil {
		return err
	}
	return jsonc.WriteTokens(stdout, tokens)
}
