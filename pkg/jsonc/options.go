package jsonc

import (
	jsonctokenizer "github.com/shapestone/shape-jsonc/internal/tokenizer"
)

// Options configures tokenization.
type Options struct {
	// WarningCallback, if set, is invoked for every Error token as it is
	// emitted, with the line it was recognized on and a short description.
	// Tokenization continues regardless.
	// Default: nil
	WarningCallback func(line int, message string)
}

// DefaultOptions returns the default tokenization options.
func DefaultOptions() Options {
	return Options{
		WarningCallback: nil,
	}
}

func (o Options) lexerOptions() jsonctokenizer.Options {
	opts := jsonctokenizer.DefaultOptions()
	opts.WarningCallback = o.WarningCallback
	return opts
}
