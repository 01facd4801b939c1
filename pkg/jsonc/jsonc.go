// Package jsonc tokenizes JSON with comments (JSONC).
//
// The input is JSON extended with single-line (//) and block (/* */)
// comments. Tokenization produces an ordered slice of tokens that always ends
// with exactly one Eof token. Comments and whitespace produce no tokens.
//
// Lexical problems never abort a scan. They are reported in-stream as Error
// tokens:
//   - A run of digits and dots that does not parse as a float (e.g. 1.2.3)
//     yields an Error token immediately followed by a Number token with the
//     same lexeme.
//   - Any character no rule recognizes (e.g. @, -, or the t of "typo")
//     yields a one-character Error token and is consumed.
//
// Use Errors to turn the Error tokens of a result into positioned errors.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call creates its own lexer with no shared mutable state.
//
// # Example usage with Tokenize:
//
//	tokens := jsonc.Tokenize(`{ "key": 123 } // trailing comment`)
//	for _, tok := range tokens {
//	    fmt.Println(tok)
//	}
//
// # Example usage with TokenizeReader:
//
//	file, err := os.Open("settings.jsonc")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	tokens, err := jsonc.TokenizeReader(file)
//	if err != nil {
//	    // handle error
//	}
package jsonc

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	jsonctokenizer "github.com/shapestone/shape-jsonc/internal/tokenizer"
)

// Token is a single lexical unit: its kind, its source text, and the line
// counter's value when it was recognized.
type Token = jsonctokenizer.Token

// Kind identifies the type of a token.
type Kind = jsonctokenizer.Kind

// Token kinds.
const (
	TokenLBrace   = jsonctokenizer.TokenLBrace
	TokenRBrace   = jsonctokenizer.TokenRBrace
	TokenLBracket = jsonctokenizer.TokenLBracket
	TokenRBracket = jsonctokenizer.TokenRBracket
	TokenColon    = jsonctokenizer.TokenColon
	TokenComma    = jsonctokenizer.TokenComma
	TokenString   = jsonctokenizer.TokenString
	TokenNumber   = jsonctokenizer.TokenNumber
	TokenBoolean  = jsonctokenizer.TokenBoolean
	TokenNull     = jsonctokenizer.TokenNull
	TokenEOF      = jsonctokenizer.TokenEOF
	TokenError    = jsonctokenizer.TokenError
)

// Tokenize tokenizes a complete JSONC document held in memory.
//
// Example:
//
//	tokens := jsonc.Tokenize(`{ "key": 123 }`)
//	// LBrace, String(key), Colon, Number(123), RBrace, Eof
func Tokenize(input string) []Token {
	return TokenizeWithOptions(input, DefaultOptions())
}

// TokenizeWithOptions tokenizes input with custom options.
func TokenizeWithOptions(input string, opts Options) []Token {
	return jsonctokenizer.NewLexerWithOptions(input, opts.lexerOptions()).Tokenize()
}

// TokenizeReader reads all of reader and tokenizes it.
//
// The input is decoded as UTF-8. A leading byte order mark is removed, and a
// UTF-16 byte order mark switches decoding to UTF-16. Invalid UTF-8 bytes
// become U+FFFD and surface as Error tokens.
//
// Nothing is tokenized if reading fails; the returned error wraps the
// reader's error.
func TokenizeReader(reader io.Reader) ([]Token, error) {
	return TokenizeReaderWithOptions(reader, DefaultOptions())
}

// TokenizeReaderWithOptions is TokenizeReader with custom options.
func TokenizeReaderWithOptions(reader io.Reader, opts Options) ([]Token, error) {
	input, err := readInput(reader)
	if err != nil {
		return nil, err
	}
	return TokenizeWithOptions(input, opts), nil
}

// TokenizeStream drains a shape-core stream and tokenizes its contents.
// This allows callers that already hold a tokenizer.Stream to reuse it.
//
// A stream reports no errors: if a stream built with
// tokenizer.NewStreamFromReader fails to read, the input simply ends there,
// and invalid UTF-8 bytes are dropped rather than surfaced as Error tokens.
// Use TokenizeReader for reader input when read failures must be reported.
func TokenizeStream(stream tokenizer.Stream, opts Options) []Token {
	return jsonctokenizer.NewLexerFromStream(stream, opts.lexerOptions()).Tokenize()
}

// Format returns the format identifier for this tokenizer.
func Format() string {
	return "JSONC"
}

// readInput loads the whole input, handling byte order marks.
func readInput(reader io.Reader) (string, error) {
	decoded := transform.NewReader(reader, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("jsonc: reading input: %w", err)
	}
	return string(data), nil
}
