package jsonc

import (
	"io"
)

// Scanner provides an iterator interface over the tokens of a reader.
// The whole input is read and tokenized on the first call to Scan; tokens are
// then handed out one at a time.
//
// Example usage:
//
//	scanner := jsonc.NewScanner(os.Stdin)
//	for scanner.Scan() {
//	    fmt.Println(scanner.Token())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader io.Reader
	opts   Options
	tokens []Token
	index  int
	err    error
	parsed bool
}

// NewScanner creates a new Scanner that reads JSONC from the given io.Reader.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		reader: reader,
		opts:   DefaultOptions(),
		index:  -1,
	}
}

// SetOptions sets the tokenization options. It must be called before the
// first Scan. Returns the Scanner for method chaining.
func (s *Scanner) SetOptions(opts Options) *Scanner {
	s.opts = opts
	return s
}

// Scan advances the scanner to the next token.
// It returns false after the Eof token has been returned or when reading
// the input fails. After Scan returns false, Err returns any read error.
func (s *Scanner) Scan() bool {
	if !s.parsed {
		s.parsed = true
		tokens, err := TokenizeReaderWithOptions(s.reader, s.opts)
		if err != nil {
			s.err = err
			return false
		}
		s.tokens = tokens
	}

	if s.index < len(s.tokens) {
		s.index++
	}
	return s.index < len(s.tokens)
}

// Token returns the current token.
// This should only be called after Scan returns true.
func (s *Scanner) Token() Token {
	if s.index < 0 || s.index >= len(s.tokens) {
		return Token{}
	}
	return s.tokens[s.index]
}

// Err returns the first error encountered while reading the input.
func (s *Scanner) Err() error {
	return s.err
}
