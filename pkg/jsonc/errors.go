package jsonc

import (
	"errors"
	"fmt"
)

// LexError describes one Error token with position information.
type LexError struct {
	// Line is the line the token was recognized on (1-indexed).
	Line int
	// Column is the column of the token's first character (1-indexed).
	Column int
	// Lexeme is the offending source text.
	Lexeme string
	// Err is ErrMalformedNumber or ErrUnexpectedChar.
	Err error
}

// Error returns a formatted error message with position information.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error on line %d, column %d: %v %q", e.Line, e.Column, e.Err, e.Lexeme)
}

// Unwrap returns the underlying error.
func (e *LexError) Unwrap() error {
	return e.Err
}

// Lexical errors
var (
	// ErrMalformedNumber indicates a run of digits and dots that is not a valid number.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrUnexpectedChar indicates a character that starts no token.
	ErrUnexpectedChar = errors.New("unexpected character")
)

// Errors returns one LexError per Error token in tokens, in order.
// It returns nil when the tokens contain no errors.
//
// An Error token directly followed by a Number token with the same lexeme is
// a malformed number; any other Error token is an unexpected character.
//
// Example:
//
//	tokens := jsonc.Tokenize("[1.2.3, @]")
//	for _, err := range jsonc.Errors(tokens) {
//	    fmt.Println(err)
//	}
//	// lex error on line 1, column 2: malformed number "1.2.3"
//	// lex error on line 1, column 9: unexpected character "@"
func Errors(tokens []Token) []*LexError {
	var errs []*LexError
	for i, tok := range tokens {
		if tok.Kind != TokenError {
			continue
		}

		kind := ErrUnexpectedChar
		if i+1 < len(tokens) && tokens[i+1].Kind == TokenNumber && tokens[i+1].Lexeme == tok.Lexeme {
			kind = ErrMalformedNumber
		}

		errs = append(errs, &LexError{
			Line:   tok.Line,
			Column: tok.Start.Column,
			Lexeme: tok.Lexeme,
			Err:    kind,
		})
	}
	return errs
}
