// Package tokenizer implements the JSONC lexer: JSON tokens plus // and /* */ comments.
package tokenizer

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Kind identifies the type of a token.
type Kind string

// Token kinds for JSONC.
// These correspond to the terminals of the JSON grammar; comments and
// whitespace are skipped and never produce a token.
const (
	// Structural tokens
	TokenLBrace   Kind = "LBrace"   // {
	TokenRBrace   Kind = "RBrace"   // }
	TokenLBracket Kind = "LBracket" // [
	TokenRBracket Kind = "RBracket" // ]
	TokenColon    Kind = "Colon"    // :
	TokenComma    Kind = "Comma"    // ,

	// Value tokens
	TokenString  Kind = "String"  // "..." (quotes stripped, no escape decoding)
	TokenNumber  Kind = "Number"  // run of ASCII digits and dots
	TokenBoolean Kind = "Boolean" // true, false
	TokenNull    Kind = "Null"    // null

	// Special tokens
	TokenEOF   Kind = "Eof"   // End of input, always last
	TokenError Kind = "Error" // Malformed number or unexpected character
)

// Token is a single lexical unit.
//
// Line is the lexer's line counter at the moment the token was pushed, so a
// string spanning a newline reports the line it ended on. Start is where the
// token's first character sits in the input. Start.Offset is a byte offset,
// so input[tok.Start.Offset:] begins with the token's source text. Bytes that
// are not valid UTF-8 are scanned as U+FFFD and count as three bytes.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Start  tokenizer.Position
}

// String returns the debug form of the token. The lexeme is quoted so the
// result never spans more than one line.
func (t Token) String() string {
	return fmt.Sprintf("Token{Kind: %s, Lexeme: %q, Line: %d}", t.Kind, t.Lexeme, t.Line)
}

// IsStructural reports whether the token is one of { } [ ] : ,
func (t Token) IsStructural() bool {
	switch t.Kind {
	case TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket, TokenColon, TokenComma:
		return true
	}
	return false
}

// structural maps each structural character to its token kind.
var structural = map[rune]Kind{
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	':': TokenColon,
	',': TokenComma,
}
