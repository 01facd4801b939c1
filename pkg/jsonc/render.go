package jsonc

import (
	"bufio"
	"bytes"
	"io"
)

// Render returns the debug form of tokens, one token per line in order.
//
// Example:
//
//	out := jsonc.Render(jsonc.Tokenize("[]"))
//	// Token{Kind: LBracket, Lexeme: "[", Line: 1}
//	// Token{Kind: RBracket, Lexeme: "]", Line: 1}
//	// Token{Kind: Eof, Lexeme: "", Line: 1}
func Render(tokens []Token) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail
	_ = WriteTokens(&buf, tokens)
	return buf.Bytes()
}

// WriteTokens writes the debug form of tokens to w, one token per line.
// Lexemes are quoted, so a token containing a newline still takes one line.
func WriteTokens(w io.Writer, tokens []Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		if _, err := bw.WriteString(tok.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
