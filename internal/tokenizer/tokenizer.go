package tokenizer

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the lexer behavior.
type Options struct {
	// WarningCallback is invoked once for every Error token pushed, with the
	// line it was recognized on. Scanning always continues. Default: nil
	WarningCallback func(line int, message string)
}

// DefaultOptions returns default lexer options.
func DefaultOptions() Options {
	return Options{}
}

// Lexer is a single-pass scanner over a fully loaded input.
//
// The input is held as a rune slice so peeking at any offset is O(1).
// A Lexer is not safe for concurrent use; build one per input.
type Lexer struct {
	input  []rune
	pos    int
	offset int // byte offset of ch in the UTF-8 input
	line   int
	column int
	ch     rune
	hasCh  bool
	tokens []Token
	opts   Options
}

// NewLexer creates a lexer for the given input with default options.
func NewLexer(input string) *Lexer {
	return NewLexerWithOptions(input, DefaultOptions())
}

// NewLexerWithOptions creates a lexer for the given input with custom options.
func NewLexerWithOptions(input string, opts Options) *Lexer {
	return newLexer([]rune(input), opts)
}

// NewLexerFromStream creates a lexer from a shape-core stream.
// The stream is drained up front; the lexer never scans incrementally.
func NewLexerFromStream(stream tokenizer.Stream, opts Options) *Lexer {
	var input []rune
	for {
		r, ok := stream.NextChar()
		if !ok {
			break
		}
		input = append(input, r)
	}
	return newLexer(input, opts)
}

func newLexer(input []rune, opts Options) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
		opts:   opts,
	}
	if len(input) > 0 {
		l.ch, l.hasCh = input[0], true
	}
	return l
}

// Tokens returns the tokens pushed so far. After Tokenize it ends with Eof.
func (l *Lexer) Tokens() []Token {
	return l.tokens
}

// Line returns the current value of the line counter.
func (l *Lexer) Line() int {
	return l.line
}

// Tokenize scans the whole input and returns the token list.
//
// Dispatch order: whitespace, // comment, /* comment, digit, t/f, n, ", then
// structural characters. Anything else, including a t/f/n that does not
// start a literal, becomes a one-character Error token, so every iteration
// consumes at least one character.
func (l *Lexer) Tokenize() []Token {
	for l.hasCh {
		c := l.ch
		switch {
		case unicode.IsSpace(c):
			l.skipWhitespace()
		case c == '/' && l.peek(1) == '/':
			l.skipSingleComment()
		case c == '/' && l.peek(1) == '*':
			l.skipMultiComment()
		case isDigit(c):
			l.number()
		case c == 't' || c == 'f':
			if !l.boolean() {
				l.unexpected()
			}
		case c == 'n':
			if !l.null() {
				l.unexpected()
			}
		case c == '"':
			l.quoted()
		default:
			if !l.specialChar() {
				l.unexpected()
			}
		}
	}

	l.push(TokenEOF, "", l.position())
	return l.tokens
}

// advance consumes the current character. It is a no-op at end of input.
func (l *Lexer) advance() {
	if !l.hasCh {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	l.offset += utf8.RuneLen(l.ch)
	l.pos++
	if l.pos < len(l.input) {
		l.ch = l.input[l.pos]
	} else {
		l.ch, l.hasCh = 0, false
	}
}

// peek returns the character offset positions ahead of the current one, or
// -1 when that is past the end. peek(0) is the current character.
func (l *Lexer) peek(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.input) {
		return -1
	}
	return l.input[i]
}

// position reports the current character's byte offset, line and column.
func (l *Lexer) position() tokenizer.Position {
	return tokenizer.NewPosition(l.offset, l.line, l.column)
}

func (l *Lexer) push(kind Kind, lexeme string, start tokenizer.Position) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   l.line,
		Start:  start,
	})
}

func (l *Lexer) pushError(lexeme string, start tokenizer.Position, message string) {
	l.push(TokenError, lexeme, start)
	if l.opts.WarningCallback != nil {
		l.opts.WarningCallback(l.line, message)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.hasCh && unicode.IsSpace(l.ch) {
		l.advance()
	}
}

// skipSingleComment stops before the newline; the main loop skips it as whitespace.
func (l *Lexer) skipSingleComment() {
	for l.hasCh && l.ch != '\n' {
		l.advance()
	}
}

// skipMultiComment consumes through the first */ starting at the opener's
// star, or to end of input when the comment is unterminated. /*/ is a
// complete comment.
func (l *Lexer) skipMultiComment() {
	l.advance() // /
	for l.hasCh {
		if l.ch == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

func (l *Lexer) number() {
	start := l.position()
	begin := l.pos
	for l.hasCh && (isDigit(l.ch) || l.ch == '.') {
		l.advance()
	}
	if l.pos == begin {
		return
	}

	lexeme := string(l.input[begin:l.pos])
	if !validNumber(lexeme) {
		l.pushError(lexeme, start, fmt.Sprintf("malformed number %q", lexeme))
	}
	l.push(TokenNumber, lexeme, start)
}

// quoted scans a string verbatim up to the next quote. Backslashes are not
// special and an unterminated string runs to end of input.
func (l *Lexer) quoted() {
	start := l.position()
	l.advance() // opening quote

	begin := l.pos
	for l.hasCh && l.ch != '"' {
		l.advance()
	}
	lexeme := string(l.input[begin:l.pos])
	l.advance() // closing quote, if any

	l.push(TokenString, lexeme, start)
}

// boolean matches true or false without checking what follows.
func (l *Lexer) boolean() bool {
	switch l.ch {
	case 't':
		return l.literal("true", TokenBoolean)
	case 'f':
		return l.literal("false", TokenBoolean)
	}
	return false
}

func (l *Lexer) null() bool {
	return l.ch == 'n' && l.literal("null", TokenNull)
}

// literal pushes kind and consumes word if the input continues with it.
// On mismatch nothing is consumed.
func (l *Lexer) literal(word string, kind Kind) bool {
	i := 0
	for _, r := range word {
		if l.peek(i) != r {
			return false
		}
		i++
	}

	start := l.position()
	l.push(kind, word, start)
	for ; i > 0; i-- {
		l.advance()
	}
	return true
}

func (l *Lexer) specialChar() bool {
	kind, ok := structural[l.ch]
	if !ok {
		return false
	}
	l.push(kind, string(l.ch), l.position())
	l.advance()
	return true
}

// unexpected emits the current character as an Error token and consumes it.
func (l *Lexer) unexpected() {
	start := l.position()
	c := l.ch
	l.pushError(string(c), start, fmt.Sprintf("unexpected character %q", c))
	l.advance()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// validNumber reports whether s parses as a float64. Values too large to
// represent still count as numbers.
func validNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
