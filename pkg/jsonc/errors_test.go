package jsonc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-jsonc/pkg/jsonc"
)

func TestLexError(t *testing.T) {
	err := &jsonc.LexError{
		Line:   3,
		Column: 7,
		Lexeme: "1.2.3",
		Err:    jsonc.ErrMalformedNumber,
	}

	assert.Equal(t, `lex error on line 3, column 7: malformed number "1.2.3"`, err.Error())
	assert.True(t, errors.Is(err, jsonc.ErrMalformedNumber))
	assert.False(t, errors.Is(err, jsonc.ErrUnexpectedChar))

	var lexErr *jsonc.LexError
	require.True(t, errors.As(error(err), &lexErr))
	assert.Equal(t, 3, lexErr.Line)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []jsonc.LexError
	}{
		{
			name:  "no errors",
			input: `{"a": [1, true, null]}`,
			want:  nil,
		},
		{
			name:  "malformed number",
			input: "[1.2.3]",
			want: []jsonc.LexError{
				{Line: 1, Column: 2, Lexeme: "1.2.3", Err: jsonc.ErrMalformedNumber},
			},
		},
		{
			name:  "unexpected characters",
			input: "{\n  @: -1\n}",
			want: []jsonc.LexError{
				{Line: 2, Column: 3, Lexeme: "@", Err: jsonc.ErrUnexpectedChar},
				{Line: 2, Column: 6, Lexeme: "-", Err: jsonc.ErrUnexpectedChar},
			},
		},
		{
			name:  "misspelled literal",
			input: "nil",
			want: []jsonc.LexError{
				{Line: 1, Column: 1, Lexeme: "n", Err: jsonc.ErrUnexpectedChar},
				{Line: 1, Column: 2, Lexeme: "i", Err: jsonc.ErrUnexpectedChar},
				{Line: 1, Column: 3, Lexeme: "l", Err: jsonc.ErrUnexpectedChar},
			},
		},
		{
			name:  "mixed",
			input: "1..2 x",
			want: []jsonc.LexError{
				{Line: 1, Column: 1, Lexeme: "1..2", Err: jsonc.ErrMalformedNumber},
				{Line: 1, Column: 6, Lexeme: "x", Err: jsonc.ErrUnexpectedChar},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := jsonc.Errors(jsonc.Tokenize(tt.input))
			if tt.want == nil {
				assert.Nil(t, errs)
				return
			}

			require.Len(t, errs, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, *errs[i], "error %d", i)
			}
		})
	}
}
