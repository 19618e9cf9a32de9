// Package lexer splits program text into tokens.
//
// Words are separated by whitespace. Inside a word the lexer grows the
// candidate one character at a time and cuts it as soon as the longer form no
// longer classifies, so "loop:" yields the identifier "loop" followed by the
// symbol ":". A '#' starts a comment that runs to the end of the line.
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sarchlab/japl/token"
)

// Tokenize converts src into a token stream.
func Tokenize(src string) ([]token.Token, error) {
	var (
		tokens  []token.Token
		builder strings.Builder
		line    = 1
	)

	flush := func() error {
		if builder.Len() == 0 {
			return nil
		}
		tok, err := token.Parse(builder.String())
		if err != nil {
			return &Error{Line: line, Word: builder.String(), Err: err}
		}
		tok.Line = line
		tokens = append(tokens, tok)
		builder.Reset()
		return nil
	}

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '#' {
			if err := flush(); err != nil {
				return nil, err
			}
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			i--
			continue
		}

		if unicode.IsSpace(r) {
			if err := flush(); err != nil {
				return nil, err
			}
			if r == '\n' {
				line++
			}
			continue
		}

		// Quoted words run to the closing quote or the end of the line.
		if r == '\'' || r == '"' {
			if err := flush(); err != nil {
				return nil, err
			}

			j := i + 1
			for j < len(runes) && runes[j] != r && runes[j] != '\n' {
				j++
			}
			if j < len(runes) && runes[j] == r {
				j++
			}

			builder.WriteString(string(runes[i:j]))
			if err := flush(); err != nil {
				return nil, err
			}

			i = j - 1
			continue
		}

		prev := builder.String()
		builder.WriteRune(r)

		if _, err := token.Parse(builder.String()); err == nil {
			continue
		}

		if prev == "" {
			continue
		}

		builder.Reset()
		builder.WriteString(prev)
		if err := flush(); err != nil {
			return nil, err
		}
		builder.WriteRune(r)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// Error reports a word that is not a valid token.
type Error struct {
	Line int
	Word string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
