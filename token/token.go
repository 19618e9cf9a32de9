// Package token defines the tokens consumed by the instruction decoder and
// the encoding of literal values.
package token

import (
	"fmt"
)

// Kind is the class of a token.
type Kind int

const (
	KindKeyword Kind = iota
	KindSymbol
	KindIdentifier
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindSymbol:
		return "symbol"
	case KindIdentifier:
		return "identifier"
	case KindLiteral:
		return "literal"
	default:
		return "token(?)"
	}
}

// Symbol is a punctuation token.
type Symbol int

const (
	Colon Symbol = iota
	Semicolon
	Dot
	Comma
	RoundOpen
	RoundClose
	SquareOpen
	SquareClose
	CurlyOpen
	CurlyClose
)

var symbolText = map[Symbol]string{
	Colon:       ":",
	Semicolon:   ";",
	Dot:         ".",
	Comma:       ",",
	RoundOpen:   "(",
	RoundClose:  ")",
	SquareOpen:  "[",
	SquareClose: "]",
	CurlyOpen:   "{",
	CurlyClose:  "}",
}

var symbolByText = func() map[string]Symbol {
	m := make(map[string]Symbol, len(symbolText))
	for s, text := range symbolText {
		m[text] = s
	}
	return m
}()

func (s Symbol) String() string {
	if text, ok := symbolText[s]; ok {
		return text
	}
	return "symbol(?)"
}

// LookupSymbol returns the symbol spelled by word, if any.
func LookupSymbol(word string) (Symbol, bool) {
	s, ok := symbolByText[word]
	return s, ok
}

// Token is one classified word of the source. Only the field matching Kind
// is meaningful.
type Token struct {
	Kind    Kind
	Keyword Keyword
	Symbol  Symbol
	Ident   string
	Literal Literal

	// Line is the 1-based source line, or 0 if unknown.
	Line int
}

// KeywordToken creates a keyword token.
func KeywordToken(kw Keyword) Token { return Token{Kind: KindKeyword, Keyword: kw} }

// SymbolToken creates a symbol token.
func SymbolToken(s Symbol) Token { return Token{Kind: KindSymbol, Symbol: s} }

// IdentToken creates an identifier token.
func IdentToken(name string) Token { return Token{Kind: KindIdentifier, Ident: name} }

// LiteralToken creates a literal token.
func LiteralToken(lit Literal) Token { return Token{Kind: KindLiteral, Literal: lit} }

// Is reports whether t is the given symbol.
func (t Token) Is(s Symbol) bool {
	return t.Kind == KindSymbol && t.Symbol == s
}

func (t Token) String() string {
	switch t.Kind {
	case KindKeyword:
		return t.Keyword.String()
	case KindSymbol:
		return t.Symbol.String()
	case KindIdentifier:
		return t.Ident
	case KindLiteral:
		return t.Literal.String()
	default:
		return "?"
	}
}

// Parse classifies a single word. Keywords win over symbols, symbols over
// literals and literals over identifiers.
func Parse(word string) (Token, error) {
	if kw, ok := LookupKeyword(word); ok {
		return KeywordToken(kw), nil
	}

	if s, ok := LookupSymbol(word); ok {
		return SymbolToken(s), nil
	}

	lit, err := ParseLiteral(word)
	if err == nil {
		return LiteralToken(lit), nil
	}

	if ValidIdentifier(word) {
		return IdentToken(word), nil
	}

	return Token{}, fmt.Errorf("parse %q: %w", word, err)
}

// ValidIdentifier reports whether word matches [A-Za-z_][A-Za-z0-9_]*.
func ValidIdentifier(word string) bool {
	if word == "" {
		return false
	}

	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return true
}
