package token

import "errors"

var (
	// ErrInvalidIdentifier means a word is not a keyword, symbol, literal or
	// identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrUnsupported is returned for syntax that is recognised but not
	// implemented, such as character and string literals.
	ErrUnsupported = errors.New("unsupported")
)
