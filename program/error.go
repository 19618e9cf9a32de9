package program

import (
	"errors"
	"fmt"

	"github.com/sarchlab/japl/token"
)

var (
	// ErrInvalidArgument is the root of every operand decoding failure.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingOperand means the token stream ended inside an instruction.
	ErrMissingOperand = fmt.Errorf("%w: missing operand", ErrInvalidArgument)
	// ErrUnexpectedTokenKind means a token of the wrong kind was found.
	ErrUnexpectedTokenKind = fmt.Errorf("%w: unexpected token kind", ErrInvalidArgument)
	// ErrDuplicateLabel means a label was declared twice.
	ErrDuplicateLabel = errors.New("duplicate label")
)

// Error reports where decoding stopped.
type Error struct {
	// Pos is the index of the offending token in the input.
	Pos  int
	Line int

	Expected Operand
	Found    *token.Token
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("token %d", e.Pos)
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}

	msg += ": " + e.Err.Error()

	if e.Expected != "" {
		msg += fmt.Sprintf(", expected %s", e.Expected)
	}

	if e.Found != nil {
		msg += fmt.Sprintf(", found %v %q", e.Found.Kind, e.Found.String())
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
