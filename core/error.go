package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/japl/instr"
)

// List of runtime faults reported through Kind.
const (
	OperationError = Kind(iota)
	SizeMismatch
	LabelNotFound
	Unsupported
	StackOverflow
	RegisterIndexError
	VariableNotFound
	DuplicateVariable
	DivisionByZero
	StepLimitExceeded
)

var strKind = []string{
	"operation error",
	"size mismatch",
	"label not found",
	"unsupported",
	"stack overflow",
	"register index error",
	"variable not found",
	"duplicate variable",
	"division by zero",
	"step limit exceeded",
}

// Kind describes the nature of a runtime fault. Every Kind is itself an
// error, so errors.Is(err, core.SizeMismatch) works on wrapped errors.
type Kind int

func (k Kind) Error() string {
	if k < 0 || int(k) >= len(strKind) {
		return fmt.Sprintf("fault(%d)", int(k))
	}
	return strKind[k]
}

// KindOf extracts the fault kind from err.
func KindOf(err error) (Kind, bool) {
	var k Kind
	if errors.As(err, &k) {
		return k, true
	}
	return 0, false
}

func fault(k Kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s", k, fmt.Sprintf(format, args...))
}

// Error describes a fault and the instruction that raised it.
type Error struct {
	Kind Kind       // nature of the fault
	PC   int        // index of the failing instruction
	Inst instr.Inst // failing instruction, nil for step limit faults
	Err  error      // detailed cause, wraps Kind
}

func (e *Error) Error() string {
	msg := "core: "
	if e.Err != nil {
		msg += e.Err.Error()
	} else {
		msg += e.Kind.Error()
	}

	msg += fmt.Sprintf(" at pc %d", e.PC)
	if e.Inst != nil {
		msg += fmt.Sprintf(" (%v)", e.Inst)
	}

	return msg
}

func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

func newError(pc int, inst instr.Inst, err error) *Error {
	k, ok := KindOf(err)
	if !ok {
		k = OperationError
	}

	return &Error{Kind: k, PC: pc, Inst: inst, Err: err}
}
