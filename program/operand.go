package program

import (
	"github.com/sarchlab/japl/instr"
	"github.com/sarchlab/japl/token"
)

// Operand names the class of token a decoder expected.
type Operand string

const (
	OperandRegister   Operand = "register name"
	OperandType       Operand = "variable type"
	OperandIdentifier Operand = "identifier"
	OperandValue      Operand = "value"
	OperandLabel      Operand = "label name"
	OperandColon      Operand = "colon"
	OperandStatement  Operand = "instruction or label"
)

// cursor walks a token slice left to right.
type cursor struct {
	tokens []token.Token
	pos    int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) peek() token.Token {
	return c.tokens[c.pos]
}

// next returns the next token or a MissingOperand error naming want.
func (c *cursor) next(want Operand) (token.Token, int, error) {
	if c.done() {
		return token.Token{}, c.pos, c.missing(want)
	}

	pos := c.pos
	t := c.tokens[pos]
	c.pos++

	return t, pos, nil
}

func (c *cursor) missing(want Operand) error {
	line := 0
	if n := len(c.tokens); n > 0 {
		line = c.tokens[n-1].Line
	}

	return &Error{Pos: c.pos, Line: line, Expected: want, Err: ErrMissingOperand}
}

func (c *cursor) unexpected(pos int, want Operand) error {
	t := c.tokens[pos]
	return &Error{Pos: pos, Line: t.Line, Expected: want, Found: &t, Err: ErrUnexpectedTokenKind}
}

func (c *cursor) register() (instr.RegisterName, error) {
	t, pos, err := c.next(OperandRegister)
	if err != nil {
		return 0, err
	}

	if t.Kind != token.KindKeyword {
		return 0, c.unexpected(pos, OperandRegister)
	}

	ord, ok := t.Keyword.RegisterOrdinal()
	if !ok {
		return 0, c.unexpected(pos, OperandRegister)
	}

	return instr.RegisterName(ord), nil
}

func (c *cursor) registers(n int) ([]instr.RegisterName, error) {
	regs := make([]instr.RegisterName, n)
	for i := range regs {
		r, err := c.register()
		if err != nil {
			return nil, err
		}
		regs[i] = r
	}

	return regs, nil
}

func (c *cursor) variableType() (instr.Type, error) {
	t, pos, err := c.next(OperandType)
	if err != nil {
		return 0, err
	}

	if t.Kind != token.KindKeyword || !t.Keyword.IsType() {
		return 0, c.unexpected(pos, OperandType)
	}

	return instr.Type(t.Keyword - token.KwInt8), nil
}

func (c *cursor) identifier() (string, error) {
	return c.name(OperandIdentifier)
}

func (c *cursor) label() (string, error) {
	return c.name(OperandLabel)
}

func (c *cursor) name(want Operand) (string, error) {
	t, pos, err := c.next(want)
	if err != nil {
		return "", err
	}

	if t.Kind != token.KindIdentifier {
		return "", c.unexpected(pos, want)
	}

	return t.Ident, nil
}

func (c *cursor) value() (instr.Value, error) {
	t, pos, err := c.next(OperandValue)
	if err != nil {
		return instr.Value{}, err
	}

	switch t.Kind {
	case token.KindIdentifier:
		return instr.Var(t.Ident), nil
	case token.KindLiteral:
		return instr.Lit(t.Literal), nil
	default:
		return instr.Value{}, c.unexpected(pos, OperandValue)
	}
}
