// Package program decodes a token stream into an executable instruction
// sequence and its label table.
package program

import (
	"fmt"

	"github.com/sarchlab/japl/instr"
	"github.com/sarchlab/japl/token"
)

// Program is a decoded instruction sequence. It is not modified after
// decoding.
type Program struct {
	Insts []instr.Inst

	// Labels maps a label to the index of the instruction that follows its
	// declaration. A label at the end of the program maps to len(Insts).
	Labels map[string]int
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Insts)
}

// Resolve returns the instruction index of a label.
func (p *Program) Resolve(label string) (int, bool) {
	pc, ok := p.Labels[label]
	return pc, ok
}

// Decode decodes tokens with the default ISA.
func Decode(tokens []token.Token) (*Program, error) {
	return DefaultISA.Decode(tokens)
}

// Decode turns tokens into a program in a single left-to-right pass.
func (isa *ISA) Decode(tokens []token.Token) (*Program, error) {
	p := &Program{Labels: make(map[string]int)}
	c := &cursor{tokens: tokens}

	for !c.done() {
		pos := c.pos
		t := c.peek()

		switch {
		case t.Is(token.Semicolon):
			c.pos++

		case t.Kind == token.KindKeyword:
			decode, ok := isa.mnemonicToDecoder[t.Keyword]
			if !ok {
				return nil, c.unexpected(pos, OperandStatement)
			}

			c.pos++

			inst, err := decode(c)
			if err != nil {
				return nil, fmt.Errorf("decode %v: %w", t.Keyword, err)
			}

			p.Insts = append(p.Insts, inst)

		case t.Kind == token.KindIdentifier:
			if err := p.declareLabel(c); err != nil {
				return nil, err
			}

		default:
			return nil, c.unexpected(pos, OperandStatement)
		}
	}

	return p, nil
}

func (p *Program) declareLabel(c *cursor) error {
	pos := c.pos
	name := c.tokens[pos].Ident
	c.pos++

	colon, colonPos, err := c.next(OperandColon)
	if err != nil {
		return err
	}

	if !colon.Is(token.Colon) {
		return c.unexpected(colonPos, OperandColon)
	}

	if _, dup := p.Labels[name]; dup {
		return &Error{
			Pos:  pos,
			Line: c.tokens[pos].Line,
			Err:  fmt.Errorf("%w %q", ErrDuplicateLabel, name),
		}
	}

	p.Labels[name] = len(p.Insts)

	return nil
}
