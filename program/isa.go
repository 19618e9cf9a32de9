package program

import (
	"github.com/sarchlab/japl/instr"
	"github.com/sarchlab/japl/token"
)

// decodeFunc consumes the operands of one instruction from the cursor.
type decodeFunc func(c *cursor) (instr.Inst, error)

// ISA maps mnemonics to their operand decoders.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from mnemonic to the decoder of its operands.
	mnemonicToDecoder map[token.Keyword]decodeFunc
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:           name,
		mnemonicToDecoder: make(map[token.Keyword]decodeFunc),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Supports reports whether the ISA decodes the mnemonic.
func (isa *ISA) Supports(kw token.Keyword) bool {
	_, ok := isa.mnemonicToDecoder[kw]
	return ok
}

func (isa *ISA) registerNewInst(kw token.Keyword, decode decodeFunc) {
	isa.mnemonicToDecoder[kw] = decode
}

var binaryOps = map[token.Keyword]instr.BinaryOperator{
	token.KwAdd: instr.Add,
	token.KwSub: instr.Sub,
	token.KwMul: instr.Mul,
	token.KwDiv: instr.Div,
	token.KwMod: instr.Mod,
	token.KwLs:  instr.LeftShift,
	token.KwRs:  instr.RightShift,
	token.KwAnd: instr.And,
	token.KwOr:  instr.Or,
	token.KwXor: instr.Xor,
	token.KwEq:  instr.Eq,
	token.KwNe:  instr.Ne,
	token.KwLt:  instr.Lt,
	token.KwGt:  instr.Gt,
	token.KwLe:  instr.Le,
	token.KwGe:  instr.Ge,
}

var unaryOps = map[token.Keyword]instr.UnaryOperator{
	token.KwNot: instr.Not,
	token.KwInc: instr.Inc,
	token.KwDec: instr.Dec,
}

// DefaultISA is the instruction set accepted by Decode.
var DefaultISA = newDefaultISA()

func newDefaultISA() *ISA {
	isa := NewISA("JAPL")

	isa.registerNewInst(token.KwPush, decodePush)
	isa.registerNewInst(token.KwSet, decodeSet)
	isa.registerNewInst(token.KwLoad, decodeLoad)
	isa.registerNewInst(token.KwUnload, decodeUnload)
	isa.registerNewInst(token.KwMove, decodeMove)
	isa.registerNewInst(token.KwCall, decodeCall)
	isa.registerNewInst(token.KwCallIf, decodeCallIf)
	isa.registerNewInst(token.KwJump, decodeJump)
	isa.registerNewInst(token.KwJumpIf, decodeJumpIf)

	for kw, op := range binaryOps {
		isa.registerNewInst(kw, binaryDecoder(op))
	}

	for kw, op := range unaryOps {
		isa.registerNewInst(kw, unaryDecoder(op))
	}

	return isa
}

func decodePush(c *cursor) (instr.Inst, error) {
	typ, err := c.variableType()
	if err != nil {
		return nil, err
	}

	name, err := c.identifier()
	if err != nil {
		return nil, err
	}

	return instr.Push{Type: typ, Name: name}, nil
}

func decodeSet(c *cursor) (instr.Inst, error) {
	name, err := c.identifier()
	if err != nil {
		return nil, err
	}

	v, err := c.value()
	if err != nil {
		return nil, err
	}

	return instr.Set{Name: name, Value: v}, nil
}

func decodeLoad(c *cursor) (instr.Inst, error) {
	v, err := c.value()
	if err != nil {
		return nil, err
	}

	r, err := c.register()
	if err != nil {
		return nil, err
	}

	return instr.Load{Src: v, Dst: r}, nil
}

func decodeUnload(c *cursor) (instr.Inst, error) {
	r, err := c.register()
	if err != nil {
		return nil, err
	}

	name, err := c.identifier()
	if err != nil {
		return nil, err
	}

	return instr.Unload{Src: r, Dst: name}, nil
}

func decodeMove(c *cursor) (instr.Inst, error) {
	regs, err := c.registers(2)
	if err != nil {
		return nil, err
	}

	return instr.Move{Src: regs[0], Dst: regs[1]}, nil
}

func decodeCall(c *cursor) (instr.Inst, error) {
	label, err := c.label()
	if err != nil {
		return nil, err
	}

	return instr.Call{Label: label}, nil
}

func decodeCallIf(c *cursor) (instr.Inst, error) {
	label, err := c.label()
	if err != nil {
		return nil, err
	}

	r, err := c.register()
	if err != nil {
		return nil, err
	}

	return instr.CallIf{Label: label, Cond: r}, nil
}

func decodeJump(c *cursor) (instr.Inst, error) {
	label, err := c.label()
	if err != nil {
		return nil, err
	}

	return instr.Jump{Label: label}, nil
}

func decodeJumpIf(c *cursor) (instr.Inst, error) {
	label, err := c.label()
	if err != nil {
		return nil, err
	}

	r, err := c.register()
	if err != nil {
		return nil, err
	}

	return instr.JumpIf{Label: label, Cond: r}, nil
}

func binaryDecoder(op instr.BinaryOperator) decodeFunc {
	return func(c *cursor) (instr.Inst, error) {
		regs, err := c.registers(3)
		if err != nil {
			return nil, err
		}

		return instr.BinaryOp{Op: op, Src1: regs[0], Src2: regs[1], Dst: regs[2]}, nil
	}
}

func unaryDecoder(op instr.UnaryOperator) decodeFunc {
	return func(c *cursor) (instr.Inst, error) {
		regs, err := c.registers(2)
		if err != nil {
			return nil, err
		}

		return instr.UnaryOp{Op: op, Src: regs[0], Dst: regs[1]}, nil
	}
}
