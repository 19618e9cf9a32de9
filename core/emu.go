package core

import (
	"github.com/sarchlab/japl/instr"
	"github.com/sarchlab/japl/program"
)

type coreState struct {
	PC    int
	Steps uint64

	Registers RegisterFile
	Stack     *Stack
	Code      *program.Program
}

func newCoreState(prog *program.Program, stackSize int) coreState {
	return coreState{
		Stack: NewStack(stackSize),
		Code:  prog,
	}
}

func (s *coreState) done() bool {
	return s.Code == nil || s.PC >= s.Code.Len()
}

type instEmulator struct {
}

// RunInst executes one instruction and advances the program counter.
func (i instEmulator) RunInst(inst instr.Inst, state *coreState) error {
	Trace("Inst", "PC", state.PC, "Inst", inst.String())

	var err error

	switch inst := inst.(type) {
	case instr.Push:
		err = state.Stack.Push(inst.Type, inst.Name)
	case instr.Set:
		err = state.Stack.Set(inst.Name, inst.Value)
	case instr.Load:
		err = state.Stack.Load(inst.Src, inst.Dst, &state.Registers)
	case instr.Unload:
		err = state.Stack.Unload(inst.Src, inst.Dst, &state.Registers)
	case instr.BinaryOp:
		err = state.Registers.BinaryOperate(inst.Op, inst.Src1, inst.Src2, inst.Dst)
	case instr.UnaryOp:
		err = state.Registers.UnaryOperate(inst.Op, inst.Src, inst.Dst)
	case instr.Jump:
		return i.wrap(state, inst, i.runJump(inst, state))
	case instr.JumpIf:
		return i.wrap(state, inst, i.runJumpIf(inst, state))
	case instr.Move, instr.Call, instr.CallIf:
		err = fault(Unsupported, "%s is reserved", inst.Mnemonic())
	default:
		err = fault(Unsupported, "instruction %T", inst)
	}

	if err != nil {
		return newError(state.PC, inst, err)
	}

	state.PC++

	return nil
}

func (i instEmulator) wrap(state *coreState, inst instr.Inst, err error) error {
	if err != nil {
		return newError(state.PC, inst, err)
	}
	return nil
}

func (i instEmulator) runJump(inst instr.Jump, state *coreState) error {
	pc, ok := state.Code.Resolve(inst.Label)
	if !ok {
		return fault(LabelNotFound, "%s", inst.Label)
	}

	state.PC = pc

	return nil
}

func (i instEmulator) runJumpIf(inst instr.JumpIf, state *coreState) error {
	if inst.Cond.Class() != instr.ClassI {
		return fault(OperationError, "jumpif condition %v is not boolean", inst.Cond)
	}

	cond, err := lane(inst.Cond)
	if err != nil {
		return err
	}

	if !state.Registers.I[cond] {
		state.PC++
		return nil
	}

	return i.runJump(instr.Jump{Label: inst.Label}, state)
}
