package verify

import (
	"fmt"

	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/instr"
	"github.com/sarchlab/japl/program"
)

// RunLint performs static lint checks on a decoded program.
// Returns a list of issues found, or empty list if no issues.
func RunLint(prog *program.Program, limits core.Limits) []Issue {
	l := &linter{
		prog:   prog,
		limits: limits,
		types:  make(map[string]instr.Type),
	}

	l.collectDeclarations()

	for pc, inst := range prog.Insts {
		l.checkInst(pc, inst)
	}

	l.checkLoops()
	l.checkLayout()

	return l.issues
}

type linter struct {
	prog   *program.Program
	limits core.Limits
	issues []Issue

	// types holds the first declared type of every variable.
	types map[string]instr.Type
}

func (l *linter) report(t IssueType, pc int, details map[string]any, format string, args ...any) {
	var inst instr.Inst
	if pc >= 0 && pc < len(l.prog.Insts) {
		inst = l.prog.Insts[pc]
	}

	l.issues = append(l.issues, Issue{
		Type:    t,
		PC:      pc,
		Inst:    inst,
		Message: fmt.Sprintf(format, args...),
		Details: details,
	})
}

func (l *linter) collectDeclarations() {
	for _, inst := range l.prog.Insts {
		if push, ok := inst.(instr.Push); ok {
			if _, seen := l.types[push.Name]; !seen {
				l.types[push.Name] = push.Type
			}
		}
	}
}

func (l *linter) checkInst(pc int, inst instr.Inst) {
	if label, ok := instr.Label(inst); ok {
		if _, defined := l.prog.Resolve(label); !defined {
			l.report(IssueStruct, pc, map[string]any{"label": label},
				"Undefined label %q", label)
		}
	}

	switch inst := inst.(type) {
	case instr.Move, instr.Call, instr.CallIf:
		l.report(IssueStruct, pc, nil, "Reserved opcode %s is not executable", inst.Mnemonic())

	case instr.Set:
		l.checkDeclared(pc, inst.Name)
		if inst.Value.IsVar() {
			l.checkDeclared(pc, inst.Value.Var)
		}

	case instr.Load:
		if inst.Src.IsVar() {
			l.checkDeclared(pc, inst.Src.Var)
		}

	case instr.Unload:
		l.checkUnload(pc, inst)

	case instr.JumpIf:
		if inst.Cond.Class() != instr.ClassI {
			l.report(IssueClass, pc, map[string]any{"register": inst.Cond.String()},
				"Jump condition %v is not a boolean register", inst.Cond)
		}

	case instr.BinaryOp:
		if err := core.CheckBinary(inst.Op, inst.Src1, inst.Src2, inst.Dst); err != nil {
			l.report(IssueClass, pc, nil, "%v", err)
		}

	case instr.UnaryOp:
		if err := core.CheckUnary(inst.Op, inst.Src, inst.Dst); err != nil {
			l.report(IssueClass, pc, nil, "%v", err)
		}
	}
}

func (l *linter) checkDeclared(pc int, name string) bool {
	if _, ok := l.types[name]; ok {
		return true
	}

	l.report(IssueStruct, pc, map[string]any{"variable": name},
		"Variable %q is never declared", name)

	return false
}

func (l *linter) checkUnload(pc int, inst instr.Unload) {
	if !l.checkDeclared(pc, inst.Dst) {
		return
	}

	t := l.types[inst.Dst]
	if t.Size() != inst.Src.Size() {
		l.report(IssueClass, pc,
			map[string]any{
				"register_size": inst.Src.Size(),
				"variable_size": t.Size(),
			},
			"Unload of %v (%d bytes) into %s %s (%d bytes)",
			inst.Src, inst.Src.Size(), t, inst.Dst, t.Size())
	}
}

// checkLoops flags declarations that a backward jump would execute twice.
func (l *linter) checkLoops() {
	flagged := make(map[int]bool)

	for pc, inst := range l.prog.Insts {
		label, ok := instr.Label(inst)
		if !ok {
			continue
		}

		target, ok := l.prog.Resolve(label)
		if !ok || target > pc {
			continue
		}

		for i := target; i <= pc; i++ {
			push, ok := l.prog.Insts[i].(instr.Push)
			if !ok || flagged[i] {
				continue
			}

			flagged[i] = true
			l.report(IssueStruct, i, map[string]any{"loop_end": pc},
				"Declaration of %q repeats in the loop ending at %d", push.Name, pc)
		}
	}
}

// checkLayout replays declarations in program order against the stack
// capacity.
func (l *linter) checkLayout() {
	offset := 0
	declared := make(map[string]int)

	for pc, inst := range l.prog.Insts {
		push, ok := inst.(instr.Push)
		if !ok {
			continue
		}

		if first, dup := declared[push.Name]; dup {
			l.report(IssueStruct, pc, map[string]any{"first": first},
				"Variable %q is already declared at %d", push.Name, first)
			continue
		}

		declared[push.Name] = pc

		end := offset + push.Type.Size()
		if end > l.limits.StackSize {
			l.report(IssueMemory, pc,
				map[string]any{"offset": offset, "end": end, "capacity": l.limits.StackSize},
				"Declaration of %q needs bytes %d..%d of a %d byte stack",
				push.Name, offset, end, l.limits.StackSize)
			continue
		}

		offset = end
	}
}
