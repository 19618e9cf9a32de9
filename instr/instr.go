// Package instr defines the decoded instruction set of the register machine.
package instr

import "fmt"

// Inst is one decoded instruction.
type Inst interface {
	// Mnemonic returns the source keyword of the instruction.
	Mnemonic() string
	fmt.Stringer

	isInst()
}

// Push declares a new variable of type T on top of the stack.
type Push struct {
	Type Type
	Name string
}

// Set writes a literal into an existing variable.
type Set struct {
	Name  string
	Value Value
}

// Load copies a literal or a variable into a register.
type Load struct {
	Src Value
	Dst RegisterName
}

// Unload copies a register into a variable and clears the register.
type Unload struct {
	Src RegisterName
	Dst string
}

// Move copies one register into another of the same class.
type Move struct {
	Src RegisterName
	Dst RegisterName
}

// Call invokes a label. Execution is reserved.
type Call struct {
	Label string
}

// CallIf invokes a label when the condition holds. Execution is reserved.
type CallIf struct {
	Label string
	Cond  RegisterName
}

// Jump transfers control to a label.
type Jump struct {
	Label string
}

// JumpIf transfers control to a label when the condition register is true.
type JumpIf struct {
	Label string
	Cond  RegisterName
}

// BinaryOp applies Op to Src1 and Src2 and writes Dst.
type BinaryOp struct {
	Op   BinaryOperator
	Src1 RegisterName
	Src2 RegisterName
	Dst  RegisterName
}

// UnaryOp applies Op to Src and writes Dst.
type UnaryOp struct {
	Op  UnaryOperator
	Src RegisterName
	Dst RegisterName
}

func (Push) isInst()     {}
func (Set) isInst()      {}
func (Load) isInst()     {}
func (Unload) isInst()   {}
func (Move) isInst()     {}
func (Call) isInst()     {}
func (CallIf) isInst()   {}
func (Jump) isInst()     {}
func (JumpIf) isInst()   {}
func (BinaryOp) isInst() {}
func (UnaryOp) isInst()  {}

func (Push) Mnemonic() string       { return "push" }
func (Set) Mnemonic() string        { return "set" }
func (Load) Mnemonic() string       { return "load" }
func (Unload) Mnemonic() string     { return "unload" }
func (Move) Mnemonic() string       { return "move" }
func (Call) Mnemonic() string       { return "call" }
func (CallIf) Mnemonic() string     { return "callif" }
func (Jump) Mnemonic() string       { return "jump" }
func (JumpIf) Mnemonic() string     { return "jumpif" }
func (i BinaryOp) Mnemonic() string { return i.Op.String() }
func (i UnaryOp) Mnemonic() string  { return i.Op.String() }

func (i Push) String() string   { return fmt.Sprintf("push %v %s", i.Type, i.Name) }
func (i Set) String() string    { return fmt.Sprintf("set %s %v", i.Name, i.Value) }
func (i Load) String() string   { return fmt.Sprintf("load %v %v", i.Src, i.Dst) }
func (i Unload) String() string { return fmt.Sprintf("unload %v %s", i.Src, i.Dst) }
func (i Move) String() string   { return fmt.Sprintf("move %v %v", i.Src, i.Dst) }
func (i Call) String() string   { return "call " + i.Label }
func (i CallIf) String() string { return fmt.Sprintf("callif %s %v", i.Label, i.Cond) }
func (i Jump) String() string   { return "jump " + i.Label }
func (i JumpIf) String() string { return fmt.Sprintf("jumpif %s %v", i.Label, i.Cond) }

func (i BinaryOp) String() string {
	return fmt.Sprintf("%v %v %v %v", i.Op, i.Src1, i.Src2, i.Dst)
}

func (i UnaryOp) String() string {
	return fmt.Sprintf("%v %v %v", i.Op, i.Src, i.Dst)
}

// Label returns the target label of a control-flow instruction.
func Label(i Inst) (string, bool) {
	switch i := i.(type) {
	case Call:
		return i.Label, true
	case CallIf:
		return i.Label, true
	case Jump:
		return i.Label, true
	case JumpIf:
		return i.Label, true
	}
	return "", false
}
