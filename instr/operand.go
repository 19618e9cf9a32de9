package instr

import (
	"fmt"

	"github.com/sarchlab/japl/token"
)

// NumLanes is the number of registers in every class.
const NumLanes = 4

// RegisterClass groups registers of one width and representation.
type RegisterClass uint8

const (
	ClassA RegisterClass = iota // uint8
	ClassB                      // uint16
	ClassC                      // uint32
	ClassD                      // uint64
	ClassF                      // float32
	ClassG                      // float64
	ClassI                      // bool

	NumClasses = 7
)

var classNames = [NumClasses]string{"a", "b", "c", "d", "f", "g", "i"}

var classSizes = [NumClasses]int{1, 2, 4, 8, 4, 8, 1}

func (c RegisterClass) String() string {
	if int(c) >= NumClasses {
		return fmt.Sprintf("class(%d)", c)
	}
	return classNames[c]
}

// Size returns the width in bytes of a register in the class.
func (c RegisterClass) Size() int {
	if int(c) >= NumClasses {
		return 0
	}
	return classSizes[c]
}

// IsInteger reports whether the class holds unsigned integers.
func (c RegisterClass) IsInteger() bool {
	return c <= ClassD
}

// IsFloat reports whether the class holds floats.
func (c RegisterClass) IsFloat() bool {
	return c == ClassF || c == ClassG
}

// RegisterName identifies one lane of one class, a0 through i3.
type RegisterName uint8

// NumRegisters is the count of addressable lanes.
const NumRegisters = NumClasses * NumLanes

// Register returns the name of lane index in class c.
func Register(c RegisterClass, index int) (RegisterName, error) {
	if int(c) >= NumClasses || index < 0 || index >= NumLanes {
		return 0, fmt.Errorf("register %v%d does not exist", c, index)
	}
	return RegisterName(int(c)*NumLanes + index), nil
}

// Class returns the register class.
func (r RegisterName) Class() RegisterClass {
	return RegisterClass(r / NumLanes)
}

// Index returns the lane within the class.
func (r RegisterName) Index() int {
	return int(r % NumLanes)
}

// Size returns the width of the register in bytes.
func (r RegisterName) Size() int {
	return r.Class().Size()
}

// Valid reports whether r names an existing lane.
func (r RegisterName) Valid() bool {
	return r < NumRegisters
}

func (r RegisterName) String() string {
	if !r.Valid() {
		return fmt.Sprintf("reg(%d)", uint8(r))
	}
	return fmt.Sprintf("%v%d", r.Class(), r.Index())
}

// Value is an instruction operand that is either an immediate literal or a
// reference to a named variable.
type Value struct {
	// Var is the referenced variable. Empty means the value is Lit.
	Var string
	Lit token.Literal
}

// Lit makes an immediate value.
func Lit(l token.Literal) Value {
	return Value{Lit: l}
}

// Var makes a variable reference.
func Var(name string) Value {
	return Value{Var: name}
}

// IsVar reports whether v references a variable.
func (v Value) IsVar() bool {
	return v.Var != ""
}

func (v Value) String() string {
	if v.IsVar() {
		return v.Var
	}
	return v.Lit.String()
}
