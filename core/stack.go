package core

import (
	"github.com/sarchlab/japl/instr"
)

// DefaultStackSize is the capacity of the variable area in bytes.
const DefaultStackSize = 16

// Variable describes one declared variable.
type Variable struct {
	Name   string
	Type   instr.Type
	Offset int
}

// Size returns the number of bytes the variable occupies.
func (v Variable) Size() int {
	return v.Type.Size()
}

// Stack is a fixed-capacity byte area holding variables in declaration
// order. Variables are never freed, so offsets only grow.
type Stack struct {
	buf   []byte
	vars  []Variable
	index map[string]int
	top   int
}

// NewStack creates an empty stack of capacity bytes.
func NewStack(capacity int) *Stack {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack{
		buf:   make([]byte, capacity),
		index: make(map[string]int),
	}
}

// Capacity returns the size of the byte area.
func (s *Stack) Capacity() int {
	return len(s.buf)
}

// Used returns the number of allocated bytes.
func (s *Stack) Used() int {
	return s.top
}

// Buffer returns a copy of the byte area.
func (s *Stack) Buffer() []byte {
	return append([]byte(nil), s.buf...)
}

// Variables returns the declared variables in declaration order.
func (s *Stack) Variables() []Variable {
	return append([]Variable(nil), s.vars...)
}

// Push declares a variable at the next free offset.
func (s *Stack) Push(t instr.Type, name string) error {
	if _, dup := s.index[name]; dup {
		return fault(DuplicateVariable, "%s", name)
	}

	size := t.Size()
	if s.top+size > len(s.buf) {
		return fault(StackOverflow, "%v %s needs bytes %d..%d of %d",
			t, name, s.top, s.top+size, len(s.buf))
	}

	s.index[name] = len(s.vars)
	s.vars = append(s.vars, Variable{Name: name, Type: t, Offset: s.top})
	s.top += size

	return nil
}

// Lookup returns the descriptor of a variable.
func (s *Stack) Lookup(name string) (Variable, error) {
	i, ok := s.index[name]
	if !ok {
		return Variable{}, fault(VariableNotFound, "%s", name)
	}

	return s.vars[i], nil
}

// slot returns the byte range backing a variable.
func (s *Stack) slot(name string) ([]byte, error) {
	v, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}

	end := v.Offset + v.Size()
	if v.Offset < 0 || end > len(s.buf) {
		return nil, fault(StackOverflow, "%s at %d..%d of %d", name, v.Offset, end, len(s.buf))
	}

	return s.buf[v.Offset:end], nil
}

// Bytes returns a copy of a variable's bytes.
func (s *Stack) Bytes(name string) ([]byte, error) {
	b, err := s.slot(name)
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), b...), nil
}

// Set overwrites a variable. A literal is encoded to the variable's size. A
// variable source is copied byte for byte up to the shorter of the two.
func (s *Stack) Set(name string, v instr.Value) error {
	dst, err := s.slot(name)
	if err != nil {
		return err
	}

	if !v.IsVar() {
		copy(dst, v.Lit.Bytes(len(dst)))
		return nil
	}

	src, err := s.slot(v.Var)
	if err != nil {
		return err
	}

	copy(dst, src)

	return nil
}

// Load deposits a value into a register. Variable bytes are cut or
// zero-extended to the register width.
func (s *Stack) Load(v instr.Value, r instr.RegisterName, rf *RegisterFile) error {
	if !v.IsVar() {
		return rf.SetBytes(r, v.Lit.Bytes(r.Size()))
	}

	src, err := s.slot(v.Var)
	if err != nil {
		return err
	}

	b := make([]byte, r.Size())
	copy(b, src)

	return rf.SetBytes(r, b)
}

// Unload writes a register into a variable of the same width and clears the
// register. On a width mismatch nothing is written.
func (s *Stack) Unload(r instr.RegisterName, name string, rf *RegisterFile) error {
	dst, err := s.slot(name)
	if err != nil {
		return err
	}

	if len(dst) != r.Size() {
		return fault(SizeMismatch, "%v is %d bytes, %s is %d", r, r.Size(), name, len(dst))
	}

	b, err := rf.Bytes(r)
	if err != nil {
		return err
	}

	copy(dst, b)

	return rf.Reset(r)
}
