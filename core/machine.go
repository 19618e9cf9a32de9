package core

import (
	"github.com/sarchlab/japl/program"
)

// Limits bounds the resources of one run.
type Limits struct {
	// StackSize is the capacity of the variable area in bytes.
	StackSize int
	// MaxSteps stops a run after that many instructions. Zero means no limit.
	MaxSteps uint64
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{StackSize: DefaultStackSize}
}

// Machine executes a program synchronously.
type Machine struct {
	state  coreState
	emu    instEmulator
	limits Limits
}

// NewMachine creates a machine with an empty register file and stack.
func NewMachine(prog *program.Program, limits Limits) *Machine {
	return &Machine{
		state:  newCoreState(prog, limits.StackSize),
		limits: limits,
	}
}

// Done reports whether the program counter ran past the last instruction.
func (m *Machine) Done() bool {
	return m.state.done()
}

// PC returns the index of the next instruction.
func (m *Machine) PC() int {
	return m.state.PC
}

// Step executes the instruction at the program counter. It returns false
// once the program has finished.
func (m *Machine) Step() (bool, error) {
	if m.state.done() {
		return false, nil
	}

	if m.limits.MaxSteps > 0 && m.state.Steps >= m.limits.MaxSteps {
		return false, &Error{
			Kind: StepLimitExceeded,
			PC:   m.state.PC,
			Err:  fault(StepLimitExceeded, "%d instructions executed", m.state.Steps),
		}
	}

	inst := m.state.Code.Insts[m.state.PC]
	if err := m.emu.RunInst(inst, &m.state); err != nil {
		return false, err
	}

	m.state.Steps++

	return !m.state.done(), nil
}

// Run executes until the program finishes or faults.
func (m *Machine) Run() error {
	for {
		more, err := m.Step()
		if err != nil {
			LogState(&m.state)
			return err
		}

		if !more {
			return nil
		}
	}
}

// Snapshot captures the registers and the stack.
func (m *Machine) Snapshot() *Snapshot {
	return &Snapshot{
		PC:        m.state.PC,
		Steps:     m.state.Steps,
		Registers: m.state.Registers,
		Stack:     m.state.Stack.Buffer(),
		Variables: m.state.Stack.Variables(),
	}
}

// Run executes prog to completion and returns the final state. The snapshot
// is returned even when the run faults.
func Run(prog *program.Program, limits Limits) (*Snapshot, error) {
	m := NewMachine(prog, limits)
	err := m.Run()

	return m.Snapshot(), err
}
