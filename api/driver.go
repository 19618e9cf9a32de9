// Package api defines the driver API for running programs on a core.
package api

import (
	"errors"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/program"
)

var (
	// ErrNoMachine is returned when no machine has been registered.
	ErrNoMachine = errors.New("no machine registered")
	// ErrNoProgram is returned by Run before a program is mapped.
	ErrNoProgram = errors.New("no program mapped")
	// ErrStalled means the engine ran out of events before the program
	// finished.
	ErrStalled = errors.New("engine stopped before the program finished")
)

// Driver provides the interface to control a machine.
type Driver interface {
	// RegisterMachine sets the machine that programs are mapped onto.
	RegisterMachine(m Machine)

	// MapProgram loads a program onto the registered machine.
	MapProgram(prog *program.Program) error

	// Run runs the engine until the program finishes or faults. The result
	// is returned even when the program faults.
	Run() (*Result, error)
}

// Machine is a component that executes a mapped program when ticked.
type Machine interface {
	MapProgram(prog *program.Program)
	Done() bool
	Err() error
	Cycles() uint64
	Snapshot() *core.Snapshot
}

type simEngine interface {
	Run() error
	CurrentTime() sim.VTimeInSec
}

// Result is the outcome of a driven run.
type Result struct {
	Snapshot *core.Snapshot
	Cycles   uint64
	// Time is the virtual time the run took.
	Time sim.VTimeInSec
}

type driverImpl struct {
	engine  simEngine
	machine Machine
	mapped  bool
}

// RegisterMachine registers a machine to the driver.
func (d *driverImpl) RegisterMachine(m Machine) {
	d.machine = m
	d.mapped = false
}

// MapProgram dispatches a program to the machine.
func (d *driverImpl) MapProgram(prog *program.Program) error {
	if d.machine == nil {
		return ErrNoMachine
	}

	d.machine.MapProgram(prog)
	d.mapped = true

	return nil
}

// Run runs the mapped program.
func (d *driverImpl) Run() (*Result, error) {
	if d.machine == nil {
		return nil, ErrNoMachine
	}

	if !d.mapped {
		return nil, ErrNoProgram
	}

	start := d.engine.CurrentTime()
	if err := d.engine.Run(); err != nil {
		return nil, err
	}

	res := &Result{
		Snapshot: d.machine.Snapshot(),
		Cycles:   d.machine.Cycles(),
		Time:     d.engine.CurrentTime() - start,
	}

	d.mapped = false

	if err := d.machine.Err(); err != nil {
		return res, err
	}

	if !d.machine.Done() {
		return res, ErrStalled
	}

	return res, nil
}
