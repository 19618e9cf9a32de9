// Package core implements the register machine: register file, variable
// stack, instruction emulator and an akita component that executes one
// instruction per cycle.
package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/japl/program"
)

// Core runs a mapped program on an akita engine, one instruction per tick.
type Core struct {
	*sim.TickingComponent

	limits  Limits
	machine *Machine
	err     error
	cycles  uint64
}

// MapProgram sets the program that the core needs to run and schedules the
// first tick.
func (c *Core) MapProgram(prog *program.Program) {
	c.machine = NewMachine(prog, c.limits)
	c.err = nil
	c.cycles = 0

	c.TickNow()
}

// Tick executes the next instruction.
func (c *Core) Tick() (madeProgress bool) {
	if c.machine == nil || c.err != nil || c.machine.Done() {
		return false
	}

	c.cycles++

	pc := c.machine.PC()
	if _, err := c.machine.Step(); err != nil {
		c.err = err
		Trace("Fault",
			"Core", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"PC", pc,
			"Err", err,
		)
		LogState(&c.machine.state)
		return false
	}

	return true
}

// Done reports whether the program has finished or faulted.
func (c *Core) Done() bool {
	return c.machine == nil || c.err != nil || c.machine.Done()
}

// Err returns the fault that stopped the program, if any.
func (c *Core) Err() error {
	return c.err
}

// Cycles returns the number of ticks that issued an instruction.
func (c *Core) Cycles() uint64 {
	return c.cycles
}

// Snapshot captures the current registers and stack.
func (c *Core) Snapshot() *Snapshot {
	if c.machine == nil {
		return NewMachine(&program.Program{}, c.limits).Snapshot()
	}
	return c.machine.Snapshot()
}
