// Package config loads run settings and builds cores from them.
package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/japl/core"
)

// Schema constrains configuration files.
const Schema = `
	stack_size?: int & >0 & <=4096
	max_steps?:  int & >=0
	freq_mhz?:   number & >0
	trace_file?: string
`

// Config holds the settings of one run.
type Config struct {
	StackSize int
	MaxSteps  uint64
	FreqMHz   float64
	TraceFile string
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		StackSize: core.DefaultStackSize,
		FreqMHz:   1000,
	}
}

// Limits returns the core limits of the configuration.
func (c Config) Limits() core.Limits {
	return core.Limits{
		StackSize: c.StackSize,
		MaxSteps:  c.MaxSteps,
	}
}

// Freq returns the core clock.
func (c Config) Freq() sim.Freq {
	return sim.Freq(c.FreqMHz) * sim.MHz
}

// MachineBuilder can build cores from a configuration.
type MachineBuilder struct {
	engine sim.Engine
	cfg    Config
}

// NewMachineBuilder returns a builder using the default configuration.
func NewMachineBuilder() MachineBuilder {
	return MachineBuilder{cfg: Default()}
}

// WithEngine sets the engine that drives the core.
func (b MachineBuilder) WithEngine(engine sim.Engine) MachineBuilder {
	b.engine = engine
	return b
}

// WithConfig sets the configuration.
func (b MachineBuilder) WithConfig(cfg Config) MachineBuilder {
	b.cfg = cfg
	return b
}

// Build creates a core.
func (b MachineBuilder) Build(name string) *core.Core {
	return core.NewBuilder().
		WithEngine(b.engine).
		WithFreq(b.cfg.Freq()).
		WithStackSize(b.cfg.StackSize).
		WithMaxSteps(b.cfg.MaxSteps).
		Build(name)
}
