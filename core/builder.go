package core

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	limits Limits
}

// NewBuilder returns a builder with a 1 GHz clock and default limits.
func NewBuilder() Builder {
	return Builder{
		freq:   1 * sim.GHz,
		limits: DefaultLimits(),
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithStackSize sets the capacity of the variable area in bytes.
func (b Builder) WithStackSize(size int) Builder {
	b.limits.StackSize = size
	return b
}

// WithMaxSteps bounds the number of executed instructions. Zero disables
// the bound.
func (b Builder) WithMaxSteps(n uint64) Builder {
	b.limits.MaxSteps = n
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("core builder requires an engine")
	}

	c := &Core{limits: b.limits}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
