package api

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/japl/config"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine  sim.Engine
	cfg     config.Config
	monitor *monitoring.Monitor
}

// NewDriverBuilder returns a builder using the default configuration.
func NewDriverBuilder() DriverBuilder {
	return DriverBuilder{cfg: config.Default()}
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithConfig sets the configuration of the machine the driver creates.
func (b DriverBuilder) WithConfig(cfg config.Config) DriverBuilder {
	b.cfg = cfg
	return b
}

// WithMonitor registers the machine the driver creates with a monitor.
func (b DriverBuilder) WithMonitor(monitor *monitoring.Monitor) DriverBuilder {
	b.monitor = monitor
	return b
}

// Build creates a driver with a machine named name.Core registered.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{engine: b.engine}

	m := config.NewMachineBuilder().
		WithEngine(b.engine).
		WithConfig(b.cfg).
		Build(name + ".Core")
	d.RegisterMachine(m)

	if b.monitor != nil {
		b.monitor.RegisterComponent(m)
	}

	return d
}
