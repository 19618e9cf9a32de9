package core

import (
	"context"
	"log/slog"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

// Trace logs at LevelTrace through the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// LogState dumps the machine state at debug level.
func LogState(state *coreState) {
	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Steps", state.Steps,
		"A", state.Registers.A,
		"B", state.Registers.B,
		"C", state.Registers.C,
		"D", state.Registers.D,
		"F", state.Registers.F,
		"G", state.Registers.G,
		"I", state.Registers.I,
		"Stack", state.Stack.Buffer(),
	)
}
