// Package logs builds the structured logger used by the command line tools.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/rs/xid"
	slogmulti "github.com/samber/slog-multi"

	"github.com/sarchlab/japl/core"
)

// Run identifies one execution in the logs.
type Run string

type runKey struct{}

// RunKey is the context key carrying a Run.
var RunKey runKey

// NewRun returns a fresh run id.
func NewRun() Run {
	return Run(xid.New().String())
}

// WithRun attaches a run id to ctx.
func WithRun(ctx context.Context, run Run) context.Context {
	return context.WithValue(ctx, RunKey, run)
}

// Handler tags every record with a run id. The id in the context wins over
// Run.
type Handler struct {
	slog.Handler
	Run Run
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	run := h.Run
	if v, ok := ctx.Value(RunKey).(Run); ok {
		run = v
	}

	if run != "" {
		record.Add("run", string(run))
	}

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), Run: h.Run}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), Run: h.Run}
}

// Options configures New.
type Options struct {
	// Level is the minimum level written to the terminal.
	Level slog.Leveler
	// TraceFile receives every record down to core.LevelTrace as JSON.
	TraceFile string
	Run       Run
}

// New builds a logger writing text to w and, optionally, JSON traces to a
// file. The returned function closes the trace file.
func New(w io.Writer, opts Options) (*slog.Logger, func() error, error) {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closeFn := func() error { return nil }

	if opts.TraceFile != "" {
		f, err := os.Create(opts.TraceFile)
		if err != nil {
			return nil, nil, err
		}

		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: core.LevelTrace,
		}))
		closeFn = f.Close
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
		Run:     opts.Run,
	}), closeFn, nil
}
