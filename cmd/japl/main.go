// Command japl decodes and runs a JAPL program and prints the final state.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/japl/api"
	"github.com/sarchlab/japl/config"
	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/lexer"
	"github.com/sarchlab/japl/logs"
	"github.com/sarchlab/japl/program"
	"github.com/sarchlab/japl/verify"
)

var (
	configFile = flag.String("config", "", "CUE configuration file")
	maxSteps   = flag.Uint64("max-steps", 0, "stop after this many instructions (0 keeps the configured value)")
	stackSize  = flag.Int("stack-size", 0, "stack capacity in bytes (0 keeps the configured value)")
	timed      = flag.Bool("timed", false, "run on the akita engine and print virtual time")
	lint       = flag.Bool("lint", false, "run static lint first and stop on issues")
	reportFile = flag.String("report", "", "write a verification report to this file")
	logDebug   = flag.Bool("log-debug", false, "set log level to debug")
	traceFile  = flag.String("trace-file", "", "write instruction traces as JSON to this file")
	monitor    = flag.Bool("monitor", false, "start the akita monitoring server for timed runs")
)

func main() {
	flag.Parse()

	path := "program.japl"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal("load config", err)
	}

	level := slog.LevelInfo
	if *logDebug {
		level = slog.LevelDebug
	}

	logger, closeLog, err := logs.New(os.Stderr, logs.Options{
		Level:     level,
		TraceFile: cfg.TraceFile,
		Run:       logs.NewRun(),
	})
	if err != nil {
		fatal("open trace file", err)
	}
	atexit.Register(func() { _ = closeLog() })
	slog.SetDefault(logger)

	prog, err := load(path)
	if err != nil {
		fatal("decode "+path, err)
	}

	slog.Debug("decoded program", "file", path, "insts", prog.Len(), "labels", len(prog.Labels))

	if *lint {
		if issues := verify.RunLint(prog, cfg.Limits()); len(issues) > 0 {
			for _, issue := range issues {
				slog.Error("lint", "type", issue.Type, "pc", issue.PC, "msg", issue.Message)
			}
			fatal("lint", fmt.Errorf("%d issues", len(issues)))
		}
	}

	if *reportFile != "" {
		report := verify.GenerateReport(path, prog, cfg.Limits())
		if err := report.SaveReportToFile(*reportFile); err != nil {
			fatal("write report", err)
		}
	}

	if *timed {
		runTimed(prog, cfg)
	} else {
		runDirect(prog, cfg)
	}

	atexit.Exit(0)
}

func loadConfig() (config.Config, error) {
	var files []string
	if *configFile != "" {
		files = append(files, *configFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return cfg, err
	}

	if *maxSteps > 0 {
		cfg.MaxSteps = *maxSteps
	}

	if *stackSize > 0 {
		cfg.StackSize = *stackSize
	}

	if *traceFile != "" {
		cfg.TraceFile = *traceFile
	}

	return cfg, nil
}

func load(path string) (*program.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tokens, err := lexer.Tokenize(string(src))
	if err != nil {
		return nil, err
	}

	return program.Decode(tokens)
}

func runDirect(prog *program.Program, cfg config.Config) {
	snap, err := core.Run(prog, cfg.Limits())
	fmt.Print(snap.Render())

	if err != nil {
		fatal("run", err)
	}
}

func runTimed(prog *program.Program, cfg config.Config) {
	engine := sim.NewSerialEngine()

	builder := api.NewDriverBuilder().
		WithEngine(engine).
		WithConfig(cfg)

	var m *monitoring.Monitor
	if *monitor {
		m = monitoring.NewMonitor()
		m.RegisterEngine(engine)
		builder = builder.WithMonitor(m)
	}

	driver := builder.Build("Driver")

	if m != nil {
		m.StartServer()
	}

	if err := driver.MapProgram(prog); err != nil {
		fatal("map program", err)
	}

	res, err := driver.Run()
	if res != nil {
		fmt.Print(res.Snapshot.Render())
		fmt.Printf("cycles: %d, virtual time: %.3e s\n", res.Cycles, float64(res.Time))
	}

	if err != nil {
		fatal("run", err)
	}
}

func fatal(what string, err error) {
	slog.Error(what, "err", err)
	atexit.Exit(1)
}
