package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/program"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Name          string
	InstCount     int
	Limits        core.Limits
	LintIssues    []Issue
	StructIssues  []Issue
	ClassIssues   []Issue
	MemoryIssues  []Issue
	SimulationErr error
	SimulationOK  bool
	Snapshot      *core.Snapshot
}

// GenerateReport runs both lint and a functional run, returns a report
func GenerateReport(name string, prog *program.Program, limits core.Limits) *VerificationReport {
	report := &VerificationReport{
		Name:      name,
		InstCount: prog.Len(),
		Limits:    limits,
	}

	report.LintIssues = RunLint(prog, limits)

	for _, issue := range report.LintIssues {
		switch issue.Type {
		case IssueStruct:
			report.StructIssues = append(report.StructIssues, issue)
		case IssueClass:
			report.ClassIssues = append(report.ClassIssues, issue)
		default:
			report.MemoryIssues = append(report.MemoryIssues, issue)
		}
	}

	report.Snapshot, report.SimulationErr = core.Run(prog, limits)
	report.SimulationOK = report.SimulationErr == nil

	return report
}

// Passed reports whether lint found nothing and the run finished.
func (r *VerificationReport) Passed() bool {
	return len(r.LintIssues) == 0 && r.SimulationOK
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "VERIFICATION REPORT: %s\n", r.Name)
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\n%d instructions, %d byte stack", r.InstCount, r.Limits.StackSize)
	if r.Limits.MaxSteps > 0 {
		fmt.Fprintf(w, ", step limit %d", r.Limits.MaxSteps)
	}
	fmt.Fprintln(w)

	// STAGE 1: LINT
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		fmt.Fprintf(w, "Found %d lint issues:\n", len(r.LintIssues))

		groups := []struct {
			title  string
			issues []Issue
		}{
			{"STRUCT", r.StructIssues},
			{"CLASS", r.ClassIssues},
			{"MEMORY", r.MemoryIssues},
		}

		for _, g := range groups {
			if len(g.issues) == 0 {
				continue
			}

			fmt.Fprintf(w, "\n%s ISSUES (%d):\n", g.title, len(g.issues))
			fmt.Fprintln(w, dash)
			for _, issue := range g.issues {
				fmt.Fprintf(w, "  [pc=%d] %s\n", issue.PC, issue.Message)
				if issue.Inst != nil {
					fmt.Fprintf(w, "    at: %v\n", issue.Inst)
				}
			}
		}
	}

	// STAGE 2: FUNCTIONAL RUN
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: FUNCTIONAL RUN")
	fmt.Fprintln(w, separator)

	if r.SimulationOK {
		fmt.Fprintf(w, "Run completed in %d steps\n", r.Snapshot.Steps)
	} else {
		fmt.Fprintf(w, "Run error: %v\n", r.SimulationErr)
	}

	if r.Snapshot != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Snapshot.Render())
	}

	// STAGE 3: SUMMARY
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Lint Result: %d issues detected (%d STRUCT, %d CLASS, %d MEMORY)\n",
		len(r.LintIssues), len(r.StructIssues), len(r.ClassIssues), len(r.MemoryIssues))

	runStatus := "SUCCESS"
	if !r.SimulationOK {
		runStatus = "FAILED: " + r.SimulationErr.Error()
	}
	fmt.Fprintf(w, "Run Result: %s\n", runStatus)

	if r.Passed() {
		fmt.Fprintln(w, "PROGRAM PASSED ALL CHECKS")
	}

	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
