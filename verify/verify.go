// Package verify provides checking tools for JAPL programs.
//
// This package implements two complementary verification stages:
//
// 1. Static Lint (lint.go): checks a decoded program without running it
//   - STRUCT checks: undefined labels, reserved opcodes, undeclared or
//     redeclared variables, declarations inside loops
//   - CLASS checks: register class rules of every operator, boolean jump
//     conditions, unload widths
//   - MEMORY checks: declarations that do not fit the stack
//
// 2. Functional run (report.go): executes the program with core.Run and
//    records the outcome next to the lint issues.
//
// # Usage Example
//
//	issues := verify.RunLint(prog, core.DefaultLimits())
//	for _, issue := range issues {
//	    log.Printf("[%s] pc=%d: %s", issue.Type, issue.PC, issue.Message)
//	}
//
//	report := verify.GenerateReport("countdown.japl", prog, core.DefaultLimits())
//	report.WriteReport(os.Stdout)
//
// # Limitations
//
// Lint follows the instruction order, not control flow. A variable declared
// after a backward jump target is treated as declared for the whole program.
package verify

import (
	"github.com/sarchlab/japl/instr"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Program structure error (labels, declarations)
	IssueClass  IssueType = "CLASS"  // Register class or width error
	IssueMemory IssueType = "MEMORY" // Stack capacity error
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType      // STRUCT, CLASS or MEMORY
	PC      int            // Instruction index
	Inst    instr.Inst     // Offending instruction
	Message string         // Human-readable description
	Details map[string]any // Additional structured data
}
