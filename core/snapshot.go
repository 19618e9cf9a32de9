package core

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/japl/instr"
)

// Snapshot is the externally observable state after a run.
type Snapshot struct {
	PC        int
	Steps     uint64
	Registers RegisterFile
	Stack     []byte
	Variables []Variable
}

// Variable returns the bytes of a declared variable.
func (s *Snapshot) Variable(name string) ([]byte, bool) {
	for _, v := range s.Variables {
		if v.Name == name {
			end := v.Offset + v.Size()
			if end > len(s.Stack) {
				return nil, false
			}
			return s.Stack[v.Offset:end], true
		}
	}

	return nil, false
}

// Render prints the register file and the stack as tables.
func (s *Snapshot) Render() string {
	var sb strings.Builder

	sb.WriteString(s.RenderRegisters())
	sb.WriteString("\n\n")
	sb.WriteString(s.RenderStack())
	sb.WriteString("\n")

	return sb.String()
}

// RenderRegisters prints one row per register class.
func (s *Snapshot) RenderRegisters() string {
	regTable := table.NewWriter()
	regTable.SetTitle("Registers")
	regTable.AppendHeader(table.Row{"Class", "0", "1", "2", "3"})

	for c := instr.RegisterClass(0); c < instr.NumClasses; c++ {
		row := table.Row{strings.ToUpper(c.String())}
		for i := 0; i < instr.NumLanes; i++ {
			r, _ := instr.Register(c, i)
			v, _ := s.Registers.Value(r)
			row = append(row, v)
		}
		regTable.AppendRow(row)
	}

	return regTable.Render()
}

// RenderStack prints the raw buffer followed by the declared variables.
func (s *Snapshot) RenderStack() string {
	stackTable := table.NewWriter()
	stackTable.SetTitle(fmt.Sprintf("Stack (%d bytes)", len(s.Stack)))
	stackTable.AppendHeader(table.Row{"Name", "Type", "Offset", "Bytes", "Value"})

	for _, v := range s.Variables {
		b, _ := s.Variable(v.Name)
		stackTable.AppendRow(table.Row{v.Name, v.Type, v.Offset, fmt.Sprintf("% x", b), decodeValue(v.Type, b)})
	}

	stackTable.AppendFooter(table.Row{"", "", "", fmt.Sprintf("% x", s.Stack), ""})

	return stackTable.Render()
}

func decodeValue(t instr.Type, b []byte) any {
	if len(b) != t.Size() {
		return "?"
	}

	ne := binary.NativeEndian

	switch t {
	case instr.Int8:
		return int8(b[0])
	case instr.Int16:
		return int16(ne.Uint16(b))
	case instr.Int32:
		return int32(ne.Uint32(b))
	case instr.Int64:
		return int64(ne.Uint64(b))
	case instr.Uint8:
		return b[0]
	case instr.Uint16:
		return ne.Uint16(b)
	case instr.Uint32:
		return ne.Uint32(b)
	case instr.Uint64:
		return ne.Uint64(b)
	case instr.Float32:
		return math.Float32frombits(ne.Uint32(b))
	case instr.Float64:
		return math.Float64frombits(ne.Uint64(b))
	case instr.Char:
		return fmt.Sprintf("%q", rune(ne.Uint32(b)))
	case instr.Bool:
		return b[0] != 0
	}

	return "?"
}
