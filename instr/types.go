package instr

import "fmt"

// Type is the declared type of a variable.
type Type uint8

const (
	Int8 Type = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Char
	Bool

	numTypes
)

var typeNames = [numTypes]string{
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64", "char", "bool",
}

var typeSizes = [numTypes]int{1, 2, 4, 8, 1, 2, 4, 8, 4, 8, 4, 1}

// Size returns the number of bytes a variable of the type occupies.
func (t Type) Size() int {
	if t >= numTypes {
		return 0
	}
	return typeSizes[t]
}

func (t Type) String() string {
	if t >= numTypes {
		return fmt.Sprintf("type(%d)", uint8(t))
	}
	return typeNames[t]
}
